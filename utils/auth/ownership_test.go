package auth

import "testing"

func strPtr(s string) *string { return &s }

func TestCanModifySameIdentity(t *testing.T) {
	id := "7f9c34e2-5a11-4c7e-9b3d-111111111111"
	if !CanModify(strPtr(id), id) {
		t.Error("owner denied access to their own resource")
	}
}

func TestCanModifyDifferentIdentity(t *testing.T) {
	owner := "7f9c34e2-5a11-4c7e-9b3d-111111111111"
	caller := "7f9c34e2-5a11-4c7e-9b3d-222222222222"
	if CanModify(strPtr(owner), caller) {
		t.Error("non-owner allowed to modify resource")
	}
}

func TestCanModifyNilOwner(t *testing.T) {
	if CanModify(nil, "7f9c34e2-5a11-4c7e-9b3d-111111111111") {
		t.Error("ownerless resource allowed modification")
	}
}

func TestCanModifyEmptyOwner(t *testing.T) {
	if CanModify(strPtr(""), "") {
		t.Error("empty owner matched empty caller")
	}
	if CanModify(strPtr("   "), "   ") {
		t.Error("whitespace owner matched whitespace caller")
	}
}

func TestCanModifyNormalizesRepresentation(t *testing.T) {
	// Ids can arrive uppercased or padded depending on the code path
	cases := []struct {
		owner  string
		caller string
	}{
		{"7F9C34E2-5A11-4C7E-9B3D-111111111111", "7f9c34e2-5a11-4c7e-9b3d-111111111111"},
		{"  7f9c34e2-5a11-4c7e-9b3d-111111111111", "7f9c34e2-5a11-4c7e-9b3d-111111111111  "},
	}

	for _, tc := range cases {
		if !CanModify(strPtr(tc.owner), tc.caller) {
			t.Errorf("CanModify(%q, %q) = false, want true", tc.owner, tc.caller)
		}
	}
}
