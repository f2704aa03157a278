package auth

import "strings"

// normalizeID coerces an identity to its canonical comparable form. Owner ids
// and caller ids reach the policy from different code paths (DB rows, token
// claims), so both sides are normalized before comparing.
func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// CanModify decides whether caller may mutate a resource owned by owner.
// A resource with no recorded owner (nil or empty) denies everyone,
// including the original anonymous submitter.
func CanModify(owner *string, caller string) bool {
	if owner == nil {
		return false
	}
	o := normalizeID(*owner)
	if o == "" {
		return false
	}
	return o == normalizeID(caller)
}
