package auth

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "password123" {
		t.Fatal("hash equals plaintext")
	}

	if err := VerifyPassword(hash, "password123"); err != nil {
		t.Errorf("VerifyPassword rejected correct password: %v", err)
	}
	if err := VerifyPassword(hash, "wrong-password"); err != ErrPasswordMismatch {
		t.Errorf("VerifyPassword on wrong password returned %v, want ErrPasswordMismatch", err)
	}
}

func TestHashPasswordTooShort(t *testing.T) {
	if _, err := HashPassword("abc"); err != ErrPasswordTooShort {
		t.Errorf("HashPassword on short password returned %v, want ErrPasswordTooShort", err)
	}
}
