package util

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	password := "MyPassword123"

	hashed, err := HashPassword(password, 4)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if !strings.HasPrefix(hashed, "$2") {
		t.Errorf("hash = %q, want bcrypt format", hashed)
	}

	if _, err := HashPassword("", 4); err == nil {
		t.Error("HashPassword(\"\") error = nil, want error")
	}

	// same password must produce different hashes (random salt)
	hashed2, _ := HashPassword(password, 4)
	if hashed == hashed2 {
		t.Error("two hashes of the same password are identical")
	}
}

func TestCheckPassword(t *testing.T) {
	password := "TestPass456"
	hashed, _ := HashPassword(password, 4)

	if !CheckPassword(password, hashed) {
		t.Error("correct password not accepted")
	}
	if CheckPassword("WrongPass", hashed) {
		t.Error("wrong password accepted")
	}
	if CheckPassword("", hashed) {
		t.Error("empty password accepted")
	}
	if CheckPassword(password, "") {
		t.Error("empty hash accepted")
	}
	if CheckPassword(password, "invalid-format") {
		t.Error("malformed hash accepted")
	}
}

func TestValidatePassword(t *testing.T) {
	valid := []string{"securepass123", "longenough", "Pa55word!"}
	for _, pwd := range valid {
		if err := ValidatePassword(pwd); err != nil {
			t.Errorf("ValidatePassword(%q) error = %v, want nil", pwd, err)
		}
	}

	invalid := []string{"", "short", "1234567", "12345678", "999999999999"}
	for _, pwd := range invalid {
		if err := ValidatePassword(pwd); err == nil {
			t.Errorf("ValidatePassword(%q) error = nil, want error", pwd)
		}
	}
}
