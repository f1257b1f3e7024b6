package util

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	password := "test123456"

	hashed, err := HashPassword(password, 4)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if !strings.HasPrefix(hashed, "$2") {
		t.Errorf("HashPassword() = %q, want bcrypt format", hashed)
	}

	if _, err := HashPassword("", 4); err == nil {
		t.Error("HashPassword(\"\") error = nil, want error")
	}

	// same password must hash differently (random salt)
	hashed2, _ := HashPassword(password, 4)
	if hashed == hashed2 {
		t.Error("HashPassword() produced identical hashes for the same password")
	}

	// out-of-range cost falls back to the default
	if _, err := HashPassword(password, 99); err != nil {
		t.Errorf("HashPassword() with out-of-range cost error = %v, want nil", err)
	}
}

func TestCheckPassword(t *testing.T) {
	password := "test123456"
	hashed, _ := HashPassword(password, 4)

	if !CheckPassword(password, hashed) {
		t.Error("CheckPassword() = false for correct password")
	}
	if CheckPassword("wrongpass", hashed) {
		t.Error("CheckPassword() = true for wrong password")
	}
	if CheckPassword("", hashed) {
		t.Error("CheckPassword() = true for empty password")
	}
	if CheckPassword(password, "not-a-hash") {
		t.Error("CheckPassword() = true for malformed hash")
	}
}
