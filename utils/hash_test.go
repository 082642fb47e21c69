package utils

import "testing"

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret123" {
		t.Fatalf("hash equals plain text")
	}
	if !CheckPasswordHash("secret123", hash) {
		t.Fatalf("correct password rejected")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Fatalf("wrong password accepted")
	}
}
