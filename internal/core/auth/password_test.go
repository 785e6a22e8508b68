package auth

import "testing"

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "s3cret" {
		t.Fatalf("hash must not equal the plaintext")
	}
	if !CheckPassword("s3cret", hash) {
		t.Fatalf("expected password to verify against its own hash")
	}
	if CheckPassword("wrong", hash) {
		t.Fatalf("expected wrong password to fail verification")
	}
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	a, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	b, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if a == b {
		t.Fatalf("expected different hashes for the same password")
	}
}
