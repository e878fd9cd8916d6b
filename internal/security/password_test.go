package security

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if hash == "password123" {
		t.Fatalf("hash should not equal the plaintext")
	}

	if err := CheckPassword(hash, "password123"); err != nil {
		t.Fatalf("expected matching password, got %v", err)
	}

	if err := CheckPassword(hash, "wrong-password"); err == nil {
		t.Fatalf("expected mismatch error, got nil")
	}
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	h1, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	h2, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if h1 == h2 {
		t.Fatalf("expected salted hashes to differ")
	}
}
