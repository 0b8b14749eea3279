package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "pw123" {
		t.Fatal("hash equals plaintext")
	}

	if !CheckPassword(hash, "pw123") {
		t.Fatal("correct password rejected")
	}
	if CheckPassword(hash, "wrongpass") {
		t.Fatal("wrong password accepted")
	}
}

func TestCheckPassword_InvalidHash(t *testing.T) {
	t.Parallel()

	if CheckPassword("not-a-bcrypt-hash", "pw123") {
		t.Fatal("invalid hash accepted")
	}
}
