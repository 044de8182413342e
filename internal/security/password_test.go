package security

import (
	"strings"
	"testing"
)

func TestHashPasswordProducesSaltedHashes(t *testing.T) {
	t.Parallel()

	first, errFirst := HashPassword("secret123")
	if errFirst != nil {
		t.Fatalf("hash password: %v", errFirst)
	}
	second, errSecond := HashPassword("secret123")
	if errSecond != nil {
		t.Fatalf("hash password: %v", errSecond)
	}
	if first == second {
		t.Fatalf("expected distinct hashes for the same password")
	}
	if strings.Contains(first, "secret123") {
		t.Fatalf("hash must not contain the plaintext")
	}
}

func TestCheckPassword(t *testing.T) {
	t.Parallel()

	hash, errHash := HashPassword("secret123")
	if errHash != nil {
		t.Fatalf("hash password: %v", errHash)
	}
	if !CheckPassword(hash, "secret123") {
		t.Fatalf("expected matching password to verify")
	}
	if CheckPassword(hash, "secret124") {
		t.Fatalf("expected mismatched password to fail")
	}
	if CheckPassword("not-a-hash", "secret123") {
		t.Fatalf("expected malformed hash to fail")
	}
}
