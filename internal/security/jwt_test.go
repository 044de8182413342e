package security

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestGenerateAndParseAdminToken(t *testing.T) {
	t.Parallel()

	token, errGen := GenerateAdminToken("test-secret", 42, "admin@example.com", time.Hour)
	if errGen != nil {
		t.Fatalf("generate token: %v", errGen)
	}

	claims, errParse := ParseAdminToken("test-secret", token)
	if errParse != nil {
		t.Fatalf("parse token: %v", errParse)
	}
	if claims.AdminID != 42 {
		t.Fatalf("expected admin id 42, got %d", claims.AdminID)
	}
	if claims.Email != "admin@example.com" {
		t.Fatalf("expected email admin@example.com, got %s", claims.Email)
	}
	if claims.ExpiresAt == nil {
		t.Fatalf("expected expiry to be set")
	}
	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining <= 0 || remaining > time.Hour {
		t.Fatalf("unexpected expiry window: %v", remaining)
	}
}

func TestParseAdminTokenWrongSecret(t *testing.T) {
	t.Parallel()

	token, errGen := GenerateAdminToken("test-secret", 1, "a@example.com", time.Hour)
	if errGen != nil {
		t.Fatalf("generate token: %v", errGen)
	}

	if _, errParse := ParseAdminToken("other-secret", token); !errors.Is(errParse, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", errParse)
	}
}

func TestParseAdminTokenExpired(t *testing.T) {
	t.Parallel()

	token, errGen := GenerateAdminToken("test-secret", 1, "a@example.com", -time.Minute)
	if errGen != nil {
		t.Fatalf("generate token: %v", errGen)
	}

	if _, errParse := ParseAdminToken("test-secret", token); !errors.Is(errParse, ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", errParse)
	}
}

func TestParseAdminTokenTampered(t *testing.T) {
	t.Parallel()

	token, errGen := GenerateAdminToken("test-secret", 1, "a@example.com", time.Hour)
	if errGen != nil {
		t.Fatalf("generate token: %v", errGen)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected 3 token segments, got %d", len(parts))
	}
	tampered := parts[0] + "." + parts[1] + ".AAAA" + parts[2][4:]

	if _, errParse := ParseAdminToken("test-secret", tampered); !errors.Is(errParse, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", errParse)
	}
}

func TestParseAdminTokenMalformed(t *testing.T) {
	t.Parallel()

	if _, errParse := ParseAdminToken("test-secret", "not-a-jwt"); !errors.Is(errParse, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", errParse)
	}
}
