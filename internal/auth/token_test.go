package auth_test

import (
	"testing"
	"time"

	"github.com/spec-kit/reagent-inventory/internal/auth"
	"github.com/spec-kit/reagent-inventory/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	tm := auth.NewTokenManager("test-secret", 24)
	user := &domain.User{ID: "u1", Email: "admin@chemstore.com", Role: domain.RoleAdmin}

	token, exp, err := tm.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if remaining := time.Until(exp); remaining < 23*time.Hour {
		t.Fatalf("expected ~24h lifetime, got %v", remaining)
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != user.ID || claims.Email != user.Email || claims.Role != user.Role {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	issuer := auth.NewTokenManager("secret-a", 24)
	verifier := auth.NewTokenManager("secret-b", 24)

	token, _, err := issuer.GenerateToken(&domain.User{ID: "u1", Email: "a@b.c", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := verifier.ParseToken(token); err == nil {
		t.Fatal("expected verification failure with a different secret")
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	t.Parallel()

	tm := auth.NewTokenManager("test-secret", 24)
	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := tm.ParseToken(token); err == nil {
			t.Fatalf("expected error for %q", token)
		}
	}
}

func TestTokenTTLDefault(t *testing.T) {
	t.Parallel()

	tm := auth.NewTokenManager("test-secret", 0)
	if got := tm.TTL(); got != 24*time.Hour {
		t.Fatalf("TTL() = %v, want 24h default", got)
	}
}
