package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTokenRoundtrip(t *testing.T) {
	maker := NewJWTMaker("test-secret")
	userID := uuid.New()

	token, claims, err := maker.GenerateToken(userID, "admin@example.com", true, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if claims.UserID != userID || !claims.IsAdmin {
		t.Errorf("unexpected claims %+v", claims)
	}

	parsed, err := maker.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if parsed.UserID != userID || parsed.Email != "admin@example.com" || !parsed.IsAdmin {
		t.Errorf("unexpected parsed claims %+v", parsed)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	maker := NewJWTMaker("secret-a")
	token, _, err := maker.GenerateToken(uuid.New(), "u@example.com", false, time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	other := NewJWTMaker("secret-b")
	if _, err := other.VerifyToken(token); err == nil {
		t.Error("token signed with a different secret should be rejected")
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	maker := NewJWTMaker("test-secret")
	token, _, err := maker.GenerateToken(uuid.New(), "u@example.com", false, -time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := maker.VerifyToken(token); err == nil {
		t.Error("expired token should be rejected")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	maker := NewJWTMaker("test-secret")
	if _, err := maker.VerifyToken("not.a.token"); err == nil {
		t.Error("garbage token should be rejected")
	}
}
