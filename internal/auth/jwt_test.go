// SPDX-License-Identifier: MIT
package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken("0b7c1d9e-1111-4222-8333-444455556666")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if token == "" {
		t.Error("Token should not be empty")
	}
}

func TestGenerateTokenEmptySession(t *testing.T) {
	if _, err := GenerateToken(""); err == nil {
		t.Error("GenerateToken should fail for an empty session id")
	}
}

func TestValidateTokenValid(t *testing.T) {
	id := "0b7c1d9e-1111-4222-8333-444455556666"
	token, err := GenerateToken(id)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}

	if claims.SessionID != id {
		t.Errorf("Expected SessionID %s, got %s", id, claims.SessionID)
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Before(time.Now()) {
		t.Error("Token should expire in the future")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	claims := Claims{
		SessionID: "abc",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(past),
			IssuedAt:  jwt.NewNumericDate(past.Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(getSessionSecret()))
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}

	if _, err := ValidateToken(token); err == nil {
		t.Error("ValidateToken should fail for an expired token")
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{SessionID: "abc"}).SignedString([]byte("some-other-secret"))
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}

	if _, err := ValidateToken(token); err == nil {
		t.Error("ValidateToken should fail for a token signed with another secret")
	}
}

func TestValidateTokenSecretFromEnv(t *testing.T) {
	t.Setenv("FOCUSMAP_SESSION_SECRET", "env-secret")

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{SessionID: "abc"}).SignedString([]byte("env-secret"))
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}

	if _, err := ValidateToken(token); err != nil {
		t.Errorf("ValidateToken should accept a token signed with the env secret: %v", err)
	}
}

func TestValidateTokenMalformed(t *testing.T) {
	if _, err := ValidateToken("not-a-valid-jwt-token"); err == nil {
		t.Error("ValidateToken should fail for malformed token")
	}
}

func TestValidateTokenEmpty(t *testing.T) {
	if _, err := ValidateToken(""); err == nil {
		t.Error("ValidateToken should fail for empty token")
	}
}
