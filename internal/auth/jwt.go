// SPDX-License-Identifier: MIT
package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/thatcatcamp/focusmap/internal/config"
)

// Claims identifies the map session a browser belongs to
type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// getSessionSecret returns the signing secret from env var or config
func getSessionSecret() string {
	// Environment variable takes precedence
	if secret := os.Getenv("FOCUSMAP_SESSION_SECRET"); secret != "" {
		return secret
	}
	return config.GetString("session.secret")
}

// Lifetime returns how long a session cookie stays valid
func Lifetime() time.Duration {
	hours := config.GetInt("session.expiry_hours")
	if hours == 0 {
		hours = 24 * 30
	}
	return time.Duration(hours) * time.Hour
}

// GenerateToken signs a token carrying sessionID
func GenerateToken(sessionID string) (string, error) {
	if sessionID == "" {
		return "", errors.New("session id is empty")
	}

	now := time.Now()
	claims := Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(Lifetime())),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(getSessionSecret()))
}

// ValidateToken parses and validates a session token
func ValidateToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, errors.New("token is empty")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(getSessionSecret()), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.SessionID == "" {
		return nil, errors.New("token has no session id")
	}

	return claims, nil
}
