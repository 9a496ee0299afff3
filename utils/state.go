package utils

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// StateClaims is the payload of the signed OAuth state parameter. The nonce
// exists only to make every state value unique; the signature and expiry are
// what protect the callback against forged or replayed redirects.
type StateClaims struct {
	Nonce string `json:"nonce"`
	jwt.RegisteredClaims
}

const stateTTL = 10 * time.Minute

// GenerateState issues a signed, short-lived OAuth state token.
func GenerateState(secret string) (string, error) {
	claims := StateClaims{
		Nonce: GenerateRandomString(16),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(stateTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateState parses and verifies a state token from the OAuth callback.
func ValidateState(secret, state string) error {
	token, err := jwt.ParseWithClaims(state, &StateClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return jwt.ErrSignatureInvalid
	}
	return nil
}

func GenerateRandomString(length int) string {
	bytes := make([]byte, length)
	_, err := rand.Read(bytes)
	if err != nil {
		panic("failed to generate secure random string: " + err.Error())
	}
	return hex.EncodeToString(bytes)
}
