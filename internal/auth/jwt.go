package auth

import (
	"errors"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
)

// Payload identifies the authenticated caller (customer or vendor).
type Payload struct {
	ID       uint   `json:"_id"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Verified bool   `json:"verified"`
}

type claims struct {
	Payload
	jwt.StandardClaims
}

var (
	ErrInvalidToken = errors.New("invalid token")
)

// Sign issues an HS256 token for the given payload.
func Sign(p Payload, secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret is empty")
	}
	c := claims{
		Payload: p,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(ttl).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString([]byte(secret))
}

// Parse validates a token and returns its payload.
func Parse(tokenStr, secret string) (*Payload, error) {
	c := &claims{}
	tok, err := jwt.ParseWithClaims(tokenStr, c, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	if c.ID == 0 {
		return nil, ErrInvalidToken
	}
	return &c.Payload, nil
}
