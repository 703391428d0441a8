package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrExpired = errors.New("token expired")

type Claims struct {
	TeacherID string `json:"teacher_id"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// Issue signs an HS256 token for one teacher.
func Issue(secret, teacherID, role string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret is empty")
	}
	now := time.Now()
	claims := Claims{
		TeacherID: teacherID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   teacherID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// Parse verifies signature, algorithm and expiry. Expiry is reported as
// ErrExpired so callers can tell it apart from a forged token.
func Parse(secret, raw string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, err
	}
	if !tok.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.TeacherID == "" {
		return nil, errors.New("teacher id missing from token")
	}
	return claims, nil
}
