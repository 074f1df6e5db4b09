package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken covers signature mismatch and malformed token structure.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired is returned for a well-signed token past its exp claim.
	ErrTokenExpired = errors.New("token expired")
	// ErrMalformedClaims is returned when the user id claim is absent.
	ErrMalformedClaims = errors.New("malformed token claims")
)

type JWTManager struct {
	secretKey     []byte
	tokenDuration time.Duration
}

type accessClaims struct {
	jwt.RegisteredClaims
	UserID uint `json:"user_id"`
}

func NewJWTManager(secretKey string, duration time.Duration) *JWTManager {
	return &JWTManager{
		secretKey:     []byte(secretKey),
		tokenDuration: duration,
	}
}

// GenerateToken signs a self-contained access token carrying the user id,
// issued-at and absolute expiry.
func (j *JWTManager) GenerateToken(userID uint) (string, error) {
	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.tokenDuration)),
		},
		UserID: userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// VerifyToken checks the signature first, then expiry, then extracts the user
// id claim. Tokens are stateless; there is no server-side revocation.
func (j *JWTManager) VerifyToken(tokenStr string) (uint, error) {
	claims := &accessClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return j.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrInvalidToken
	}
	if !token.Valid {
		return 0, ErrInvalidToken
	}
	if claims.UserID == 0 {
		return 0, ErrMalformedClaims
	}
	return claims.UserID, nil
}
