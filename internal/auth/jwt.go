// Package auth validates the access tokens issued by the marketplace session
// service and the shared secret of the internal dispatch trigger.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/recruitment-backend/internal/domain"
)

// JWTManager signs and validates HS256 access tokens that carry the user id
// as subject and the marketplace role as a custom claim.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
	}
}

type accessClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// GenerateAccessToken creates a signed token. Production tokens come from the
// session service; this is used by tooling and tests.
func (m *JWTManager) GenerateAccessToken(userID uuid.UUID, role domain.UserRole) (string, error) {
	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: role.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateAccessToken parses a token and returns the caller identity.
// A token without a known role is rejected.
func (m *JWTManager) ValidateAccessToken(tokenString string) (domain.Actor, error) {
	if tokenString == "" {
		return domain.Actor{}, errors.New("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return domain.Actor{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return domain.Actor{}, errors.New("invalid token claims")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("invalid subject UUID: %w", err)
	}

	role := domain.UserRole(claims.Role)
	if !role.IsValid() {
		return domain.Actor{}, fmt.Errorf("invalid role %q", claims.Role)
	}

	return domain.Actor{UserID: userID, Role: role}, nil
}
