package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	errs "github.com/fuelgrid/cng-marketplace/internal/domain/error"
	"github.com/fuelgrid/cng-marketplace/internal/domain/port/core"
)

// Principal identifies an authenticated caller extracted from a token
type Principal struct {
	ID   uint64
	Name string
}

// Claims is the JWT payload carried by access tokens
type Claims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 access tokens
type TokenService struct {
	secret       []byte
	issuer       string
	tokenTTL     time.Duration
	timeProvider core.TimeProvider
}

// NewTokenService creates a token service with the given signing secret
func NewTokenService(secret, issuer string, tokenTTL time.Duration, timeProvider core.TimeProvider) *TokenService {
	return &TokenService{
		secret:       []byte(secret),
		issuer:       issuer,
		tokenTTL:     tokenTTL,
		timeProvider: timeProvider,
	}
}

// Issue signs a new access token for the given principal
func (s *TokenService) Issue(principal Principal) (string, error) {
	now := s.timeProvider.Now()

	claims := Claims{
		Name: principal.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(principal.ID, 10),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}
	return signed, nil
}

// Parse verifies a token string and returns the principal it carries
//
// Possible errors:
// - ErrUnauthorized: If the token is missing, expired, or fails verification
func (s *TokenService) Parse(tokenString string) (Principal, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Principal{}, errs.ErrUnauthorized
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Principal{}, errs.ErrUnauthorized
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return Principal{}, errs.ErrUnauthorized
	}

	return Principal{ID: id, Name: claims.Name}, nil
}
