package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/rs/zerolog/log"
)

var ErrEmptySubject = errors.New("token subject must not be empty")

// TokenService issues and validates the HS256 bearer tokens guarding the admin API.
type TokenService struct {
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewTokenService creates a new TokenService.
func NewTokenService(jwtSecret string, tokenTTL time.Duration) *TokenService {
	return &TokenService{
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

// IssueToken signs a token for subject valid for the configured TTL.
func (s *TokenService) IssueToken(subject string) (string, error) {
	if subject == "" {
		return "", ErrEmptySubject
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"exp": now.Add(s.tokenTTL).Unix(),
		"iat": now.Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a token, returning its claims if valid.
func (s *TokenService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		log.Debug().Err(err).Msg("token validation failed")
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}
