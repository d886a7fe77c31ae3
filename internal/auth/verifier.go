// Package auth verifies the bearer tokens issued by the platform's identity
// service and exposes the authenticated user id to handlers.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/yahna8/store-and-inventory-microservice/internal/domain"
	"github.com/yahna8/store-and-inventory-microservice/internal/metrics"
)

var validMethods = []string{jwt.SigningMethodHS256.Alg()}

type verifiedToken struct {
	userID    string
	expiresAt time.Time
}

// Verifier validates HS256 tokens and caches successful verifications
type Verifier struct {
	secret []byte
	cache  *expirable.LRU[string, verifiedToken]
	now    func() time.Time
}

// NewVerifier creates a Verifier. Cached entries live at most ttl and never past the token's expiry.
func NewVerifier(secret string, cacheSize int, ttl time.Duration) *Verifier {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	return &Verifier{
		secret: []byte(secret),
		cache:  expirable.NewLRU[string, verifiedToken](cacheSize, nil, ttl),
		now:    time.Now,
	}
}

// Verify returns the token subject. Errors wrap domain.ErrUnauthenticated.
func (v *Verifier) Verify(tokenString string) (string, error) {
	if tokenString == "" {
		return "", fmt.Errorf("%w: %s", domain.ErrUnauthenticated, ErrMsgMissingToken)
	}

	if cached, ok := v.cache.Get(tokenString); ok {
		if v.now().Before(cached.expiresAt) {
			metrics.TokenCacheLookups.WithLabelValues(metrics.ResultHit).Inc()
			return cached.userID, nil
		}
		v.cache.Remove(tokenString)
	}
	metrics.TokenCacheLookups.WithLabelValues(metrics.ResultMiss).Inc()

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	},
		jwt.WithValidMethods(validMethods),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrUnauthenticated, err)
	}

	userID := strings.TrimSpace(claims.Subject)
	if userID == "" {
		return "", fmt.Errorf("%w: %w", domain.ErrUnauthenticated, errors.New("token has no subject"))
	}

	v.cache.Add(tokenString, verifiedToken{userID: userID, expiresAt: claims.ExpiresAt.Time})
	return userID, nil
}

// IssueToken signs an HS256 token for userID. cmd/devtoken and the tests use
// it; production tokens come from the identity service.
func IssueToken(secret, userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
