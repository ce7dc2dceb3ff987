package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SignedToken represents a redeemed share-link token
type SignedToken struct {
	ReportID  int64
	TokenID   string
	ExpiresAt time.Time
}

// URLSignerService generates and validates presigned single-use links for
// report access without an API key. Single-use markers live in Redis when
// one is configured, otherwise in the in-process cache.
type URLSignerService struct {
	secretKey []byte
	redis     *redis.Client
	fallback  CacheInterface
}

// NewURLSignerService creates a new URL signer service. redis may be nil.
func NewURLSignerService(secretKey []byte, redis *redis.Client, fallback CacheInterface) *URLSignerService {
	return &URLSignerService{
		secretKey: secretKey,
		redis:     redis,
		fallback:  fallback,
	}
}

// GenerateShareToken generates a single-use presigned token for one report
func (s *URLSignerService) GenerateShareToken(reportID int64, ttl time.Duration) (string, time.Time, error) {
	tokenID := uuid.New().String()
	expiresAt := time.Now().Add(ttl)

	// Create JWT claims
	claims := jwt.MapClaims{
		"report_id": reportID,
		"jti":       tokenID,
		"exp":       expiresAt.Unix(),
		"iat":       time.Now().Unix(),
	}

	// Sign with HMAC
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// RedeemToken validates a presigned share token and atomically consumes it.
// A second redemption of the same token fails, including one racing the
// first: the used-marker write is a single set-if-absent, never a separate
// check followed by a mark.
func (s *URLSignerService) RedeemToken(ctx context.Context, tokenString string) (*SignedToken, error) {
	// Parse and validate JWT
	token, err := jwt.ParseWithClaims(tokenString, &jwt.MapClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	reportIDFloat, ok := (*claims)["report_id"].(float64)
	if !ok {
		return nil, errors.New("missing or invalid report_id claim")
	}

	tokenID, ok := (*claims)["jti"].(string)
	if !ok {
		return nil, errors.New("missing or invalid jti claim")
	}

	expFloat, ok := (*claims)["exp"].(float64)
	if !ok {
		return nil, errors.New("missing or invalid exp claim")
	}
	expiresAt := time.Unix(int64(expFloat), 0)

	// Check if expired
	if time.Now().After(expiresAt) {
		return nil, errors.New("token expired")
	}

	consumed, err := s.consume(ctx, tokenID, time.Until(expiresAt))
	if err != nil {
		return nil, fmt.Errorf("failed to record token redemption: %w", err)
	}
	if !consumed {
		return nil, errors.New("token already used")
	}

	return &SignedToken{
		ReportID:  int64(reportIDFloat),
		TokenID:   tokenID,
		ExpiresAt: expiresAt,
	}, nil
}

// consume writes the used-marker for a token id and reports whether this
// call was the one that created it. The marker expires with the token.
func (s *URLSignerService) consume(ctx context.Context, tokenID string, ttl time.Duration) (bool, error) {
	key := usedTokenKey(tokenID)

	if s.redis != nil {
		return s.redis.SetNX(ctx, key, "1", ttl).Result()
	}

	if err := s.fallback.Add(key, true, ttl); err != nil {
		return false, nil
	}
	return true, nil
}

func usedTokenKey(tokenID string) string {
	return "share_token_used:" + tokenID
}
