package common

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func newTestSigner() *URLSignerService {
	cache := NewCacheService(60, 600)
	return NewURLSignerService([]byte("test-secret"), nil, cache)
}

func TestURLSigner_RoundTrip(t *testing.T) {
	signer := newTestSigner()

	token, expiresAt, err := signer.GenerateShareToken(7, time.Minute)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Error("Expected expiry in the future")
	}

	st, err := signer.RedeemToken(context.Background(), token)
	if err != nil {
		t.Fatalf("Expected valid token, got %v", err)
	}
	if st.ReportID != 7 {
		t.Errorf("Expected report id 7, got %d", st.ReportID)
	}
}

func TestURLSigner_SingleUse(t *testing.T) {
	signer := newTestSigner()

	token, _, err := signer.GenerateShareToken(7, time.Minute)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	ctx := context.Background()
	if _, err := signer.RedeemToken(ctx, token); err != nil {
		t.Fatalf("Expected first redemption to succeed, got %v", err)
	}

	if _, err := signer.RedeemToken(ctx, token); err == nil {
		t.Error("Expected second redemption to fail")
	}
}

func TestURLSigner_ConcurrentRedemptionsConsumeOnce(t *testing.T) {
	signer := newTestSigner()

	token, _, err := signer.GenerateShareToken(7, time.Minute)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	const redeemers = 8
	var successes int64
	var wg sync.WaitGroup
	wg.Add(redeemers)
	for i := 0; i < redeemers; i++ {
		go func() {
			defer wg.Done()
			if _, err := signer.RedeemToken(context.Background(), token); err == nil {
				atomic.AddInt64(&successes, 1)
			}
		}()
	}
	wg.Wait()

	if successes != 1 {
		t.Errorf("Expected exactly one successful redemption, got %d", successes)
	}
}

func TestURLSigner_RejectsTamperedToken(t *testing.T) {
	signer := newTestSigner()

	token, _, err := signer.GenerateShareToken(7, time.Minute)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	other := NewURLSignerService([]byte("different-secret"), nil, NewCacheService(60, 600))
	if _, err := other.RedeemToken(context.Background(), token); err == nil {
		t.Error("Expected token signed with another secret to fail")
	}
}

func TestURLSigner_RejectsExpiredToken(t *testing.T) {
	signer := newTestSigner()

	token, _, err := signer.GenerateShareToken(7, -time.Minute)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := signer.RedeemToken(context.Background(), token); err == nil {
		t.Error("Expected expired token to fail validation")
	}
}
