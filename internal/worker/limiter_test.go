package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_New(t *testing.T) {
	limiter := NewLimiter(10, 5)
	if limiter.defaultBurst != 5 {
		t.Errorf("expected burst 5, got %d", limiter.defaultBurst)
	}

	l2 := NewLimiter(10, -1)
	if l2.defaultBurst != 5 {
		t.Errorf("expected default burst 5 for negative input, got %d", l2.defaultBurst)
	}
}

func TestLimiter_Wait(t *testing.T) {
	limiter := NewLimiter(100, 1)
	ctx := context.Background()

	if err := limiter.Wait(ctx, "https://registry.npmjs.org/tool"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
	if err := limiter.Wait(ctx, "https://pypi.org/pypi/tool/json"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
}

func TestLimiter_WaitWithDelay(t *testing.T) {
	limiter := NewLimiter(100, 1)
	ctx := context.Background()

	start := time.Now()
	if err := limiter.WaitWithDelay(ctx, "https://example.com", 50*time.Millisecond); err != nil {
		t.Fatalf("WaitWithDelay failed: %v", err)
	}
	if d := time.Since(start); d < 50*time.Millisecond {
		t.Errorf("expected delay >= 50ms, got %v", d)
	}
}

func TestLimiter_PerHostTokens(t *testing.T) {
	limiter := NewLimiter(1, 1)
	url := "https://registry.npmjs.org/tool"

	if err := limiter.Wait(context.Background(), url); err != nil {
		t.Errorf("first wait failed: %v", err)
	}
	// Burst of 1 is consumed, the next immediate request must not be allowed
	if limiter.Allow(url) {
		t.Error("expected allow to fail with exhausted tokens")
	}
	// Another registry host has its own bucket
	if !limiter.Allow("https://crates.io/api/v1/crates/tool") {
		t.Error("expected allow for a different host")
	}
}

func TestLimiter_SetHostRate(t *testing.T) {
	limiter := NewLimiter(10, 10)
	host := "rdap.org"

	limiter.SetHostRate(host, 0.1, 1)

	if !limiter.Allow("https://" + host + "/domain/tool.com") {
		t.Error("first request should pass")
	}
	if limiter.Allow("https://" + host + "/domain/tool.dev") {
		t.Error("second request should fail under the strict host rate")
	}
	if !limiter.Allow("https://hub.docker.com/v2/repositories/tool") {
		t.Error("other host should pass")
	}
}

func TestExtractHost(t *testing.T) {
	host, err := extractHost("https://registry.npmjs.org/tool")
	if err != nil {
		t.Fatalf("extractHost failed: %v", err)
	}
	if host != "registry.npmjs.org" {
		t.Errorf("expected registry.npmjs.org, got %s", host)
	}

	if _, err := extractHost("::invalid"); err == nil {
		t.Error("expected error for invalid URL")
	}
}
