package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_Allow(t *testing.T) {
	l := NewLimiter(1, 2)

	if !l.Allow("https://example.com/a") {
		t.Error("first request should pass")
	}
	if !l.Allow("https://example.com/b") {
		t.Error("second request should pass within burst")
	}
	if l.Allow("https://example.com/c") {
		t.Error("third request should be limited")
	}

	// Other hosts keep their own allowance
	if !l.Allow("https://other.example.org/x") {
		t.Error("different host should not share the limit")
	}
}

func TestLimiter_Wait(t *testing.T) {
	l := NewLimiter(100, 1)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	for i := 0; i < 3; i++ {
		if err := l.Wait(ctx, "https://example.com/page"); err != nil {
			t.Fatalf("Wait failed on request %d: %v", i, err)
		}
	}
}

func TestLimiter_WaitCanceled(t *testing.T) {
	l := NewLimiter(0.001, 1)
	l.Allow("https://example.com/") // drain the burst

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := l.Wait(ctx, "https://example.com/page"); err == nil {
		t.Error("expected context error from exhausted limiter")
	}
}

func TestLimiter_WaitWithDelay(t *testing.T) {
	l := NewLimiter(100, 5)

	start := time.Now()
	if err := l.WaitWithDelay(context.Background(), "https://example.com/", 30*time.Millisecond); err != nil {
		t.Fatalf("WaitWithDelay failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Errorf("crawl delay not honored, returned after %v", elapsed)
	}
}

func TestLimiter_BadURL(t *testing.T) {
	l := NewLimiter(1, 1)

	if l.Allow("://not a url") {
		t.Error("unparseable URL should not be allowed")
	}
	if err := l.Wait(context.Background(), "://not a url"); err == nil {
		t.Error("expected error for unparseable URL")
	}
}
