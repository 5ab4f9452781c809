package middleware

import (
	"testing"
	"time"
)

func TestRateLimiter_AllowsUpToMax(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{Max: 3, Window: time.Minute, KeyFn: KeyByIP})

	for i := 0; i < 3; i++ {
		if !rl.Allow("ip:1.2.3.4") {
			t.Fatalf("request %d denied, want allowed", i+1)
		}
	}
	if rl.Allow("ip:1.2.3.4") {
		t.Error("request over the limit allowed, want denied")
	}
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{Max: 1, Window: time.Minute, KeyFn: KeyByIP})

	if !rl.Allow("ip:a") {
		t.Fatal("first request for key a denied")
	}
	if !rl.Allow("ip:b") {
		t.Error("first request for key b denied, keys should not share windows")
	}
}

func TestRateLimiter_WindowResets(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{Max: 1, Window: 10 * time.Millisecond, KeyFn: KeyByIP})

	if !rl.Allow("ip:x") {
		t.Fatal("first request denied")
	}
	if rl.Allow("ip:x") {
		t.Fatal("second request in window allowed")
	}

	time.Sleep(15 * time.Millisecond)
	if !rl.Allow("ip:x") {
		t.Error("request after window expiry denied, want new window")
	}
}
