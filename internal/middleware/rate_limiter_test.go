package middleware

import (
	"testing"
	"time"
)

func TestCheckUserLimit(t *testing.T) {
	rl := NewRateLimiter(3, 10, time.Minute)

	for i := 0; i < 3; i++ {
		if !rl.CheckUserLimit(42) {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	if rl.CheckUserLimit(42) {
		t.Error("request over the limit should be denied")
	}

	// Other users are unaffected
	if !rl.CheckUserLimit(43) {
		t.Error("different user should be allowed")
	}
}

func TestCheckIPLimit(t *testing.T) {
	rl := NewRateLimiter(10, 2, time.Minute)

	if !rl.CheckIPLimit("10.0.0.1") || !rl.CheckIPLimit("10.0.0.1") {
		t.Fatal("first two requests should be allowed")
	}
	if rl.CheckIPLimit("10.0.0.1") {
		t.Error("third request should be denied")
	}
	if !rl.CheckIPLimit("10.0.0.2") {
		t.Error("different IP should be allowed")
	}
}

func TestWindowReset(t *testing.T) {
	rl := NewRateLimiter(1, 1, 10*time.Millisecond)

	if !rl.CheckUserLimit(42) {
		t.Fatal("first request should be allowed")
	}
	if rl.CheckUserLimit(42) {
		t.Fatal("second request should be denied")
	}

	time.Sleep(20 * time.Millisecond)

	if !rl.CheckUserLimit(42) {
		t.Error("request after window reset should be allowed")
	}
}

func TestReset(t *testing.T) {
	rl := NewRateLimiter(1, 1, time.Minute)

	rl.CheckUserLimit(42)
	rl.CheckIPLimit("10.0.0.1")
	rl.Reset()

	if !rl.CheckUserLimit(42) {
		t.Error("user should be allowed after Reset")
	}
	if !rl.CheckIPLimit("10.0.0.1") {
		t.Error("IP should be allowed after Reset")
	}
}
