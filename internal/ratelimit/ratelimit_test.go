package ratelimit_test

import (
	"testing"
	"time"

	"github.com/alex-user-go/tripplanner/internal/ratelimit"
)

func TestLimiter_Allow(t *testing.T) {
	tests := []struct {
		name       string
		limit      int
		window     time.Duration
		key        string
		calls      int
		wantPassed int
	}{
		{
			name:       "all requests within limit",
			limit:      5,
			window:     time.Minute,
			key:        "203.0.113.7",
			calls:      5,
			wantPassed: 5,
		},
		{
			name:       "exceed limit",
			limit:      3,
			window:     time.Minute,
			key:        "203.0.113.8",
			calls:      5,
			wantPassed: 3,
		},
		{
			name:       "zero limit blocks all",
			limit:      0,
			window:     time.Minute,
			key:        "203.0.113.9",
			calls:      3,
			wantPassed: 0,
		},
		{
			name:       "empty key still limited",
			limit:      2,
			window:     time.Minute,
			key:        "",
			calls:      3,
			wantPassed: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := ratelimit.New(tt.limit, tt.window)
			defer l.Close()

			passed := 0
			for i := 0; i < tt.calls; i++ {
				if l.Allow(tt.key) {
					passed++
				}
			}

			if passed != tt.wantPassed {
				t.Errorf("Allow() passed %d requests, want %d", passed, tt.wantPassed)
			}
		})
	}
}

func TestLimiter_WindowReset(t *testing.T) {
	l := ratelimit.New(2, 50*time.Millisecond)
	defer l.Close()

	key := "203.0.113.7"

	if !l.Allow(key) || !l.Allow(key) {
		t.Fatal("first two requests should be allowed")
	}
	if l.Allow(key) {
		t.Error("third request should be blocked")
	}
	if l.RetryAfter(key) <= 0 {
		t.Error("RetryAfter should be positive for an exhausted key")
	}

	time.Sleep(60 * time.Millisecond)

	if !l.Allow(key) {
		t.Error("request after window reset should be allowed")
	}
}

func TestLimiter_KeysIsolated(t *testing.T) {
	l := ratelimit.New(2, time.Minute)
	defer l.Close()

	for _, key := range []string{"203.0.113.1", "203.0.113.2", "203.0.113.3"} {
		passed := 0
		for i := 0; i < 3; i++ {
			if l.Allow(key) {
				passed++
			}
		}
		if passed != 2 {
			t.Errorf("key %s: passed %d requests, want 2", key, passed)
		}
	}
}

func TestLimiter_Concurrent(t *testing.T) {
	l := ratelimit.New(100, time.Minute)
	defer l.Close()

	key := "203.0.113.7"
	start := make(chan struct{})
	results := make(chan bool, 200)

	for i := 0; i < 200; i++ {
		go func() {
			<-start
			results <- l.Allow(key)
		}()
	}

	close(start)

	count := 0
	for i := 0; i < 200; i++ {
		if <-results {
			count++
		}
	}

	if count != 100 {
		t.Errorf("concurrent test: %d requests passed, want 100", count)
	}
}
