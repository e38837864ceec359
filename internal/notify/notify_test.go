package notify

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	p := New("hello")

	if p.Title != "True Travel AI" {
		t.Errorf("title = %q", p.Title)
	}
	if p.Body != "hello" {
		t.Errorf("body = %q", p.Body)
	}
	if p.Icon == "" || p.Badge == "" || p.URL == "" {
		t.Error("branding defaults should be filled")
	}
}

func TestTripPlanned(t *testing.T) {
	p := TripPlanned("Tokyo", "2026-10-01")

	if !strings.Contains(p.Body, "Tokyo") || !strings.Contains(p.Body, "2026-10-01") {
		t.Errorf("body %q should mention destination and start date", p.Body)
	}
}
