package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/secassess/assesshub/internal/app/system/auth"
)

func TestAllowWithinBudget(t *testing.T) {
	l := New(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !l.Allow("alice") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if l.Allow("alice") {
		t.Fatal("fourth request should be blocked")
	}
	if !l.Allow("bob") {
		t.Fatal("a different key has its own window")
	}
}

func TestWindowExpiry(t *testing.T) {
	l := New(1, 20*time.Millisecond)

	if !l.Allow("k") {
		t.Fatal("first request should be allowed")
	}
	if l.Allow("k") {
		t.Fatal("second request inside the window should be blocked")
	}

	time.Sleep(30 * time.Millisecond)
	if !l.Allow("k") {
		t.Fatal("request after the window expires should be allowed")
	}
}

func TestRemainingAndReset(t *testing.T) {
	l := New(2, time.Minute)

	if got := l.Remaining("k"); got != 2 {
		t.Fatalf("Remaining before any request = %d, want 2", got)
	}
	l.Allow("k")
	if got := l.Remaining("k"); got != 1 {
		t.Fatalf("Remaining after one request = %d, want 1", got)
	}
	l.Allow("k")
	l.Allow("k")
	if got := l.Remaining("k"); got != 0 {
		t.Fatalf("Remaining at the limit = %d, want 0", got)
	}

	l.Reset("k")
	if !l.Allow("k") {
		t.Fatal("request after Reset should be allowed")
	}
}

func TestMiddlewareKeysOnSubject(t *testing.T) {
	l := New(1, time.Minute)
	var calls int
	h := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))

	send := func(subject string) int {
		r := httptest.NewRequest(http.MethodPost, "/", nil)
		if subject != "" {
			r = auth.WithTestUser(r, &auth.TokenUser{Subject: subject, Role: "auditor"})
		}
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		return w.Code
	}

	if code := send("alice@example.com"); code != http.StatusOK {
		t.Fatalf("first request status = %d, want 200", code)
	}
	if code := send("alice@example.com"); code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d, want 429", code)
	}
	if code := send("bob@example.com"); code != http.StatusOK {
		t.Fatalf("another subject's request status = %d, want 200", code)
	}
	if calls != 2 {
		t.Fatalf("handler called %d times, want 2", calls)
	}
}

func TestClientIP(t *testing.T) {
	cases := []struct {
		name       string
		remoteAddr string
		xff        string
		xri        string
		want       string
	}{
		{name: "remote addr with port", remoteAddr: "10.0.0.9:4431", want: "10.0.0.9"},
		{name: "x-forwarded-for wins", remoteAddr: "10.0.0.9:4431", xff: "203.0.113.7, 10.0.0.1", want: "203.0.113.7"},
		{name: "x-real-ip fallback", remoteAddr: "10.0.0.9:4431", xri: "203.0.113.8", want: "203.0.113.8"},
		{name: "remote addr without port", remoteAddr: "10.0.0.9", want: "10.0.0.9"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tc.remoteAddr
			if tc.xff != "" {
				r.Header.Set("X-Forwarded-For", tc.xff)
			}
			if tc.xri != "" {
				r.Header.Set("X-Real-IP", tc.xri)
			}
			if got := ClientIP(r); got != tc.want {
				t.Fatalf("ClientIP = %q, want %q", got, tc.want)
			}
		})
	}
}
