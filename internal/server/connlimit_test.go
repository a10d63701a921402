package server

import (
	"testing"

	"github.com/lawnchairsociety/shatteredrealms/server/internal/config"
)

func TestConnLimiterPerIP(t *testing.T) {
	l := NewConnLimiter(config.ConnectionsConfig{MaxPerIP: 2, MaxTotal: 10})

	if !l.TryAcquire("10.0.0.1") || !l.TryAcquire("10.0.0.1") {
		t.Fatal("first two connections from an IP should be allowed")
	}
	if l.TryAcquire("10.0.0.1") {
		t.Error("third connection from the same IP should be rejected")
	}
	if !l.TryAcquire("10.0.0.2") {
		t.Error("a different IP should still be allowed")
	}

	l.Release("10.0.0.1")
	if !l.TryAcquire("10.0.0.1") {
		t.Error("released slot should be reusable")
	}
}

func TestConnLimiterTotal(t *testing.T) {
	l := NewConnLimiter(config.ConnectionsConfig{MaxPerIP: 0, MaxTotal: 2})

	l.TryAcquire("10.0.0.1")
	l.TryAcquire("10.0.0.2")
	if l.TryAcquire("10.0.0.3") {
		t.Error("connection beyond the total cap should be rejected")
	}

	total, ips := l.GetStats()
	if total != 2 || ips != 2 {
		t.Errorf("expected stats (2, 2), got (%d, %d)", total, ips)
	}
}

func TestConnLimiterUnlimited(t *testing.T) {
	l := NewConnLimiter(config.ConnectionsConfig{})

	for i := 0; i < 50; i++ {
		if !l.TryAcquire("10.0.0.1") {
			t.Fatal("zero limits mean unlimited")
		}
	}
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"10.0.0.1:4000", "10.0.0.1"},
		{"[::1]:4000", "::1"},
		{"not-an-addr", "not-an-addr"},
	}

	for _, tt := range tests {
		if got := extractIP(tt.input); got != tt.want {
			t.Errorf("extractIP(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
