package otp

import (
	"strconv"
	"testing"
	"time"
)

func TestGenerateFormat(t *testing.T) {
	gen := NewGenerator(5 * time.Minute)

	for i := 0; i < 200; i++ {
		code, _, err := gen.Generate()
		if err != nil {
			t.Fatalf("Generate returned error: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("expected 6-digit code, got %q", code)
		}
		n, err := strconv.Atoi(code)
		if err != nil {
			t.Fatalf("code %q is not numeric: %v", code, err)
		}
		if n < 100000 || n > 999999 {
			t.Fatalf("code %d outside 100000-999999", n)
		}
	}
}

func TestGenerateExpiry(t *testing.T) {
	gen := NewGenerator(5 * time.Minute)
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	gen.now = func() time.Time { return fixed }

	_, expiresAt, err := gen.Generate()
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if want := fixed.Add(5 * time.Minute); !expiresAt.Equal(want) {
		t.Fatalf("expiry = %v, want %v", expiresAt, want)
	}
}

func TestGenerateVaries(t *testing.T) {
	gen := NewGenerator(5 * time.Minute)

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		code, _, err := gen.Generate()
		if err != nil {
			t.Fatalf("Generate returned error: %v", err)
		}
		seen[code] = struct{}{}
	}
	// 50 draws from a 900000-code space colliding down to a handful would
	// indicate a broken source.
	if len(seen) < 40 {
		t.Fatalf("expected mostly distinct codes, got %d unique of 50", len(seen))
	}
}

func TestNewGeneratorDefaultTTL(t *testing.T) {
	gen := NewGenerator(0)
	if gen.TTL() != 5*time.Minute {
		t.Fatalf("default TTL = %v, want 5m", gen.TTL())
	}
}
