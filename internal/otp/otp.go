// Package otp mints the one-time codes attached to bookings.
package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// codeSpan is the size of the code space. Codes are drawn uniformly from
// 100000-999999; the leading digit is never zero, matching the issued format.
const codeSpan = 900000

// Generator produces fixed-format random codes with a fixed expiry window.
type Generator struct {
	ttl time.Duration
	now func() time.Time
}

// NewGenerator builds a generator with the given code lifetime.
func NewGenerator(ttl time.Duration) *Generator {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Generator{ttl: ttl, now: time.Now}
}

// Generate returns a fresh 6-digit code and its absolute expiry.
func (g *Generator) Generate() (string, time.Time, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpan))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("generate otp: %w", err)
	}
	code := fmt.Sprintf("%06d", n.Int64()+100000)
	return code, g.now().Add(g.ttl), nil
}

// TTL returns the configured code lifetime.
func (g *Generator) TTL() time.Duration {
	return g.ttl
}
