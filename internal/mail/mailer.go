// Package mail delivers one-time codes to users out-of-band.
package mail

import (
	"context"
	"time"
)

// Mailer delivers a booking OTP to the user. Implementations must bound the
// attempt; a timeout is treated like any other delivery failure.
type Mailer interface {
	SendOTP(ctx context.Context, to, name, car, code string, expiresAt time.Time) error
}
