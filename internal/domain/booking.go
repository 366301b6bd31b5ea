package domain

import "time"

// OTPDelivery tracks whether the one-time code reached the user.
type OTPDelivery string

const (
	OTPDeliveryPending OTPDelivery = "PENDING"
	OTPDeliverySent    OTPDelivery = "SENT"
)

// Booking is a rental request pending OTP confirmation. Each booking carries
// exactly one live code, minted at creation and never rotated. Verification
// reads the code but records no state transition.
type Booking struct {
	ID           string
	UserID       string
	Car          string
	OTPCode      string
	OTPExpiresAt time.Time
	OTPDelivery  OTPDelivery
	CreatedAt    time.Time
}
