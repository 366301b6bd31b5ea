package events

import (
	"time"

	"github.com/spec-kit/car-rental-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered EventType = "user_registered"
	EventBookingCreated EventType = "booking_created"
	EventOTPVerified    EventType = "otp_verified"
)

// Event represents a domain event emitted by services. Payloads never carry
// the OTP code or a password hash.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	UserID string      `json:"user_id"`
	Email  string      `json:"email"`
	Role   domain.Role `json:"role"`
}

// BookingCreatedPayload payload.
type BookingCreatedPayload struct {
	BookingID    string    `json:"booking_id"`
	UserID       string    `json:"user_id"`
	Car          string    `json:"car"`
	OTPExpiresAt time.Time `json:"otp_expires_at"`
}

// OTPVerifiedPayload payload.
type OTPVerifiedPayload struct {
	BookingID string `json:"booking_id"`
}
