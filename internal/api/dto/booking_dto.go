package dto

// BookRequest payload for booking creation.
type BookRequest struct {
	Email string `json:"email"`
	Car   string `json:"car"`
}

// VerifyOtpRequest payload for OTP verification.
type VerifyOtpRequest struct {
	BookingID string `json:"bookingId"`
	OTP       string `json:"otp"`
}
