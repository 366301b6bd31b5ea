package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/car-rental-service/internal/api/dto"
	"github.com/spec-kit/car-rental-service/internal/service"
	apperrors "github.com/spec-kit/car-rental-service/pkg/util/errorutil"
)

// BookingsHandler exposes booking creation and OTP verification.
type BookingsHandler struct {
	bookings *service.BookingService
}

// NewBookingsHandler constructs the handler.
func NewBookingsHandler(bookingService *service.BookingService) *BookingsHandler {
	return &BookingsHandler{bookings: bookingService}
}

// Book handles POST /api/book. The OTP travels to the user out-of-band and
// never appears in the response.
func (h *BookingsHandler) Book(c *fiber.Ctx) error {
	var req dto.BookRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	booking, err := h.bookings.CreateBooking(c.UserContext(), req.Email, req.Car)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message":   "Booking created & OTP sent to your email",
		"bookingId": booking.ID,
	})
}

// VerifyOtp handles POST /api/verify-otp.
func (h *BookingsHandler) VerifyOtp(c *fiber.Ctx) error {
	var req dto.VerifyOtpRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	if err := h.bookings.VerifyOtp(c.UserContext(), req.BookingID, req.OTP); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "OTP verified successfully",
	})
}
