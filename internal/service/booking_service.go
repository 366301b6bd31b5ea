package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/car-rental-service/internal/domain"
	"github.com/spec-kit/car-rental-service/internal/events"
	"github.com/spec-kit/car-rental-service/internal/mail"
	"github.com/spec-kit/car-rental-service/internal/otp"
	"github.com/spec-kit/car-rental-service/internal/repository"
	apperrors "github.com/spec-kit/car-rental-service/pkg/util/errorutil"
)

// RedeliveryJob is a failed OTP delivery queued for a background retry.
type RedeliveryJob struct {
	ID        string    `json:"id"`
	BookingID string    `json:"booking_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Car       string    `json:"car"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

// DeliveryQueue accepts redelivery jobs for the background worker.
type DeliveryQueue interface {
	Enqueue(ctx context.Context, job RedeliveryJob) error
}

// BookingService coordinates booking creation and OTP verification.
type BookingService struct {
	users      repository.UserRepository
	bookings   repository.BookingRepository
	codes      *otp.Generator
	mailer     mail.Mailer
	queue      DeliveryQueue
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        func() time.Time
}

// BookingDependencies encapsulates requirements for the booking service.
type BookingDependencies struct {
	UserRepo    repository.UserRepository
	BookingRepo repository.BookingRepository
	Codes       *otp.Generator
	Mailer      mail.Mailer
	Queue       DeliveryQueue
	Dispatcher  events.Dispatcher
	Logger      *zap.Logger
}

// NewBookingService builds the service.
func NewBookingService(deps BookingDependencies) *BookingService {
	return &BookingService{
		users:      deps.UserRepo,
		bookings:   deps.BookingRepo,
		codes:      deps.Codes,
		mailer:     deps.Mailer,
		queue:      deps.Queue,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
		now:        time.Now,
	}
}

// CreateBooking persists a booking with a fresh OTP, then attempts delivery.
// The booking is persisted before the notification attempt; on delivery
// failure the record remains, a redelivery job is queued, and the caller
// sees a server error. The OTP itself never appears in the return value.
func (s *BookingService) CreateBooking(ctx context.Context, email, car string) (*domain.Booking, error) {
	if email == "" || car == "" {
		return nil, apperrors.NewValidationError("Email and car are required")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("User")
		}
		return nil, apperrors.NewInternalError(err)
	}

	code, expiresAt, err := s.codes.Generate()
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	booking := &domain.Booking{
		UserID:       user.ID,
		Car:          car,
		OTPCode:      code,
		OTPExpiresAt: expiresAt,
		OTPDelivery:  domain.OTPDeliveryPending,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventBookingCreated,
		Timestamp: s.now(),
		Payload: events.BookingCreatedPayload{
			BookingID:    booking.ID,
			UserID:       user.ID,
			Car:          car,
			OTPExpiresAt: expiresAt,
		},
	})

	if err := s.mailer.SendOTP(ctx, user.Email, user.Name, car, code, expiresAt); err != nil {
		s.logger.Error("otp delivery failed, queueing redelivery",
			zap.String("booking_id", booking.ID), zap.Error(err))
		job := RedeliveryJob{
			ID:        uuid.NewString(),
			BookingID: booking.ID,
			Email:     user.Email,
			Name:      user.Name,
			Car:       car,
			Code:      code,
			ExpiresAt: expiresAt,
		}
		if qErr := s.queue.Enqueue(ctx, job); qErr != nil {
			s.logger.Error("failed to enqueue otp redelivery",
				zap.String("booking_id", booking.ID), zap.Error(qErr))
		}
		return booking, apperrors.NewInternalError(fmt.Errorf("send otp: %w", err))
	}

	if err := s.bookings.UpdateDeliveryStatus(ctx, booking.ID, domain.OTPDeliverySent); err != nil {
		// The mail went out; a stale PENDING status only causes a harmless
		// redundant redelivery attempt.
		s.logger.Warn("failed to mark otp delivered",
			zap.String("booking_id", booking.ID), zap.Error(err))
	} else {
		booking.OTPDelivery = domain.OTPDeliverySent
	}
	return booking, nil
}

// VerifyOtp checks the supplied code against the stored one. Expiry is a
// strict greater-than on the current time. Success records no state
// transition, so a correct code keeps verifying until expiry.
func (s *BookingService) VerifyOtp(ctx context.Context, bookingID, code string) error {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Booking")
		}
		return apperrors.NewInternalError(err)
	}

	if s.now().After(booking.OTPExpiresAt) {
		return apperrors.NewOTPExpired()
	}
	if booking.OTPCode != code {
		return apperrors.NewOTPInvalid()
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventOTPVerified,
		Timestamp: s.now(),
		Payload:   events.OTPVerifiedPayload{BookingID: booking.ID},
	})
	return nil
}
