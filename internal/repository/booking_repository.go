package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/car-rental-service/internal/domain"
)

// BookingRepository encapsulates booking persistence. OTP fields are written
// once at creation; only the delivery status is ever updated afterwards.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	UpdateDeliveryStatus(ctx context.Context, id string, status domain.OTPDelivery) error
}

type bookingRepository struct {
	pool *pgxpool.Pool
}

// NewBookingRepository returns a Postgres-backed implementation.
func NewBookingRepository(pool *pgxpool.Pool) BookingRepository {
	return &bookingRepository{pool: pool}
}

func (r *bookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	const query = `
        INSERT INTO bookings (user_id, car, otp_code, otp_expires_at, otp_delivery)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		booking.UserID,
		booking.Car,
		booking.OTPCode,
		booking.OTPExpiresAt,
		booking.OTPDelivery,
	).Scan(&booking.ID, &booking.CreatedAt)
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	const query = `
        SELECT id, user_id, car, otp_code, otp_expires_at, otp_delivery, created_at
        FROM bookings WHERE id=$1`

	var booking domain.Booking
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.Car,
		&booking.OTPCode,
		&booking.OTPExpiresAt,
		&booking.OTPDelivery,
		&booking.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) UpdateDeliveryStatus(ctx context.Context, id string, status domain.OTPDelivery) error {
	const query = `UPDATE bookings SET otp_delivery=$1 WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
