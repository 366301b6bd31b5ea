package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/car-rental-service/internal/domain"
	"github.com/spec-kit/car-rental-service/internal/mail"
	"github.com/spec-kit/car-rental-service/internal/repository"
	"github.com/spec-kit/car-rental-service/internal/service"
)

// RedeliveryWorker retries failed OTP deliveries in the background until the
// code expires. It owns a single goroutine and stops on context cancellation.
type RedeliveryWorker struct {
	queue    *RedisQueue
	bookings repository.BookingRepository
	mailer   mail.Mailer
	logger   *zap.Logger
	interval time.Duration
}

// NewRedeliveryWorker constructs the worker.
func NewRedeliveryWorker(queue *RedisQueue, bookings repository.BookingRepository, mailer mail.Mailer, logger *zap.Logger, interval time.Duration) *RedeliveryWorker {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &RedeliveryWorker{
		queue:    queue,
		bookings: bookings,
		mailer:   mailer,
		logger:   logger,
		interval: interval,
	}
}

// Start launches the worker loop.
func (w *RedeliveryWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *RedeliveryWorker) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		job, err := w.queue.Dequeue(ctx, w.interval)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			w.logger.Warn("redelivery dequeue failed", zap.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(w.interval):
			}
			continue
		}
		if job == nil {
			continue
		}
		w.process(ctx, job)
	}
}

func (w *RedeliveryWorker) process(ctx context.Context, job *service.RedeliveryJob) {
	if time.Now().After(job.ExpiresAt) {
		// An expired code can never verify; drop the job instead of spamming.
		w.logger.Info("dropping redelivery for expired otp",
			zap.String("booking_id", job.BookingID))
		return
	}

	if err := w.mailer.SendOTP(ctx, job.Email, job.Name, job.Car, job.Code, job.ExpiresAt); err != nil {
		w.logger.Warn("otp redelivery failed, requeueing",
			zap.String("booking_id", job.BookingID), zap.Error(err))
		if qErr := w.queue.Enqueue(ctx, *job); qErr != nil {
			w.logger.Error("failed to requeue otp redelivery",
				zap.String("booking_id", job.BookingID), zap.Error(qErr))
		}
		select {
		case <-ctx.Done():
		case <-time.After(w.interval):
		}
		return
	}

	if err := w.bookings.UpdateDeliveryStatus(ctx, job.BookingID, domain.OTPDeliverySent); err != nil {
		w.logger.Warn("failed to mark otp delivered after redelivery",
			zap.String("booking_id", job.BookingID), zap.Error(err))
		return
	}
	w.logger.Info("otp redelivered", zap.String("booking_id", job.BookingID))
}
