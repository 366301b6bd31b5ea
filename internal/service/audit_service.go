package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/car-rental-service/internal/events"
)

// AuditService writes a structured log line for each domain event.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger) *AuditService {
	return &AuditService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to all domain events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventUserRegistered, a.logEvent)
	a.dispatcher.Subscribe(events.EventBookingCreated, a.logEvent)
	a.dispatcher.Subscribe(events.EventOTPVerified, a.logEvent)
}

func (a *AuditService) logEvent(_ context.Context, event events.Event) error {
	a.logger.Info("domain event",
		zap.String("event_id", event.ID),
		zap.String("type", string(event.Type)),
		zap.Any("payload", event.Payload),
	)
	return nil
}
