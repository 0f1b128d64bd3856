// File: internal/confirmation/service.go

// Package confirmation materializes profiles from identity provider
// confirmation events. Delivery is at-least-once, so processing is
// idempotent, and the event source is always acknowledged: a confirmed user
// must never be blocked by profile storage being down.
package confirmation

import (
	"context"

	"go.uber.org/zap"

	"identity_kit_backend/internal/metrics"
	"identity_kit_backend/internal/profile"
)

// Event is the one-shot notification delivered when the identity provider
// confirms a user.
type Event struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// Service is the confirmation materializer.
type Service struct {
	repo    profile.Repository
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewService creates a new confirmation materializer.
func NewService(repo profile.Repository, m *metrics.Metrics, logger *zap.Logger) *Service {
	return &Service{repo: repo, metrics: m, logger: logger}
}

// Process handles one confirmation event. It deliberately returns nothing:
// the acknowledgment to the event source is unconditional, and internal
// failure is captured only in logs and counters. A user whose profile write
// failed stays confirmed and transiently profile-less, observable as a 404
// on the profile read path.
func (s *Service) Process(ctx context.Context, ev Event) {
	if ev.UserID == "" || ev.Email == "" {
		// Malformed event, not a retryable condition.
		s.logger.Error("Confirmation event missing required attributes",
			zap.String("userID", ev.UserID),
			zap.String("email", ev.Email),
		)
		s.metrics.ConfirmationEvents.WithLabelValues(metrics.OutcomeMalformed).Inc()
		return
	}

	created, err := s.repo.Create(ctx, profile.New(ev.UserID, ev.Email))
	if err != nil {
		// Still acknowledged: blocking confirmation on profile-store
		// availability would strand an otherwise validly confirmed user.
		s.logger.Error("Failed to create user profile for confirmed user",
			zap.Error(err),
			zap.String("userID", ev.UserID),
			zap.String("email", ev.Email),
		)
		s.metrics.ConfirmationEvents.WithLabelValues(metrics.OutcomeError).Inc()
		return
	}

	if !created {
		// Redelivery of an event already processed.
		s.logger.Debug("User profile already exists, duplicate confirmation event",
			zap.String("userID", ev.UserID),
		)
		s.metrics.ConfirmationEvents.WithLabelValues(metrics.OutcomeDuplicate).Inc()
		return
	}

	s.logger.Info("User profile created successfully",
		zap.String("userID", ev.UserID),
		zap.String("email", ev.Email),
	)
	s.metrics.ConfirmationEvents.WithLabelValues(metrics.OutcomeCreated).Inc()
}
