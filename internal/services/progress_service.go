package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/printforge-edu/learning-service/internal/events"
	"github.com/printforge-edu/learning-service/internal/models"
	"github.com/printforge-edu/learning-service/internal/repositories"
	"github.com/printforge-edu/learning-service/internal/validator"
)

type progressService struct {
	store     repositories.Store
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewProgressService(store repositories.Store, publisher events.EventPublisher, logger *slog.Logger, validator *validator.Validator) ProgressService {
	return &progressService{
		store:     store,
		publisher: publisher,
		logger:    logger,
		validator: validator,
	}
}

func (s *progressService) Get(ctx context.Context, userID uint) ([]*models.Progress, error) {
	return s.store.Progress().ListByUser(ctx, userID)
}

func (s *progressService) RecordVisit(ctx context.Context, req *RecordVisitRequest) (*models.Progress, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	lastAccessed := time.Now()
	if req.LastAccessed != nil {
		lastAccessed = *req.LastAccessed
	}

	progress, err := s.store.Progress().RecordVisit(ctx, req.UserID, req.ModuleID, req.Completed, lastAccessed, req.TimeSpent)
	if err != nil {
		return nil, fmt.Errorf("failed to record visit: %w", err)
	}

	if progress.Completed {
		event := events.NewEvent(events.ModuleCompleted, events.ModuleCompletedEvent{
			UserID:    progress.UserID,
			ModuleID:  progress.ModuleID,
			TimeSpent: progress.TimeSpent,
		})
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.Error("failed to publish module completed event", "error", err)
		}
	}

	return progress, nil
}

func (s *progressService) Overall(ctx context.Context, userID uint) (int, error) {
	total, err := s.store.Modules().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count modules: %w", err)
	}
	if total == 0 {
		return 0, nil
	}

	rows, err := s.store.Progress().ListByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to load progress: %w", err)
	}

	completed := 0
	for _, p := range rows {
		if p.Completed {
			completed++
		}
	}

	// Round half away from zero, so 3 of 8 is 38, not 37.
	return int(math.Round(float64(completed) / float64(total) * 100)), nil
}
