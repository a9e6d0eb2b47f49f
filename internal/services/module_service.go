package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/printforge-edu/learning-service/internal/models"
	"github.com/printforge-edu/learning-service/internal/repositories"
	"github.com/printforge-edu/learning-service/internal/validator"
)

type moduleService struct {
	store     repositories.Store
	logger    *slog.Logger
	validator *validator.Validator
}

func NewModuleService(store repositories.Store, logger *slog.Logger, validator *validator.Validator) ModuleService {
	return &moduleService{
		store:     store,
		logger:    logger,
		validator: validator,
	}
}

func (s *moduleService) List(ctx context.Context, moduleType *models.ModuleType) ([]*models.Module, error) {
	if moduleType != nil {
		return s.store.Modules().ListByType(ctx, *moduleType)
	}
	return s.store.Modules().List(ctx)
}

func (s *moduleService) Get(ctx context.Context, id uint) (*models.Module, error) {
	module, err := s.store.Modules().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrModuleNotFound
		}
		return nil, fmt.Errorf("failed to get module: %w", err)
	}
	return module, nil
}

func (s *moduleService) Create(ctx context.Context, req *CreateModuleRequest) (*models.Module, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	module := &models.Module{
		Title:            req.Title,
		Description:      req.Description,
		Content:          req.Content,
		Type:             req.Type,
		Level:            req.Level,
		DisplayOrder:     req.DisplayOrder,
		EstimatedMinutes: req.EstimatedMinutes,
		ImageURL:         req.ImageURL,
	}
	if err := s.store.Modules().Create(ctx, module); err != nil {
		return nil, fmt.Errorf("failed to create module: %w", err)
	}

	s.logger.Info("module created", "module_id", module.ID, "title", module.Title)
	return module, nil
}
