package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/printforge-edu/learning-service/internal/models"
	"github.com/printforge-edu/learning-service/internal/repositories"
	"github.com/printforge-edu/learning-service/internal/validator"
)

type userService struct {
	store     repositories.Store
	logger    *slog.Logger
	validator *validator.Validator
}

func NewUserService(store repositories.Store, logger *slog.Logger, validator *validator.Validator) UserService {
	return &userService{
		store:     store,
		logger:    logger,
		validator: validator,
	}
}

func (s *userService) Get(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.store.Users().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.store.Users().GetByUsername(ctx, username)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *userService) Create(ctx context.Context, req *CreateUserRequest) (*models.User, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	user := &models.User{
		Username:     req.Username,
		Password:     req.Password,
		DisplayName:  req.DisplayName,
		ProgressData: req.ProgressData,
	}
	if err := s.store.Users().Create(ctx, user); err != nil {
		if repositories.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user created", "user_id", user.ID, "username", user.Username)
	return user, nil
}

func (s *userService) UpdateProgress(ctx context.Context, userID uint, req *UpdateUserProgressRequest) (*models.User, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	user, err := s.store.Users().UpdateProgressData(ctx, userID, req.ProgressData)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update user progress: %w", err)
	}
	return user, nil
}
