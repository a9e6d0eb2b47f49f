package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/printforge-edu/learning-service/internal/cache"
	"github.com/printforge-edu/learning-service/internal/models"
	"github.com/printforge-edu/learning-service/internal/repositories"
	"github.com/printforge-edu/learning-service/internal/validator"
)

// Reference catalogs change only when something is seeded or created, so
// listings can sit in the cache until a create invalidates them.
const referenceCacheTTL = 10 * time.Minute

const (
	cacheKeyGlossary  = "glossary:list"
	cacheKeyParts     = "parts:list"
	cacheKeyMaterials = "materials:list"
)

type referenceService struct {
	store     repositories.Store
	cache     *cache.Helper
	logger    *slog.Logger
	validator *validator.Validator
}

// NewReferenceService builds the reference catalog service. cacheHelper
// may be nil; every cache operation degrades to the store.
func NewReferenceService(store repositories.Store, cacheHelper *cache.Helper, logger *slog.Logger, validator *validator.Validator) ReferenceService {
	return &referenceService{
		store:     store,
		cache:     cacheHelper,
		logger:    logger,
		validator: validator,
	}
}

// ===== GLOSSARY =====

func (s *referenceService) GlossaryTerms(ctx context.Context) ([]*models.GlossaryTerm, error) {
	var cached []*models.GlossaryTerm
	if err := s.cache.Get(ctx, cacheKeyGlossary, &cached); err == nil {
		return cached, nil
	}

	terms, err := s.store.Glossary().List(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, cacheKeyGlossary, terms)
	return terms, nil
}

func (s *referenceService) GlossaryTerm(ctx context.Context, id uint) (*models.GlossaryTerm, error) {
	term, err := s.store.Glossary().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrTermNotFound
		}
		return nil, fmt.Errorf("failed to get glossary term: %w", err)
	}
	return term, nil
}

func (s *referenceService) CreateGlossaryTerm(ctx context.Context, req *CreateGlossaryTermRequest) (*models.GlossaryTerm, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	term := &models.GlossaryTerm{
		Term:       req.Term,
		Definition: req.Definition,
		Category:   req.Category,
	}
	if err := s.store.Glossary().Create(ctx, term); err != nil {
		if repositories.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateTerm
		}
		return nil, fmt.Errorf("failed to create glossary term: %w", err)
	}

	s.cacheInvalidate(ctx, cacheKeyGlossary)
	return term, nil
}

// ===== PRINTER PARTS =====

func (s *referenceService) Parts(ctx context.Context) ([]*models.PrinterPart, error) {
	var cached []*models.PrinterPart
	if err := s.cache.Get(ctx, cacheKeyParts, &cached); err == nil {
		return cached, nil
	}

	parts, err := s.store.Parts().List(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, cacheKeyParts, parts)
	return parts, nil
}

func (s *referenceService) Part(ctx context.Context, id uint) (*models.PrinterPart, error) {
	part, err := s.store.Parts().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrPartNotFound
		}
		return nil, fmt.Errorf("failed to get printer part: %w", err)
	}
	return part, nil
}

func (s *referenceService) CreatePart(ctx context.Context, req *CreatePrinterPartRequest) (*models.PrinterPart, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	part := &models.PrinterPart{
		Name:        req.Name,
		Description: req.Description,
		Function:    req.Function,
		Position:    models.PartPosition{X: req.PositionX, Y: req.PositionY},
	}
	if err := s.store.Parts().Create(ctx, part); err != nil {
		return nil, fmt.Errorf("failed to create printer part: %w", err)
	}

	s.cacheInvalidate(ctx, cacheKeyParts)
	return part, nil
}

// ===== MATERIALS =====

func (s *referenceService) Materials(ctx context.Context) ([]*models.Material, error) {
	var cached []*models.Material
	if err := s.cache.Get(ctx, cacheKeyMaterials, &cached); err == nil {
		return cached, nil
	}

	materials, err := s.store.Materials().List(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, cacheKeyMaterials, materials)
	return materials, nil
}

func (s *referenceService) Material(ctx context.Context, id uint) (*models.Material, error) {
	material, err := s.store.Materials().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrMaterialNotFound
		}
		return nil, fmt.Errorf("failed to get material: %w", err)
	}
	return material, nil
}

func (s *referenceService) CreateMaterial(ctx context.Context, req *CreateMaterialRequest) (*models.Material, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	material := &models.Material{
		Name:           req.Name,
		FullName:       req.FullName,
		Difficulty:     req.Difficulty,
		Strength:       req.Strength,
		Flexibility:    req.Flexibility,
		Temperature:    req.Temperature,
		BedTemperature: req.BedTemperature,
		UseCases:       req.UseCases,
		Icon:           req.Icon,
		Color:          req.Color,
	}
	if err := s.store.Materials().Create(ctx, material); err != nil {
		return nil, fmt.Errorf("failed to create material: %w", err)
	}

	s.cacheInvalidate(ctx, cacheKeyMaterials)
	return material, nil
}

func (s *referenceService) cacheSet(ctx context.Context, key string, value interface{}) {
	if err := s.cache.Set(ctx, key, value, referenceCacheTTL); err != nil {
		s.logger.Warn("failed to cache reference listing", "key", key, "error", err)
	}
}

func (s *referenceService) cacheInvalidate(ctx context.Context, key string) {
	if err := s.cache.Delete(ctx, key); err != nil {
		s.logger.Warn("failed to invalidate reference cache", "key", key, "error", err)
	}
}
