package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/printforge-edu/learning-service/internal/cache"
	"github.com/printforge-edu/learning-service/internal/events"
	"github.com/printforge-edu/learning-service/internal/repositories"
	"github.com/printforge-edu/learning-service/internal/validator"
)

// serviceManager implements ServiceManager.
type serviceManager struct {
	store     repositories.Store
	publisher events.EventPublisher
	cache     *cache.Helper
	logger    *slog.Logger
	validator *validator.Validator

	moduleService    ModuleService
	quizService      QuizService
	progressService  ProgressService
	userService      UserService
	referenceService ReferenceService
	exportService    ExportService

	initialized bool
	shutdown    bool
	mu          sync.RWMutex
}

// NewServiceManager creates a service manager over the given store.
// cacheHelper may be nil when no Redis is configured.
func NewServiceManager(store repositories.Store, publisher events.EventPublisher, cacheHelper *cache.Helper, logger *slog.Logger, validator *validator.Validator) ServiceManager {
	return &serviceManager{
		store:     store,
		publisher: publisher,
		cache:     cacheHelper,
		logger:    logger,
		validator: validator,
	}
}

func (sm *serviceManager) Initialize(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return fmt.Errorf("service manager already initialized")
	}

	if err := sm.store.Ping(ctx); err != nil {
		return fmt.Errorf("store not reachable: %w", err)
	}

	sm.moduleService = NewModuleService(sm.store, sm.logger, sm.validator)
	sm.quizService = NewQuizService(sm.store, sm.publisher, sm.logger, sm.validator)
	sm.progressService = NewProgressService(sm.store, sm.publisher, sm.logger, sm.validator)
	sm.userService = NewUserService(sm.store, sm.logger, sm.validator)
	sm.referenceService = NewReferenceService(sm.store, sm.cache, sm.logger, sm.validator)
	sm.exportService = NewExportService(sm.store, sm.logger)

	sm.initialized = true
	sm.logger.Info("services initialized")
	return nil
}

func (sm *serviceManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.shutdown {
		return nil
	}
	sm.shutdown = true

	if err := sm.publisher.Close(); err != nil {
		return fmt.Errorf("failed to close event publisher: %w", err)
	}
	sm.logger.Info("services shut down")
	return nil
}

func (sm *serviceManager) Module() ModuleService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.moduleService
}

func (sm *serviceManager) Quiz() QuizService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.quizService
}

func (sm *serviceManager) Progress() ProgressService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.progressService
}

func (sm *serviceManager) User() UserService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.userService
}

func (sm *serviceManager) Reference() ReferenceService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.referenceService
}

func (sm *serviceManager) Export() ExportService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.exportService
}
