package repositories

import (
	"context"
	"time"

	"github.com/printforge-edu/learning-service/internal/models"
)

// UserRepository owns user rows. Usernames are unique, case-sensitively.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// Create assigns a fresh id and stores the user. Returns
	// ErrDuplicateKey if the username is already taken.
	Create(ctx context.Context, user *models.User) error

	// UpdateProgressData replaces the progress blob wholesale and returns
	// the updated user. Returns ErrNotFound for an unknown id.
	UpdateProgressData(ctx context.Context, id uint, data map[string]interface{}) (*models.User, error)
}

// ModuleRepository owns the learning module catalog.
type ModuleRepository interface {
	// List returns all modules sorted by display order ascending, stable
	// by insertion on ties.
	List(ctx context.Context) ([]*models.Module, error)
	ListByType(ctx context.Context, moduleType models.ModuleType) ([]*models.Module, error)
	GetByID(ctx context.Context, id uint) (*models.Module, error)
	Create(ctx context.Context, module *models.Module) error

	// Count returns the current catalog size.
	Count(ctx context.Context) (int, error)
}

// QuestionRepository owns quiz questions.
type QuestionRepository interface {
	// ListByModule returns the module's questions in insertion order.
	ListByModule(ctx context.Context, moduleID uint) ([]*models.QuizQuestion, error)
	Create(ctx context.Context, question *models.QuizQuestion) error
}

// ResultRepository owns quiz results. Results are append-only.
type ResultRepository interface {
	Create(ctx context.Context, result *models.QuizResult) error

	// ListByUser returns the user's results, optionally narrowed to one
	// module when moduleID is non-nil.
	ListByUser(ctx context.Context, userID uint, moduleID *uint) ([]*models.QuizResult, error)
}

// GlossaryRepository owns glossary terms. Terms are unique.
type GlossaryRepository interface {
	// List returns all terms sorted alphabetically by term.
	List(ctx context.Context) ([]*models.GlossaryTerm, error)
	GetByID(ctx context.Context, id uint) (*models.GlossaryTerm, error)
	Create(ctx context.Context, term *models.GlossaryTerm) error
}

type PartRepository interface {
	List(ctx context.Context) ([]*models.PrinterPart, error)
	GetByID(ctx context.Context, id uint) (*models.PrinterPart, error)
	Create(ctx context.Context, part *models.PrinterPart) error
}

type MaterialRepository interface {
	List(ctx context.Context) ([]*models.Material, error)
	GetByID(ctx context.Context, id uint) (*models.Material, error)
	Create(ctx context.Context, material *models.Material) error
}

// ProgressRepository owns the per-(user, module) tracking rows.
type ProgressRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]*models.Progress, error)

	// RecordVisit is the one true upsert in the system. If a row exists
	// for (userID, moduleID) it overwrites Completed and LastAccessed and
	// adds timeSpentDelta to the running TimeSpent total, keeping the
	// original id. Otherwise it creates a fresh row with
	// TimeSpent = timeSpentDelta.
	RecordVisit(ctx context.Context, userID, moduleID uint, completed bool, lastAccessed time.Time, timeSpentDelta int) (*models.Progress, error)
}
