package services

import (
	"context"

	"github.com/xuri/excelize/v2"

	"github.com/printforge-edu/learning-service/internal/models"
	"github.com/printforge-edu/learning-service/internal/validator"
)

// ===== REQUEST DTOs =====

// Request shapes are shared with the validation layer.
type CreateUserRequest = validator.CreateUserRequest
type UpdateUserProgressRequest = validator.UpdateUserProgressRequest
type SubmitQuizResultRequest = validator.SubmitQuizResultRequest
type RecordVisitRequest = validator.RecordVisitRequest
type CreateModuleRequest = validator.CreateModuleRequest
type CreateQuizQuestionRequest = validator.CreateQuizQuestionRequest
type CreateGlossaryTermRequest = validator.CreateGlossaryTermRequest
type CreatePrinterPartRequest = validator.CreatePrinterPartRequest
type CreateMaterialRequest = validator.CreateMaterialRequest

// ===== SERVICE INTERFACES =====

// ModuleService serves the learning module catalog.
type ModuleService interface {
	// List returns modules ordered by display order; a non-nil moduleType
	// narrows to that type.
	List(ctx context.Context, moduleType *models.ModuleType) ([]*models.Module, error)
	Get(ctx context.Context, id uint) (*models.Module, error)
	Create(ctx context.Context, req *CreateModuleRequest) (*models.Module, error)
}

// QuizService serves questions and scores submissions.
type QuizService interface {
	Questions(ctx context.Context, moduleID uint) ([]*models.QuizQuestion, error)
	CreateQuestion(ctx context.Context, req *CreateQuizQuestionRequest) (*models.QuizQuestion, error)

	// Submit scores the answer set against the module's questions and
	// appends a result. Zero questions yields score 0, not an error.
	Submit(ctx context.Context, req *SubmitQuizResultRequest) (*models.QuizResult, error)

	Results(ctx context.Context, userID uint, moduleID *uint) ([]*models.QuizResult, error)
}

// ProgressService tracks visits and aggregates completion.
type ProgressService interface {
	Get(ctx context.Context, userID uint) ([]*models.Progress, error)
	RecordVisit(ctx context.Context, req *RecordVisitRequest) (*models.Progress, error)

	// Overall returns the completion percentage in [0,100], rounding half
	// away from zero. An empty module catalog yields 0.
	Overall(ctx context.Context, userID uint) (int, error)
}

// UserService owns accounts and the client-managed progress blob.
type UserService interface {
	Get(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, req *CreateUserRequest) (*models.User, error)
	UpdateProgress(ctx context.Context, userID uint, req *UpdateUserProgressRequest) (*models.User, error)
}

// ReferenceService serves the read-mostly reference catalogs: glossary,
// printer parts and materials.
type ReferenceService interface {
	GlossaryTerms(ctx context.Context) ([]*models.GlossaryTerm, error)
	GlossaryTerm(ctx context.Context, id uint) (*models.GlossaryTerm, error)
	CreateGlossaryTerm(ctx context.Context, req *CreateGlossaryTermRequest) (*models.GlossaryTerm, error)

	Parts(ctx context.Context) ([]*models.PrinterPart, error)
	Part(ctx context.Context, id uint) (*models.PrinterPart, error)
	CreatePart(ctx context.Context, req *CreatePrinterPartRequest) (*models.PrinterPart, error)

	Materials(ctx context.Context) ([]*models.Material, error)
	Material(ctx context.Context, id uint) (*models.Material, error)
	CreateMaterial(ctx context.Context, req *CreateMaterialRequest) (*models.Material, error)
}

// ExportService renders reference tables and results as workbooks.
type ExportService interface {
	MaterialsWorkbook(ctx context.Context) (*excelize.File, error)
	GlossaryWorkbook(ctx context.Context) (*excelize.File, error)
	ResultsWorkbook(ctx context.Context, userID uint) (*excelize.File, error)
}

// ===== SERVICE MANAGER =====

// ServiceManager wires the services together and owns their lifecycle.
type ServiceManager interface {
	Module() ModuleService
	Quiz() QuizService
	Progress() ProgressService
	User() UserService
	Reference() ReferenceService
	Export() ExportService

	Initialize(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
