package validator

import (
	"time"

	"github.com/printforge-edu/learning-service/internal/models"
)

// CreateUserRequest registers a new account.
type CreateUserRequest struct {
	Username     string                 `json:"username" validate:"required,min=3,max=50"`
	Password     string                 `json:"password" validate:"required,min=6,max=100"`
	DisplayName  string                 `json:"display_name" validate:"required,max=100"`
	ProgressData map[string]interface{} `json:"progress_data"`
}

// UpdateUserProgressRequest replaces a user's progress blob wholesale.
type UpdateUserProgressRequest struct {
	ProgressData map[string]interface{} `json:"progress_data" validate:"required"`
}

// SubmitQuizResultRequest scores a submitted answer set. Answers maps
// question id to the selected option index; an empty map is a valid
// submission that scores zero.
type SubmitQuizResultRequest struct {
	UserID      uint         `json:"user_id" validate:"required"`
	ModuleID    uint         `json:"module_id" validate:"required"`
	Answers     map[uint]int `json:"answers"`
	CompletedAt *time.Time   `json:"completed_at"`
}

// RecordVisitRequest reports one visit to a module. TimeSpent is the
// seconds spent during this visit only; the store accumulates.
type RecordVisitRequest struct {
	UserID       uint       `json:"user_id" validate:"required"`
	ModuleID     uint       `json:"module_id" validate:"required"`
	Completed    bool       `json:"completed"`
	LastAccessed *time.Time `json:"last_accessed"`
	TimeSpent    int        `json:"time_spent" validate:"min=0"`
}

// CreateModuleRequest adds a learning module to the catalog.
type CreateModuleRequest struct {
	Title            string                 `json:"title" validate:"required,max=200"`
	Description      string                 `json:"description" validate:"required,max=1000"`
	Content          models.ModuleContent   `json:"content"`
	Type             models.ModuleType      `json:"type" validate:"required,module_type"`
	Level            models.ModuleLevel     `json:"level" validate:"required,module_level"`
	DisplayOrder     int                    `json:"order" validate:"required,min=1"`
	EstimatedMinutes int                    `json:"estimated_minutes" validate:"required,min=1"`
	ImageURL         *string                `json:"image_url" validate:"omitempty,url"`
}

// CreateQuizQuestionRequest adds a question to a module's quiz.
// CorrectOption bounds against Options are a business rule checked in the
// service, since struct tags cannot relate the two fields.
type CreateQuizQuestionRequest struct {
	ModuleID      uint     `json:"module_id" validate:"required"`
	Question      string   `json:"question" validate:"required,max=1000"`
	Options       []string `json:"options" validate:"required,min=2,max=10,dive,required"`
	CorrectOption int      `json:"correct_option" validate:"min=0"`
	Explanation   string   `json:"explanation" validate:"max=1000"`
}

// CreateGlossaryTermRequest adds a glossary entry.
type CreateGlossaryTermRequest struct {
	Term       string              `json:"term" validate:"required,max=100"`
	Definition string              `json:"definition" validate:"required,max=2000"`
	Category   models.TermCategory `json:"category" validate:"required,term_category"`
}

// CreatePrinterPartRequest adds a part to the anatomy explorer.
type CreatePrinterPartRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description string  `json:"description" validate:"required,max=1000"`
	Function    string  `json:"function" validate:"required,max=500"`
	PositionX   float64 `json:"position_x" validate:"position_percent"`
	PositionY   float64 `json:"position_y" validate:"position_percent"`
}

// CreateMaterialRequest adds a filament to the comparison table.
type CreateMaterialRequest struct {
	Name           string `json:"name" validate:"required,max=50"`
	FullName       string `json:"full_name" validate:"required,max=100"`
	Difficulty     int    `json:"difficulty" validate:"rating_range"`
	Strength       int    `json:"strength" validate:"rating_range"`
	Flexibility    int    `json:"flexibility" validate:"rating_range"`
	Temperature    string `json:"temperature" validate:"required,max=50"`
	BedTemperature string `json:"bed_temperature" validate:"required,max=50"`
	UseCases       string `json:"use_cases" validate:"required,max=500"`
	Icon           string `json:"icon" validate:"max=50"`
	Color          string `json:"color" validate:"max=20"`
}
