package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/printforge-edu/learning-service/internal/models"
)

// ValidationError describes one failed field.
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
	Rule    string      `json:"rule,omitempty"`
}

type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	if len(ve) == 1 {
		return fmt.Sprintf("validation failed: %s %s", ve[0].Field, ve[0].Message)
	}
	return fmt.Sprintf("validation failed: %d field errors", len(ve))
}

// Validator wraps go-playground/validator with the platform's custom
// rules registered.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := &Validator{validate: validator.New()}
	v.registerRules()
	return v
}

// Validate checks struct tags and returns nil or ValidationErrors.
func (v *Validator) Validate(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var out ValidationErrors
	for _, fe := range err.(validator.ValidationErrors) {
		out = append(out, ValidationError{
			Field:   fe.Field(),
			Message: messageFor(fe),
			Value:   fe.Value(),
			Rule:    fe.Tag(),
		})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "module_type":
		return "must be one of intro, printer, materials, process, design"
	case "module_level":
		return "must be one of beginner, intermediate, advanced"
	case "term_category":
		return "is not a recognized glossary category"
	case "rating_range":
		return "must be a rating from 1 to 5"
	case "position_percent":
		return "must be a percentage coordinate in [0,100]"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

func (v *Validator) registerRules() {
	v.validate.RegisterValidation("module_type", func(fl validator.FieldLevel) bool {
		switch models.ModuleType(fl.Field().String()) {
		case models.ModuleIntro, models.ModulePrinter, models.ModuleMaterials,
			models.ModuleProcess, models.ModuleDesign:
			return true
		}
		return false
	})

	v.validate.RegisterValidation("module_level", func(fl validator.FieldLevel) bool {
		switch models.ModuleLevel(fl.Field().String()) {
		case models.LevelBeginner, models.LevelIntermediate, models.LevelAdvanced:
			return true
		}
		return false
	})

	v.validate.RegisterValidation("term_category", func(fl validator.FieldLevel) bool {
		switch models.TermCategory(fl.Field().String()) {
		case models.CategoryPrinterPart, models.CategoryProcess,
			models.CategoryMaterial, models.CategoryTechnical:
			return true
		}
		return false
	})

	// Filament ratings (difficulty, strength, flexibility) are 1-5.
	v.validate.RegisterValidation("rating_range", func(fl validator.FieldLevel) bool {
		rating := fl.Field().Int()
		return rating >= 1 && rating <= 5
	})

	// Anatomy diagram coordinates are percentages.
	v.validate.RegisterValidation("position_percent", func(fl validator.FieldLevel) bool {
		p := fl.Field().Float()
		return p >= 0 && p <= 100
	})
}
