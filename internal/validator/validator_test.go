package validator

import (
	"errors"
	"testing"

	"github.com/printforge-edu/learning-service/internal/models"
)

func TestCreateUserRequestValidation(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		req     CreateUserRequest
		wantErr bool
	}{
		{
			name: "valid",
			req:  CreateUserRequest{Username: "maker", Password: "secret1", DisplayName: "Maker"},
		},
		{
			name:    "missing username",
			req:     CreateUserRequest{Password: "secret1", DisplayName: "Maker"},
			wantErr: true,
		},
		{
			name:    "short password",
			req:     CreateUserRequest{Username: "maker", Password: "abc", DisplayName: "Maker"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestModuleEnumRules(t *testing.T) {
	v := New()

	valid := CreateModuleRequest{
		Title:            "Slicing Basics",
		Description:      "Prepare models for printing",
		Type:             models.ModuleProcess,
		Level:            models.LevelBeginner,
		DisplayOrder:     4,
		EstimatedMinutes: 40,
	}
	if err := v.Validate(valid); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	invalid := valid
	invalid.Type = "origami"
	err := v.Validate(invalid)
	if err == nil {
		t.Fatal("expected module_type violation")
	}
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if verrs[0].Rule != "module_type" {
		t.Errorf("expected module_type rule, got %q", verrs[0].Rule)
	}
}

func TestMaterialRatingRange(t *testing.T) {
	v := New()

	req := CreateMaterialRequest{
		Name: "PLA", FullName: "Polylactic Acid",
		Difficulty: 2, Strength: 3, Flexibility: 1,
		Temperature: "180-220°C", BedTemperature: "60°C",
		UseCases: "Prototypes",
	}
	if err := v.Validate(req); err != nil {
		t.Fatalf("valid material rejected: %v", err)
	}

	req.Strength = 6
	if err := v.Validate(req); err == nil {
		t.Error("expected rating_range violation for strength 6")
	}
	req.Strength = 0
	if err := v.Validate(req); err == nil {
		t.Error("expected rating_range violation for strength 0")
	}
}

func TestPartPositionPercent(t *testing.T) {
	v := New()

	req := CreatePrinterPartRequest{
		Name: "Extruder", Description: "Pushes filament", Function: "Feeds material",
		PositionX: 30, PositionY: 40,
	}
	if err := v.Validate(req); err != nil {
		t.Fatalf("valid part rejected: %v", err)
	}

	req.PositionX = 130
	if err := v.Validate(req); err == nil {
		t.Error("expected position_percent violation")
	}
}
