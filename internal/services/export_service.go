package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/printforge-edu/learning-service/internal/repositories"
)

type exportService struct {
	store  repositories.Store
	logger *slog.Logger
}

func NewExportService(store repositories.Store, logger *slog.Logger) ExportService {
	return &exportService{store: store, logger: logger}
}

func (s *exportService) MaterialsWorkbook(ctx context.Context) (*excelize.File, error) {
	materials, err := s.store.Materials().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load materials: %w", err)
	}

	const sheet = "Materials"
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headers := []string{"Name", "Full Name", "Difficulty (1-5)", "Strength (1-5)", "Flexibility (1-5)",
		"Print Temperature", "Bed Temperature", "Use Cases"}
	if err := writeRow(f, sheet, 1, headers); err != nil {
		return nil, err
	}

	for i, m := range materials {
		row := []interface{}{m.Name, m.FullName, m.Difficulty, m.Strength, m.Flexibility,
			m.Temperature, m.BedTemperature, m.UseCases}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func (s *exportService) GlossaryWorkbook(ctx context.Context) (*excelize.File, error) {
	terms, err := s.store.Glossary().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load glossary: %w", err)
	}

	const sheet = "Glossary"
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	if err := writeRow(f, sheet, 1, []string{"Term", "Category", "Definition"}); err != nil {
		return nil, err
	}
	for i, t := range terms {
		if err := writeRow(f, sheet, i+2, []interface{}{t.Term, string(t.Category), t.Definition}); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func (s *exportService) ResultsWorkbook(ctx context.Context, userID uint) (*excelize.File, error) {
	results, err := s.store.Results().ListByUser(ctx, userID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load results: %w", err)
	}

	const sheet = "Quiz Results"
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	if err := writeRow(f, sheet, 1, []string{"Module ID", "Score", "Completed At"}); err != nil {
		return nil, err
	}
	for i, r := range results {
		row := []interface{}{r.ModuleID, r.Score, r.CompletedAt.Format(time.RFC3339)}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func writeRow[T any](f *excelize.File, sheet string, row int, values []T) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}
