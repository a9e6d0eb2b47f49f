// Package seed loads the starter catalog: the learning modules, printer
// parts, materials, glossary terms and quiz questions the platform ships
// with.
package seed

import (
	"context"
	"fmt"

	"github.com/printforge-edu/learning-service/internal/models"
	"github.com/printforge-edu/learning-service/internal/repositories"
)

// Load inserts the starter catalog into an empty store. Modules are
// inserted in display order so their ids line up with the quiz
// questions' module references.
func Load(ctx context.Context, store repositories.Store) error {
	if err := loadModules(ctx, store); err != nil {
		return fmt.Errorf("seed modules: %w", err)
	}
	if err := loadPrinterParts(ctx, store); err != nil {
		return fmt.Errorf("seed printer parts: %w", err)
	}
	if err := loadMaterials(ctx, store); err != nil {
		return fmt.Errorf("seed materials: %w", err)
	}
	if err := loadGlossary(ctx, store); err != nil {
		return fmt.Errorf("seed glossary: %w", err)
	}
	if err := loadQuizQuestions(ctx, store); err != nil {
		return fmt.Errorf("seed quiz questions: %w", err)
	}
	return nil
}

func strptr(s string) *string { return &s }

func loadModules(ctx context.Context, store repositories.Store) error {
	modules := []*models.Module{
		{
			Title:       "Introduction to 3D Printing",
			Description: "Learn the fundamental concepts of 3D printing technology and its applications.",
			Content: models.ModuleContent{Sections: []models.ModuleSection{
				{Title: "What is 3D Printing?", Content: "3D printing is..."},
			}},
			Type:             models.ModuleIntro,
			Level:            models.LevelBeginner,
			DisplayOrder:     1,
			EstimatedMinutes: 30,
			ImageURL:         strptr("https://images.unsplash.com/photo-1563874257547-d19fbb71b46c?auto=format&fit=crop&w=800&h=400"),
		},
		{
			Title:       "Printer Anatomy Explorer",
			Description: "Discover the key components of a 3D printer through our interactive model.",
			Content: models.ModuleContent{Sections: []models.ModuleSection{
				{Title: "Main Components", Content: "The main components include..."},
			}},
			Type:             models.ModulePrinter,
			Level:            models.LevelBeginner,
			DisplayOrder:     2,
			EstimatedMinutes: 30,
			ImageURL:         strptr("https://images.unsplash.com/photo-1563874257547-d19fbb71b46c?auto=format&fit=crop&w=800&h=400"),
		},
		{
			Title:       "Materials Comparison",
			Description: "Compare different filament types and learn when to use each material.",
			Content: models.ModuleContent{Sections: []models.ModuleSection{
				{Title: "Types of Filaments", Content: "There are several types of filaments..."},
			}},
			Type:             models.ModuleMaterials,
			Level:            models.LevelIntermediate,
			DisplayOrder:     3,
			EstimatedMinutes: 45,
		},
		{
			Title:       "Slicing Basics",
			Description: "Learn how to prepare 3D models for printing with slicing software.",
			Content: models.ModuleContent{Sections: []models.ModuleSection{
				{Title: "What is Slicing?", Content: "Slicing is..."},
			}},
			Type:             models.ModuleProcess,
			Level:            models.LevelBeginner,
			DisplayOrder:     4,
			EstimatedMinutes: 40,
			ImageURL:         strptr("https://images.unsplash.com/photo-1550751827-4bd374c3f58b?auto=format&fit=crop&w=800&h=400"),
		},
	}

	for _, m := range modules {
		if err := store.Modules().Create(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

func loadPrinterParts(ctx context.Context, store repositories.Store) error {
	parts := []*models.PrinterPart{
		{
			Name:        "Extruder",
			Description: "The part of a 3D printer that pushes filament through the hot end and nozzle.",
			Function:    "Melts filament to deposit layer by layer",
			Position:    models.PartPosition{X: 30, Y: 40},
		},
		{
			Name:        "Build Plate",
			Description: "The flat surface on which the 3D print is created.",
			Function:    "Provides the foundation for the printed object",
			Position:    models.PartPosition{X: 50, Y: 60},
		},
		{
			Name:        "Frame",
			Description: "The structural component that holds all the printer parts together.",
			Function:    "Provides stability and support for the printer",
			Position:    models.PartPosition{X: 70, Y: 30},
		},
		{
			Name:        "Filament",
			Description: "The raw material used for printing objects.",
			Function:    "Source material that gets melted and deposited",
			Position:    models.PartPosition{X: 20, Y: 50},
		},
	}

	for _, p := range parts {
		if err := store.Parts().Create(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func loadMaterials(ctx context.Context, store repositories.Store) error {
	materials := []*models.Material{
		{
			Name:           "PLA",
			FullName:       "Polylactic Acid",
			Difficulty:     2,
			Strength:       3,
			Flexibility:    1,
			Temperature:    "180-220°C",
			BedTemperature: "60°C",
			UseCases:       "Prototypes, toys, decorative items",
			Icon:           "ri-blaze-line",
			Color:          "blue",
		},
		{
			Name:           "ABS",
			FullName:       "Acrylonitrile Butadiene Styrene",
			Difficulty:     3,
			Strength:       4,
			Flexibility:    2,
			Temperature:    "220-250°C",
			BedTemperature: "95-110°C",
			UseCases:       "Functional parts, automotive, electronics housings",
			Icon:           "ri-hammer-line",
			Color:          "purple",
		},
		{
			Name:           "TPU",
			FullName:       "Thermoplastic Polyurethane",
			Difficulty:     4,
			Strength:       3,
			Flexibility:    5,
			Temperature:    "220-250°C",
			BedTemperature: "50-60°C",
			UseCases:       "Flexible parts, phone cases, shoe soles",
			Icon:           "ri-seedling-line",
			Color:          "green",
		},
	}

	for _, m := range materials {
		if err := store.Materials().Create(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

func loadGlossary(ctx context.Context, store repositories.Store) error {
	terms := []*models.GlossaryTerm{
		{
			Term:       "Extruder",
			Definition: "The part of a 3D printer that pushes filament through the hot end and nozzle. It typically consists of a motor, gear mechanism, and hot end assembly.",
			Category:   models.CategoryPrinterPart,
		},
		{
			Term:       "Slicing",
			Definition: "The process of converting a 3D model into a series of thin layers and creating G-code instructions for the printer to follow.",
			Category:   models.CategoryProcess,
		},
		{
			Term:       "Build Plate",
			Definition: "The flat surface on which the 3D print is created. Also called a print bed, it may be heated for better adhesion with certain materials.",
			Category:   models.CategoryPrinterPart,
		},
		{
			Term:       "G-code",
			Definition: "The programming language used to control automated machine tools. In 3D printing, G-code tells the printer how to move and when to extrude material.",
			Category:   models.CategoryTechnical,
		},
	}

	for _, t := range terms {
		if err := store.Glossary().Create(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

func loadQuizQuestions(ctx context.Context, store repositories.Store) error {
	questions := []*models.QuizQuestion{
		{
			ModuleID: 1,
			Question: "Which of these is NOT a common 3D printing technology?",
			Options: []string{
				"Fused Deposition Modeling (FDM)",
				"Stereolithography (SLA)",
				"Quantum Deposition Processing (QDP)",
				"Selective Laser Sintering (SLS)",
			},
			CorrectOption: 2,
			Explanation:   "Quantum Deposition Processing is not a real 3D printing technology.",
		},
		{
			ModuleID: 1,
			Question: `What does the term "layer height" refer to in 3D printing?`,
			Options: []string{
				"The total height of the printed object",
				"The thickness of each deposited layer of material",
				"The maximum height capability of a 3D printer",
				"The distance between the nozzle and the print bed",
			},
			CorrectOption: 1,
			Explanation:   "Layer height refers to the thickness of each layer of material deposited during the printing process.",
		},
	}

	for _, q := range questions {
		if err := store.Questions().Create(ctx, q); err != nil {
			return err
		}
	}
	return nil
}
