package seed

import (
	"context"
	"testing"

	"github.com/printforge-edu/learning-service/internal/models"
	"github.com/printforge-edu/learning-service/internal/repositories/memory"
)

func TestLoadPopulatesCatalog(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	if err := Load(ctx, store); err != nil {
		t.Fatalf("Load: %v", err)
	}

	modules, err := store.Modules().List(ctx)
	if err != nil {
		t.Fatalf("list modules: %v", err)
	}
	if len(modules) != 4 {
		t.Errorf("expected 4 modules, got %d", len(modules))
	}
	for i, m := range modules {
		if m.DisplayOrder != i+1 {
			t.Errorf("module %d has display order %d", i, m.DisplayOrder)
		}
	}

	parts, err := store.Parts().List(ctx)
	if err != nil {
		t.Fatalf("list parts: %v", err)
	}
	if len(parts) != 4 {
		t.Errorf("expected 4 printer parts, got %d", len(parts))
	}

	materials, err := store.Materials().List(ctx)
	if err != nil {
		t.Fatalf("list materials: %v", err)
	}
	if len(materials) != 3 {
		t.Errorf("expected 3 materials, got %d", len(materials))
	}

	terms, err := store.Glossary().List(ctx)
	if err != nil {
		t.Fatalf("list glossary: %v", err)
	}
	if len(terms) != 4 {
		t.Errorf("expected 4 glossary terms, got %d", len(terms))
	}
}

func TestLoadQuizBelongsToFirstModule(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	if err := Load(ctx, store); err != nil {
		t.Fatalf("Load: %v", err)
	}

	questions, err := store.Questions().ListByModule(ctx, 1)
	if err != nil {
		t.Fatalf("list questions: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions for the intro module, got %d", len(questions))
	}
	for _, q := range questions {
		if q.CorrectOption < 0 || q.CorrectOption >= len(q.Options) {
			t.Errorf("question %d has correct option %d outside its %d options", q.ID, q.CorrectOption, len(q.Options))
		}
	}

	module, err := store.Modules().GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("get module 1: %v", err)
	}
	if module.Type != models.ModuleIntro {
		t.Errorf("module 1 should be the intro module, got type %q", module.Type)
	}
}
