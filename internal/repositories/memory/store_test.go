package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/printforge-edu/learning-service/internal/models"
	"github.com/printforge-edu/learning-service/internal/repositories"
)

func TestModuleIDsAreMonotonic(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	var last uint
	for i := 0; i < 10; i++ {
		m := &models.Module{Title: "m", DisplayOrder: 10 - i}
		if err := store.Modules().Create(ctx, m); err != nil {
			t.Fatalf("Create: %v", err)
		}
		if m.ID <= last {
			t.Fatalf("id %d not greater than previous %d", m.ID, last)
		}
		last = m.ID
	}
	if last != 10 {
		t.Errorf("expected ids dense up to 10, got last id %d", last)
	}
}

func TestModuleListSortedByDisplayOrder(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	// Seeded out of order on purpose.
	orders := []int{4, 1, 3, 2}
	for _, o := range orders {
		if err := store.Modules().Create(ctx, &models.Module{Title: "m", DisplayOrder: o}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	modules, err := store.Modules().List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	for i := 1; i < len(modules); i++ {
		if modules[i-1].DisplayOrder > modules[i].DisplayOrder {
			t.Fatalf("list not sorted by order: %d before %d", modules[i-1].DisplayOrder, modules[i].DisplayOrder)
		}
	}
}

func TestModuleListByType(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	seed := []models.Module{
		{Title: "a", Type: models.ModuleIntro, DisplayOrder: 2},
		{Title: "b", Type: models.ModulePrinter, DisplayOrder: 1},
		{Title: "c", Type: models.ModuleIntro, DisplayOrder: 1},
	}
	for i := range seed {
		if err := store.Modules().Create(ctx, &seed[i]); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	intros, err := store.Modules().ListByType(ctx, models.ModuleIntro)
	if err != nil {
		t.Fatalf("ListByType: %v", err)
	}
	if len(intros) != 2 {
		t.Fatalf("expected 2 intro modules, got %d", len(intros))
	}
	if intros[0].Title != "c" || intros[1].Title != "a" {
		t.Errorf("expected order [c a], got [%s %s]", intros[0].Title, intros[1].Title)
	}
}

func TestUserCreateDuplicateUsername(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	first := &models.User{Username: "maker", Password: "pw", DisplayName: "Maker"}
	if err := store.Users().Create(ctx, first); err != nil {
		t.Fatalf("Create: %v", err)
	}

	dup := &models.User{Username: "maker", Password: "pw2"}
	err := store.Users().Create(ctx, dup)
	if !errors.Is(err, repositories.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}

	// Case differs, so no conflict.
	if err := store.Users().Create(ctx, &models.User{Username: "Maker"}); err != nil {
		t.Errorf("case-sensitive uniqueness: %v", err)
	}
}

func TestUserGetByUsernameNotFound(t *testing.T) {
	store := NewStore()

	_, err := store.Users().GetByUsername(context.Background(), "ghost")
	if !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserUpdateProgressDataReplacesWholesale(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	user := &models.User{
		Username:     "maker",
		ProgressData: map[string]interface{}{"intro": "done", "bookmark": 3},
	}
	if err := store.Users().Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := store.Users().UpdateProgressData(ctx, user.ID, map[string]interface{}{"intro": "reset"})
	if err != nil {
		t.Fatalf("UpdateProgressData: %v", err)
	}
	if len(updated.ProgressData) != 1 {
		t.Errorf("expected old keys dropped, got %v", updated.ProgressData)
	}

	_, err = store.Users().UpdateProgressData(ctx, 999, nil)
	if !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown user, got %v", err)
	}
}

func TestRecordVisitUpsert(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	ts := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	ts2 := ts.Add(time.Hour)

	first, err := store.Progress().RecordVisit(ctx, 1, 1, false, ts, 5)
	if err != nil {
		t.Fatalf("RecordVisit: %v", err)
	}
	if first.TimeSpent != 5 || first.Completed {
		t.Fatalf("unexpected first row: %+v", first)
	}

	second, err := store.Progress().RecordVisit(ctx, 1, 1, true, ts2, 10)
	if err != nil {
		t.Fatalf("RecordVisit: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("upsert must keep the original id, got %d and %d", first.ID, second.ID)
	}
	if second.TimeSpent != 15 {
		t.Errorf("TimeSpent must accumulate: expected 15, got %d", second.TimeSpent)
	}
	if !second.Completed || !second.LastAccessed.Equal(ts2) {
		t.Errorf("Completed/LastAccessed must be overwritten: %+v", second)
	}

	rows, err := store.Progress().ListByUser(ctx, 1)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected exactly one row per (user, module), got %d", len(rows))
	}
}

func TestRecordVisitSeparateRowsPerModule(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	now := time.Now()

	if _, err := store.Progress().RecordVisit(ctx, 1, 1, false, now, 5); err != nil {
		t.Fatalf("RecordVisit: %v", err)
	}
	if _, err := store.Progress().RecordVisit(ctx, 1, 2, false, now, 7); err != nil {
		t.Fatalf("RecordVisit: %v", err)
	}
	if _, err := store.Progress().RecordVisit(ctx, 2, 1, false, now, 9); err != nil {
		t.Fatalf("RecordVisit: %v", err)
	}

	rows, err := store.Progress().ListByUser(ctx, 1)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows for user 1, got %d", len(rows))
	}
}

func TestGlossarySortedAndUnique(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	for _, term := range []string{"Slicing", "Extruder", "G-code"} {
		err := store.Glossary().Create(ctx, &models.GlossaryTerm{Term: term, Category: models.CategoryTechnical})
		if err != nil {
			t.Fatalf("Create %q: %v", term, err)
		}
	}

	err := store.Glossary().Create(ctx, &models.GlossaryTerm{Term: "Extruder"})
	if !errors.Is(err, repositories.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey for repeated term, got %v", err)
	}

	terms, err := store.Glossary().List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"Extruder", "G-code", "Slicing"}
	for i, w := range want {
		if terms[i].Term != w {
			t.Fatalf("expected alphabetical listing %v, got %q at %d", want, terms[i].Term, i)
		}
	}
}

func TestResultsFilteredByUserAndModule(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	now := time.Now()

	seed := []models.QuizResult{
		{UserID: 1, ModuleID: 1, Score: 2, CompletedAt: now},
		{UserID: 1, ModuleID: 2, Score: 1, CompletedAt: now},
		{UserID: 2, ModuleID: 1, Score: 3, CompletedAt: now},
	}
	for i := range seed {
		if err := store.Results().Create(ctx, &seed[i]); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	all, err := store.Results().ListByUser(ctx, 1, nil)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 results for user 1, got %d", len(all))
	}

	moduleID := uint(2)
	narrowed, err := store.Results().ListByUser(ctx, 1, &moduleID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(narrowed) != 1 || narrowed[0].Score != 1 {
		t.Fatalf("expected single module-2 result, got %+v", narrowed)
	}
}
