package services

import (
	"context"
	"testing"

	"github.com/printforge-edu/learning-service/internal/events"
	"github.com/printforge-edu/learning-service/internal/models"
	"github.com/printforge-edu/learning-service/internal/repositories/memory"
	"github.com/printforge-edu/learning-service/internal/validator"
)

func newProgressFixture(t *testing.T) (ProgressService, *memory.Store, *events.MockEventPublisher) {
	t.Helper()
	store := memory.NewStore()
	mock := events.NewMockEventPublisher(testLogger())
	svc := NewProgressService(store, mock, testLogger(), validator.New())
	return svc, store, mock
}

func seedModules(t *testing.T, store *memory.Store, n int) {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < n; i++ {
		m := &models.Module{
			Title:        "module",
			Type:         models.ModuleIntro,
			Level:        models.LevelBeginner,
			DisplayOrder: i + 1,
		}
		if err := store.Modules().Create(ctx, m); err != nil {
			t.Fatalf("seed module: %v", err)
		}
	}
}

func TestRecordVisitAccumulatesTime(t *testing.T) {
	svc, _, _ := newProgressFixture(t)
	ctx := context.Background()

	first, err := svc.RecordVisit(ctx, &RecordVisitRequest{UserID: 1, ModuleID: 1, TimeSpent: 5})
	if err != nil {
		t.Fatalf("RecordVisit: %v", err)
	}
	second, err := svc.RecordVisit(ctx, &RecordVisitRequest{UserID: 1, ModuleID: 1, Completed: true, TimeSpent: 10})
	if err != nil {
		t.Fatalf("RecordVisit: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("second visit created a new row: ids %d, %d", first.ID, second.ID)
	}
	if second.TimeSpent != 15 {
		t.Errorf("expected accumulated time 15, got %d", second.TimeSpent)
	}
	if !second.Completed {
		t.Error("completed flag was not updated")
	}

	rows, err := svc.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected a single progress row, got %d", len(rows))
	}
}

func TestRecordVisitRejectsNegativeTime(t *testing.T) {
	svc, _, _ := newProgressFixture(t)

	_, err := svc.RecordVisit(context.Background(), &RecordVisitRequest{UserID: 1, ModuleID: 1, TimeSpent: -3})
	if err == nil {
		t.Fatal("expected validation failure for negative time_spent")
	}
}

func TestRecordVisitPublishesCompletionEvent(t *testing.T) {
	svc, _, mock := newProgressFixture(t)
	ctx := context.Background()

	if _, err := svc.RecordVisit(ctx, &RecordVisitRequest{UserID: 1, ModuleID: 1, TimeSpent: 5}); err != nil {
		t.Fatalf("RecordVisit: %v", err)
	}
	if got := len(mock.GetPublishedEvents()); got != 0 {
		t.Fatalf("incomplete visit must not publish, got %d events", got)
	}

	if _, err := svc.RecordVisit(ctx, &RecordVisitRequest{UserID: 1, ModuleID: 1, Completed: true, TimeSpent: 5}); err != nil {
		t.Fatalf("RecordVisit: %v", err)
	}
	published := mock.GetPublishedEvents()
	if len(published) != 1 {
		t.Fatalf("expected 1 event, got %d", len(published))
	}
	if published[0].Type != events.ModuleCompleted {
		t.Errorf("expected %q event, got %q", events.ModuleCompleted, published[0].Type)
	}
}

func TestOverallRoundsToNearestPercent(t *testing.T) {
	svc, store, _ := newProgressFixture(t)
	ctx := context.Background()

	seedModules(t, store, 3)
	if _, err := svc.RecordVisit(ctx, &RecordVisitRequest{UserID: 1, ModuleID: 1, Completed: true}); err != nil {
		t.Fatalf("RecordVisit: %v", err)
	}

	got, err := svc.Overall(ctx, 1)
	if err != nil {
		t.Fatalf("Overall: %v", err)
	}
	if got != 33 {
		t.Errorf("expected 33%% for 1 of 3 modules, got %d", got)
	}
}

func TestOverallRoundsHalfUp(t *testing.T) {
	svc, store, _ := newProgressFixture(t)
	ctx := context.Background()

	seedModules(t, store, 8)
	for moduleID := uint(1); moduleID <= 3; moduleID++ {
		if _, err := svc.RecordVisit(ctx, &RecordVisitRequest{UserID: 1, ModuleID: moduleID, Completed: true}); err != nil {
			t.Fatalf("RecordVisit: %v", err)
		}
	}

	got, err := svc.Overall(ctx, 1)
	if err != nil {
		t.Fatalf("Overall: %v", err)
	}
	if got != 38 {
		t.Errorf("expected 3 of 8 to round to 38, got %d", got)
	}
}

func TestOverallWithNoModules(t *testing.T) {
	svc, _, _ := newProgressFixture(t)

	got, err := svc.Overall(context.Background(), 1)
	if err != nil {
		t.Fatalf("Overall: %v", err)
	}
	if got != 0 {
		t.Errorf("expected 0 with an empty catalog, got %d", got)
	}
}

func TestOverallIgnoresIncompleteVisits(t *testing.T) {
	svc, store, _ := newProgressFixture(t)
	ctx := context.Background()

	seedModules(t, store, 2)
	if _, err := svc.RecordVisit(ctx, &RecordVisitRequest{UserID: 1, ModuleID: 1, TimeSpent: 30}); err != nil {
		t.Fatalf("RecordVisit: %v", err)
	}

	got, err := svc.Overall(ctx, 1)
	if err != nil {
		t.Fatalf("Overall: %v", err)
	}
	if got != 0 {
		t.Errorf("visited but incomplete module must not count, got %d", got)
	}
}
