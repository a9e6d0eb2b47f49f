package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/printforge-edu/learning-service/internal/events"
	"github.com/printforge-edu/learning-service/internal/models"
	"github.com/printforge-edu/learning-service/internal/repositories/memory"
	"github.com/printforge-edu/learning-service/internal/validator"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newQuizFixture(t *testing.T) (QuizService, *memory.Store, *events.MockEventPublisher) {
	t.Helper()
	store := memory.NewStore()
	mock := events.NewMockEventPublisher(testLogger())
	svc := NewQuizService(store, mock, testLogger(), validator.New())
	return svc, store, mock
}

func seedQuestions(t *testing.T, store *memory.Store, moduleID uint, correct ...int) []uint {
	t.Helper()
	ctx := context.Background()
	ids := make([]uint, 0, len(correct))
	for _, c := range correct {
		q := &models.QuizQuestion{
			ModuleID:      moduleID,
			Question:      "q",
			Options:       []string{"a", "b", "c"},
			CorrectOption: c,
		}
		if err := store.Questions().Create(ctx, q); err != nil {
			t.Fatalf("seed question: %v", err)
		}
		ids = append(ids, q.ID)
	}
	return ids
}

func TestSubmitScoresStrictMatches(t *testing.T) {
	svc, store, _ := newQuizFixture(t)
	ctx := context.Background()

	ids := seedQuestions(t, store, 1, 0, 2)

	result, err := svc.Submit(ctx, &SubmitQuizResultRequest{
		UserID:   1,
		ModuleID: 1,
		Answers:  map[uint]int{ids[0]: 0, ids[1]: 1},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if result.Score != 1 {
		t.Errorf("expected score 1, got %d", result.Score)
	}
	if result.ID == 0 {
		t.Error("result was not assigned an id")
	}
}

func TestSubmitEmptyAnswersScoresZero(t *testing.T) {
	svc, store, _ := newQuizFixture(t)
	ctx := context.Background()

	seedQuestions(t, store, 1, 0, 2)

	result, err := svc.Submit(ctx, &SubmitQuizResultRequest{
		UserID:   1,
		ModuleID: 1,
		Answers:  map[uint]int{},
	})
	if err != nil {
		t.Fatalf("Submit with empty answers must not fail: %v", err)
	}
	if result.Score != 0 {
		t.Errorf("expected score 0, got %d", result.Score)
	}
}

func TestSubmitModuleWithoutQuestions(t *testing.T) {
	svc, _, _ := newQuizFixture(t)

	result, err := svc.Submit(context.Background(), &SubmitQuizResultRequest{
		UserID:   1,
		ModuleID: 42,
		Answers:  map[uint]int{1: 0},
	})
	if err != nil {
		t.Fatalf("Submit for question-less module must not fail: %v", err)
	}
	if result.Score != 0 {
		t.Errorf("expected score 0, got %d", result.Score)
	}
}

func TestSubmitPublishesEvent(t *testing.T) {
	svc, store, mock := newQuizFixture(t)
	ctx := context.Background()

	ids := seedQuestions(t, store, 1, 1)
	if _, err := svc.Submit(ctx, &SubmitQuizResultRequest{
		UserID:   7,
		ModuleID: 1,
		Answers:  map[uint]int{ids[0]: 1},
	}); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	published := mock.GetPublishedEvents()
	if len(published) != 1 {
		t.Fatalf("expected 1 event, got %d", len(published))
	}
	if published[0].Type != events.QuizResultRecorded {
		t.Errorf("expected %q event, got %q", events.QuizResultRecorded, published[0].Type)
	}
}

func TestScoreAnswersIsPure(t *testing.T) {
	questions := []*models.QuizQuestion{
		{ID: 1, CorrectOption: 0},
		{ID: 2, CorrectOption: 2},
	}
	answers := map[uint]int{1: 0, 2: 1}

	first := scoreAnswers(questions, answers)
	second := scoreAnswers(questions, answers)
	if first != 1 || second != 1 {
		t.Errorf("expected score 1 on every call, got %d then %d", first, second)
	}
}

func TestCreateQuestionRejectsOutOfRangeCorrectOption(t *testing.T) {
	svc, _, _ := newQuizFixture(t)

	_, err := svc.CreateQuestion(context.Background(), &CreateQuizQuestionRequest{
		ModuleID:      1,
		Question:      "Which layer goes first?",
		Options:       []string{"bottom", "top"},
		CorrectOption: 2,
	})
	if err == nil {
		t.Fatal("expected validation failure for correct_option out of range")
	}
}

func TestResultsOptionalModuleFilter(t *testing.T) {
	svc, store, _ := newQuizFixture(t)
	ctx := context.Background()

	seedQuestions(t, store, 1, 0)
	seedQuestions(t, store, 2, 0)

	for _, moduleID := range []uint{1, 2} {
		if _, err := svc.Submit(ctx, &SubmitQuizResultRequest{UserID: 1, ModuleID: moduleID}); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}

	all, err := svc.Results(ctx, 1, nil)
	if err != nil {
		t.Fatalf("Results: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 results, got %d", len(all))
	}

	moduleID := uint(2)
	one, err := svc.Results(ctx, 1, &moduleID)
	if err != nil {
		t.Fatalf("Results: %v", err)
	}
	if len(one) != 1 || one[0].ModuleID != 2 {
		t.Fatalf("expected only module 2 results, got %+v", one)
	}
}
