package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/printforge-edu/learning-service/internal/events"
	"github.com/printforge-edu/learning-service/internal/models"
	"github.com/printforge-edu/learning-service/internal/repositories"
	"github.com/printforge-edu/learning-service/internal/validator"
)

type quizService struct {
	store     repositories.Store
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewQuizService(store repositories.Store, publisher events.EventPublisher, logger *slog.Logger, validator *validator.Validator) QuizService {
	return &quizService{
		store:     store,
		publisher: publisher,
		logger:    logger,
		validator: validator,
	}
}

func (s *quizService) Questions(ctx context.Context, moduleID uint) ([]*models.QuizQuestion, error) {
	return s.store.Questions().ListByModule(ctx, moduleID)
}

func (s *quizService) CreateQuestion(ctx context.Context, req *CreateQuizQuestionRequest) (*models.QuizQuestion, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}
	// The correct option must name one of the options.
	if req.CorrectOption >= len(req.Options) {
		return nil, fmt.Errorf("%w: correct_option %d out of range for %d options",
			ErrValidationFailed, req.CorrectOption, len(req.Options))
	}

	question := &models.QuizQuestion{
		ModuleID:      req.ModuleID,
		Question:      req.Question,
		Options:       req.Options,
		CorrectOption: req.CorrectOption,
		Explanation:   req.Explanation,
	}
	if err := s.store.Questions().Create(ctx, question); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}
	return question, nil
}

func (s *quizService) Submit(ctx context.Context, req *SubmitQuizResultRequest) (*models.QuizResult, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	questions, err := s.store.Questions().ListByModule(ctx, req.ModuleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}

	completedAt := time.Now()
	if req.CompletedAt != nil {
		completedAt = *req.CompletedAt
	}

	result := &models.QuizResult{
		UserID:      req.UserID,
		ModuleID:    req.ModuleID,
		Score:       scoreAnswers(questions, req.Answers),
		CompletedAt: completedAt,
	}
	if err := s.store.Results().Create(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to save result: %w", err)
	}

	s.logger.Info("quiz result recorded",
		"user_id", req.UserID,
		"module_id", req.ModuleID,
		"score", result.Score,
		"questions", len(questions))

	event := events.NewEvent(events.QuizResultRecorded, events.QuizResultEvent{
		ResultID:      result.ID,
		UserID:        result.UserID,
		ModuleID:      result.ModuleID,
		Score:         result.Score,
		QuestionCount: len(questions),
	})
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish quiz result event", "error", err)
	}

	return result, nil
}

func (s *quizService) Results(ctx context.Context, userID uint, moduleID *uint) ([]*models.QuizResult, error) {
	return s.store.Results().ListByUser(ctx, userID, moduleID)
}

// scoreAnswers counts the questions whose selected option index equals the
// correct one. A missing answer contributes nothing; it is never an error.
// The computation is pure: the score depends only on its two inputs.
func scoreAnswers(questions []*models.QuizQuestion, answers map[uint]int) int {
	score := 0
	for _, q := range questions {
		if selected, ok := answers[q.ID]; ok && selected == q.CorrectOption {
			score++
		}
	}
	return score
}
