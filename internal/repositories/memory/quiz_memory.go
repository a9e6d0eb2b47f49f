package memory

import (
	"context"
	"sync"

	"github.com/printforge-edu/learning-service/internal/models"
)

type questionRepository struct {
	mu    sync.RWMutex
	table *table[models.QuizQuestion]
}

func (r *questionRepository) ListByModule(ctx context.Context, moduleID uint) ([]*models.QuizQuestion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := r.table.filter(func(q *models.QuizQuestion) bool { return q.ModuleID == moduleID })
	out := make([]*models.QuizQuestion, len(matched))
	for i, q := range matched {
		cp := *q
		out[i] = &cp
	}
	return out, nil
}

func (r *questionRepository) Create(ctx context.Context, question *models.QuizQuestion) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *question
	r.table.insert(&cp, func(q *models.QuizQuestion, id uint) { q.ID = id })
	question.ID = cp.ID
	return nil
}

type resultRepository struct {
	mu    sync.RWMutex
	table *table[models.QuizResult]
}

func (r *resultRepository) Create(ctx context.Context, result *models.QuizResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *result
	r.table.insert(&cp, func(res *models.QuizResult, id uint) { res.ID = id })
	result.ID = cp.ID
	return nil
}

func (r *resultRepository) ListByUser(ctx context.Context, userID uint, moduleID *uint) ([]*models.QuizResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := r.table.filter(func(res *models.QuizResult) bool {
		if res.UserID != userID {
			return false
		}
		return moduleID == nil || res.ModuleID == *moduleID
	})
	out := make([]*models.QuizResult, len(matched))
	for i, res := range matched {
		cp := *res
		out[i] = &cp
	}
	return out, nil
}
