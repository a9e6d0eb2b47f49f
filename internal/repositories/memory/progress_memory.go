package memory

import (
	"context"
	"sync"
	"time"

	"github.com/printforge-edu/learning-service/internal/models"
)

type progressRepository struct {
	mu    sync.RWMutex
	table *table[models.Progress]
}

func (r *progressRepository) ListByUser(ctx context.Context, userID uint) ([]*models.Progress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := r.table.filter(func(p *models.Progress) bool { return p.UserID == userID })
	out := make([]*models.Progress, len(matched))
	for i, p := range matched {
		cp := *p
		out[i] = &cp
	}
	return out, nil
}

func (r *progressRepository) RecordVisit(ctx context.Context, userID, moduleID uint, completed bool, lastAccessed time.Time, timeSpentDelta int) (*models.Progress, error) {
	// Find-then-write must not interleave with another visit for the same
	// pair, so the whole upsert runs under the write lock.
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.table.find(func(p *models.Progress) bool {
		return p.UserID == userID && p.ModuleID == moduleID
	})
	if ok {
		// Completed and LastAccessed reflect the latest visit; TimeSpent
		// is a running total and only ever accumulates.
		existing.Completed = completed
		existing.LastAccessed = lastAccessed
		existing.TimeSpent += timeSpentDelta
		cp := *existing
		return &cp, nil
	}

	row := &models.Progress{
		UserID:       userID,
		ModuleID:     moduleID,
		Completed:    completed,
		LastAccessed: lastAccessed,
		TimeSpent:    timeSpentDelta,
	}
	r.table.insert(row, func(p *models.Progress, id uint) { p.ID = id })
	cp := *row
	return &cp, nil
}
