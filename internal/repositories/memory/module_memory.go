package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/printforge-edu/learning-service/internal/models"
	"github.com/printforge-edu/learning-service/internal/repositories"
)

type moduleRepository struct {
	mu    sync.RWMutex
	table *table[models.Module]
}

func (r *moduleRepository) List(ctx context.Context) ([]*models.Module, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return sortByDisplayOrder(r.table.list()), nil
}

func (r *moduleRepository) ListByType(ctx context.Context, moduleType models.ModuleType) ([]*models.Module, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := r.table.filter(func(m *models.Module) bool { return m.Type == moduleType })
	return sortByDisplayOrder(matched), nil
}

func (r *moduleRepository) GetByID(ctx context.Context, id uint) (*models.Module, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	module, ok := r.table.get(id)
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *module
	return &cp, nil
}

func (r *moduleRepository) Create(ctx context.Context, module *models.Module) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *module
	r.table.insert(&cp, func(m *models.Module, id uint) { m.ID = id })
	module.ID = cp.ID
	return nil
}

func (r *moduleRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.table.len(), nil
}

// sortByDisplayOrder sorts ascending by display order. The sort is stable,
// so modules sharing an order value keep their insertion order.
func sortByDisplayOrder(modules []*models.Module) []*models.Module {
	out := make([]*models.Module, len(modules))
	for i, m := range modules {
		cp := *m
		out[i] = &cp
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DisplayOrder < out[j].DisplayOrder
	})
	return out
}
