package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/printforge-edu/learning-service/internal/models"
	"github.com/printforge-edu/learning-service/internal/repositories"
)

type glossaryRepository struct {
	mu    sync.RWMutex
	table *table[models.GlossaryTerm]
}

func (r *glossaryRepository) List(ctx context.Context) ([]*models.GlossaryTerm, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	terms := r.table.list()
	out := make([]*models.GlossaryTerm, len(terms))
	for i, t := range terms {
		cp := *t
		out[i] = &cp
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Term < out[j].Term })
	return out, nil
}

func (r *glossaryRepository) GetByID(ctx context.Context, id uint) (*models.GlossaryTerm, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	term, ok := r.table.get(id)
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *term
	return &cp, nil
}

func (r *glossaryRepository) Create(ctx context.Context, term *models.GlossaryTerm) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Term uniqueness is case-sensitive.
	if _, taken := r.table.find(func(t *models.GlossaryTerm) bool { return t.Term == term.Term }); taken {
		return repositories.ErrDuplicateKey
	}

	cp := *term
	r.table.insert(&cp, func(t *models.GlossaryTerm, id uint) { t.ID = id })
	term.ID = cp.ID
	return nil
}

type partRepository struct {
	mu    sync.RWMutex
	table *table[models.PrinterPart]
}

func (r *partRepository) List(ctx context.Context) ([]*models.PrinterPart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	parts := r.table.list()
	out := make([]*models.PrinterPart, len(parts))
	for i, p := range parts {
		cp := *p
		out[i] = &cp
	}
	return out, nil
}

func (r *partRepository) GetByID(ctx context.Context, id uint) (*models.PrinterPart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	part, ok := r.table.get(id)
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *part
	return &cp, nil
}

func (r *partRepository) Create(ctx context.Context, part *models.PrinterPart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *part
	r.table.insert(&cp, func(p *models.PrinterPart, id uint) { p.ID = id })
	part.ID = cp.ID
	return nil
}

type materialRepository struct {
	mu    sync.RWMutex
	table *table[models.Material]
}

func (r *materialRepository) List(ctx context.Context) ([]*models.Material, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	materials := r.table.list()
	out := make([]*models.Material, len(materials))
	for i, m := range materials {
		cp := *m
		out[i] = &cp
	}
	return out, nil
}

func (r *materialRepository) GetByID(ctx context.Context, id uint) (*models.Material, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	material, ok := r.table.get(id)
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *material
	return &cp, nil
}

func (r *materialRepository) Create(ctx context.Context, material *models.Material) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *material
	r.table.insert(&cp, func(m *models.Material, id uint) { m.ID = id })
	material.ID = cp.ID
	return nil
}
