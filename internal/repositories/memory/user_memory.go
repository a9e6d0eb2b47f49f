package memory

import (
	"context"
	"sync"

	"github.com/printforge-edu/learning-service/internal/models"
	"github.com/printforge-edu/learning-service/internal/repositories"
)

type userRepository struct {
	mu    sync.RWMutex
	table *table[models.User]
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.table.get(id)
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return cloneUser(user), nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.table.find(func(u *models.User) bool { return u.Username == username })
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return cloneUser(user), nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Uniqueness check and insert happen under the same lock.
	if _, taken := r.table.find(func(u *models.User) bool { return u.Username == user.Username }); taken {
		return repositories.ErrDuplicateKey
	}

	stored := cloneUser(user)
	r.table.insert(stored, func(u *models.User, id uint) { u.ID = id })
	user.ID = stored.ID
	return nil
}

func (r *userRepository) UpdateProgressData(ctx context.Context, id uint, data map[string]interface{}) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.table.get(id)
	if !ok {
		return nil, repositories.ErrNotFound
	}

	// Wholesale replacement, never a field-by-field merge.
	user.ProgressData = data
	return cloneUser(user), nil
}

func cloneUser(u *models.User) *models.User {
	cp := *u
	return &cp
}
