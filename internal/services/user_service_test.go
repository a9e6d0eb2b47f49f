package services

import (
	"context"
	"errors"
	"testing"

	"github.com/printforge-edu/learning-service/internal/repositories/memory"
	"github.com/printforge-edu/learning-service/internal/validator"
)

func newUserFixture(t *testing.T) UserService {
	t.Helper()
	return NewUserService(memory.NewStore(), testLogger(), validator.New())
}

func TestCreateUser(t *testing.T) {
	svc := newUserFixture(t)
	ctx := context.Background()

	user, err := svc.Create(ctx, &CreateUserRequest{
		Username:    "maker42",
		Password:    "hunter22",
		DisplayName: "Maker",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if user.ID == 0 {
		t.Error("user was not assigned an id")
	}

	found, err := svc.GetByUsername(ctx, "maker42")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if found.ID != user.ID {
		t.Errorf("lookup returned id %d, want %d", found.ID, user.ID)
	}
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	svc := newUserFixture(t)
	ctx := context.Background()

	req := &CreateUserRequest{Username: "maker42", Password: "hunter22", DisplayName: "Maker"}
	if _, err := svc.Create(ctx, req); err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err := svc.Create(ctx, req)
	if !errors.Is(err, ErrDuplicateUsername) {
		t.Errorf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestGetByUsernameAbsent(t *testing.T) {
	svc := newUserFixture(t)

	_, err := svc.GetByUsername(context.Background(), "nobody")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGetAbsentUser(t *testing.T) {
	svc := newUserFixture(t)

	_, err := svc.Get(context.Background(), 99)
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateProgressReplacesDocument(t *testing.T) {
	svc := newUserFixture(t)
	ctx := context.Background()

	user, err := svc.Create(ctx, &CreateUserRequest{
		Username:    "maker42",
		Password:    "hunter22",
		DisplayName: "Maker",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.UpdateProgress(ctx, user.ID, &UpdateUserProgressRequest{
		ProgressData: map[string]interface{}{"theme": "dark", "bookmarks": []interface{}{"slicing"}},
	}); err != nil {
		t.Fatalf("UpdateProgress: %v", err)
	}

	updated, err := svc.UpdateProgress(ctx, user.ID, &UpdateUserProgressRequest{
		ProgressData: map[string]interface{}{"theme": "light"},
	})
	if err != nil {
		t.Fatalf("UpdateProgress: %v", err)
	}
	if _, ok := updated.ProgressData["bookmarks"]; ok {
		t.Error("old keys must not survive a replace")
	}
	if updated.ProgressData["theme"] != "light" {
		t.Errorf("expected theme light, got %v", updated.ProgressData["theme"])
	}
}

func TestUpdateProgressAbsentUser(t *testing.T) {
	svc := newUserFixture(t)

	_, err := svc.UpdateProgress(context.Background(), 404, &UpdateUserProgressRequest{
		ProgressData: map[string]interface{}{"theme": "dark"},
	})
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
