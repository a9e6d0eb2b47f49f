package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestHelper(t *testing.T) *Helper {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewHelper(client, "test")
}

func TestHelperSetGet(t *testing.T) {
	helper := newTestHelper(t)
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	if err := helper.Set(ctx, "materials", payload{Name: "PLA", Count: 3}, time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var got payload
	if err := helper.Get(ctx, "materials", &got); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "PLA" || got.Count != 3 {
		t.Errorf("unexpected cached value: %+v", got)
	}
}

func TestHelperMiss(t *testing.T) {
	helper := newTestHelper(t)

	var dest struct{}
	err := helper.Get(context.Background(), "absent", &dest)
	if !errors.Is(err, ErrCacheNotFound) {
		t.Fatalf("expected ErrCacheNotFound, got %v", err)
	}
}

func TestHelperDelete(t *testing.T) {
	helper := newTestHelper(t)
	ctx := context.Background()

	if err := helper.Set(ctx, "glossary", []string{"Extruder"}, time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := helper.Delete(ctx, "glossary"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	var dest []string
	if err := helper.Get(ctx, "glossary", &dest); !errors.Is(err, ErrCacheNotFound) {
		t.Fatalf("expected miss after delete, got %v", err)
	}
}

func TestNilHelperDegradesGracefully(t *testing.T) {
	var helper *Helper
	ctx := context.Background()

	if err := helper.Set(ctx, "k", 1, time.Minute); err != nil {
		t.Errorf("nil helper Set: %v", err)
	}
	if err := helper.Delete(ctx, "k"); err != nil {
		t.Errorf("nil helper Delete: %v", err)
	}
	var dest int
	if err := helper.Get(ctx, "k", &dest); !errors.Is(err, ErrCacheNotAvailable) {
		t.Errorf("expected ErrCacheNotAvailable, got %v", err)
	}
}
