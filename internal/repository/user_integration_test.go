//go:build integration

package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/seyali/seyali/internal/model"
	"github.com/seyali/seyali/internal/testutil"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	databaseURL := testutil.RequireEnv(t, "DATABASE_URL")

	if err := RunMigrations(databaseURL, testutil.MigrationsDir()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	repo, err := New(context.Background(), databaseURL)
	if err != nil {
		t.Skipf("database not reachable: %v", err)
	}
	t.Cleanup(repo.Close)

	return repo
}

func TestIntegrationUser_CreateAndGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	email := fmt.Sprintf("%s@seyali.test", uuid.New().String())
	user := &model.User{
		ID:        uuid.New().String(),
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}

	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	got, err := repo.GetUserByEmail(ctx, email)
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}

	if got.ID != user.ID {
		t.Errorf("expected ID %s, got %s", user.ID, got.ID)
	}
}

func TestIntegrationUser_DuplicateEmail(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	email := fmt.Sprintf("%s@seyali.test", uuid.New().String())
	first := &model.User{ID: uuid.New().String(), Email: email, CreatedAt: time.Now().UTC()}
	second := &model.User{ID: uuid.New().String(), Email: email, CreatedAt: time.Now().UTC()}

	if err := repo.CreateUser(ctx, first); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	if err := repo.CreateUser(ctx, second); !errors.Is(err, ErrEmailExists) {
		t.Errorf("expected ErrEmailExists, got %v", err)
	}
}

func TestIntegrationUser_NotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetUserByEmail(context.Background(), "missing@seyali.test")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
