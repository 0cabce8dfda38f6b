package service

import (
	"context"
	"errors"
	"testing"

	"github.com/movieshelf/movieshelf/internal/testutil"
)

func TestCategoryCRUD(t *testing.T) {
	svc := NewCategoryService(testutil.NewMemStore())
	ctx := context.Background()

	created, err := svc.Create(ctx, "Sci-Fi")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID == 0 {
		t.Error("category id should be assigned")
	}

	got, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Name != "Sci-Fi" {
		t.Errorf("Name = %q", got.Name)
	}

	updated, err := svc.Update(ctx, created.ID, "Science Fiction")
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Name != "Science Fiction" {
		t.Errorf("updated Name = %q", updated.Name)
	}

	all, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 1 {
		t.Errorf("List() returned %d categories, want 1", len(all))
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := svc.GetByID(ctx, created.ID); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("GetByID after delete error = %v, want ErrCategoryNotFound", err)
	}
}

// Unlike movies, a missing category id is surfaced, not swallowed.
func TestCategoryMissingIDIsNotFound(t *testing.T) {
	svc := NewCategoryService(testutil.NewMemStore())
	ctx := context.Background()

	if _, err := svc.GetByID(ctx, 999); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("GetByID(999) error = %v, want ErrCategoryNotFound", err)
	}
	if _, err := svc.Update(ctx, 999, "Drama"); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("Update(999) error = %v, want ErrCategoryNotFound", err)
	}
	if err := svc.Delete(ctx, 999); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("Delete(999) error = %v, want ErrCategoryNotFound", err)
	}
}
