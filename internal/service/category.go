package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/movieshelf/movieshelf/internal/model"
	"github.com/movieshelf/movieshelf/internal/repository"
)

// ErrCategoryNotFound is returned for operations on a missing category id.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryStore is the storage contract the category service depends on.
// *repository.Repository satisfies it.
type CategoryStore interface {
	CreateCategory(ctx context.Context, category *model.Category) error
	GetCategory(ctx context.Context, id int64) (*model.Category, error)
	ListCategories(ctx context.Context) ([]*model.Category, error)
	UpdateCategory(ctx context.Context, id int64, name string) error
	DeleteCategory(ctx context.Context, id int64) error
}

// CategoryService handles global category CRUD. Categories carry no owner:
// every authenticated user sees and mutates the same set.
type CategoryService struct {
	store CategoryStore
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(store CategoryStore) *CategoryService {
	return &CategoryService{store: store}
}

// Create persists a new named category.
func (s *CategoryService) Create(ctx context.Context, name string) (*model.Category, error) {
	category := &model.Category{Name: name}
	if err := s.store.CreateCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

// List returns all categories.
func (s *CategoryService) List(ctx context.Context) ([]*model.Category, error) {
	return s.store.ListCategories(ctx)
}

// GetByID returns the category or ErrCategoryNotFound.
func (s *CategoryService) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	category, err := s.store.GetCategory(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return category, nil
}

// Update renames a category. Unlike movies, a miss is not a silent no-op:
// it surfaces as ErrCategoryNotFound.
func (s *CategoryService) Update(ctx context.Context, id int64, name string) (*model.Category, error) {
	if err := s.store.UpdateCategory(ctx, id, name); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("update category: %w", err)
	}
	return &model.Category{ID: id, Name: name}, nil
}

// Delete removes a category or returns ErrCategoryNotFound.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
