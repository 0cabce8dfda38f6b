package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/movieshelf/movieshelf/internal/model"
	"github.com/movieshelf/movieshelf/internal/repository"
)

// ErrMovieNotFound is returned when a movie does not exist or is owned by
// another user. The two cases are deliberately indistinguishable.
var ErrMovieNotFound = errors.New("movie not found")

// MovieStore is the storage contract the movie service depends on.
// *repository.Repository satisfies it.
type MovieStore interface {
	CreateMovie(ctx context.Context, movie *model.Movie) error
	GetMovie(ctx context.Context, userID, id int64) (*model.Movie, error)
	ListMovies(ctx context.Context, userID int64) ([]*model.Movie, error)
	SearchMovies(ctx context.Context, userID int64, q string) ([]*model.Movie, error)
	UpdateMovie(ctx context.Context, userID, id int64, update repository.MovieUpdate) (int64, error)
	DeleteMovie(ctx context.Context, userID, id int64) (int64, error)
}

// MovieService handles per-user movie tracking.
type MovieService struct {
	store MovieStore
}

// NewMovieService creates a new MovieService.
func NewMovieService(store MovieStore) *MovieService {
	return &MovieService{store: store}
}

// CreateMovieInput defines input for creating a movie.
// Title is required; everything else is optional.
type CreateMovieInput struct {
	Title     string
	Year      *string
	Type      *string
	ImdbID    *string
	PosterURL *string
}

// Create persists a new movie owned by userID.
func (s *MovieService) Create(ctx context.Context, userID int64, input CreateMovieInput) (*model.Movie, error) {
	now := time.Now().UTC()
	movie := &model.Movie{
		UserID:    userID,
		Title:     input.Title,
		Year:      input.Year,
		Type:      input.Type,
		ImdbID:    input.ImdbID,
		PosterURL: input.PosterURL,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.CreateMovie(ctx, movie); err != nil {
		return nil, fmt.Errorf("create movie: %w", err)
	}

	return movie, nil
}

// List returns all movies owned by userID.
func (s *MovieService) List(ctx context.Context, userID int64) ([]*model.Movie, error) {
	return s.store.ListMovies(ctx, userID)
}

// Search returns owned movies whose title or external id contains query,
// case-insensitively. A blank query behaves exactly as List.
func (s *MovieService) Search(ctx context.Context, userID int64, query string) ([]*model.Movie, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.store.ListMovies(ctx, userID)
	}
	return s.store.SearchMovies(ctx, userID, query)
}

// GetByID returns the movie iff it exists and is owned by userID.
func (s *MovieService) GetByID(ctx context.Context, userID, id int64) (*model.Movie, error) {
	movie, err := s.store.GetMovie(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, fmt.Errorf("get movie: %w", err)
	}
	return movie, nil
}

// Update applies a partial update to an owned movie. Only fields present
// in the payload change. Zero matching rows is a silent no-op: callers
// get an acknowledgment either way, not the mutated row.
func (s *MovieService) Update(ctx context.Context, userID, id int64, update repository.MovieUpdate) error {
	if _, err := s.store.UpdateMovie(ctx, userID, id, update); err != nil {
		return fmt.Errorf("update movie: %w", err)
	}
	return nil
}

// Delete removes an owned movie. Zero matching rows is a silent no-op.
func (s *MovieService) Delete(ctx context.Context, userID, id int64) error {
	if _, err := s.store.DeleteMovie(ctx, userID, id); err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}
	return nil
}
