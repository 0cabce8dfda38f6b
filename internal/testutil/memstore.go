package testutil

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/movieshelf/movieshelf/internal/model"
	"github.com/movieshelf/movieshelf/internal/repository"
)

// MemStore is an in-memory stand-in for the Postgres repository, used by
// service and handler tests. It mirrors the repository's contract,
// including owner scoping and its sentinel errors.
type MemStore struct {
	mu         sync.Mutex
	nextID     int64
	users      map[int64]*model.User
	movies     map[int64]*model.Movie
	categories map[int64]*model.Category
}

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{
		users:      make(map[int64]*model.User),
		movies:     make(map[int64]*model.Movie),
		categories: make(map[int64]*model.Category),
	}
}

func (s *MemStore) nextSeq() int64 {
	s.nextID++
	return s.nextID
}

// CreateUser inserts a user, enforcing login uniqueness.
func (s *MemStore) CreateUser(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Login == user.Login {
			return repository.ErrLoginExists
		}
	}

	user.ID = s.nextSeq()
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

// GetUserByLogin retrieves a user by login.
func (s *MemStore) GetUserByLogin(_ context.Context, login string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Login == login {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

// CreateMovie inserts a movie.
func (s *MemStore) CreateMovie(_ context.Context, movie *model.Movie) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	movie.ID = s.nextSeq()
	copied := *movie
	s.movies[movie.ID] = &copied
	return nil
}

// GetMovie retrieves a movie scoped to its owner.
func (s *MemStore) GetMovie(_ context.Context, userID, id int64) (*model.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.movies[id]
	if !ok || m.UserID != userID {
		return nil, repository.ErrMovieNotFound
	}
	copied := *m
	return &copied, nil
}

// ListMovies retrieves all movies owned by userID.
func (s *MemStore) ListMovies(_ context.Context, userID int64) ([]*model.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	movies := make([]*model.Movie, 0)
	for id := int64(1); id <= s.nextID; id++ {
		if m, ok := s.movies[id]; ok && m.UserID == userID {
			copied := *m
			movies = append(movies, &copied)
		}
	}
	return movies, nil
}

// SearchMovies retrieves owned movies whose title or external id contains
// q, case-insensitively.
func (s *MemStore) SearchMovies(_ context.Context, userID int64, q string) ([]*model.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	needle := strings.ToLower(q)
	movies := make([]*model.Movie, 0)
	for id := int64(1); id <= s.nextID; id++ {
		m, ok := s.movies[id]
		if !ok || m.UserID != userID {
			continue
		}
		if strings.Contains(strings.ToLower(m.Title), needle) ||
			(m.ImdbID != nil && strings.Contains(strings.ToLower(*m.ImdbID), needle)) {
			copied := *m
			movies = append(movies, &copied)
		}
	}
	return movies, nil
}

// UpdateMovie applies a partial update to an owned movie.
func (s *MemStore) UpdateMovie(_ context.Context, userID, id int64, update repository.MovieUpdate) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.movies[id]
	if !ok || m.UserID != userID {
		return 0, nil
	}

	if update.Title != nil {
		m.Title = *update.Title
	}
	if update.Year != nil {
		m.Year = update.Year
	}
	if update.Type != nil {
		m.Type = update.Type
	}
	if update.ImdbID != nil {
		m.ImdbID = update.ImdbID
	}
	if update.PosterURL != nil {
		m.PosterURL = update.PosterURL
	}
	m.UpdatedAt = time.Now().UTC()
	return 1, nil
}

// DeleteMovie removes an owned movie.
func (s *MemStore) DeleteMovie(_ context.Context, userID, id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.movies[id]
	if !ok || m.UserID != userID {
		return 0, nil
	}
	delete(s.movies, id)
	return 1, nil
}

// CreateCategory inserts a category.
func (s *MemStore) CreateCategory(_ context.Context, category *model.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	category.ID = s.nextSeq()
	copied := *category
	s.categories[category.ID] = &copied
	return nil
}

// GetCategory retrieves a category by id.
func (s *MemStore) GetCategory(_ context.Context, id int64) (*model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.categories[id]
	if !ok {
		return nil, repository.ErrCategoryNotFound
	}
	copied := *c
	return &copied, nil
}

// ListCategories retrieves all categories.
func (s *MemStore) ListCategories(_ context.Context) ([]*model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories := make([]*model.Category, 0)
	for id := int64(1); id <= s.nextID; id++ {
		if c, ok := s.categories[id]; ok {
			copied := *c
			categories = append(categories, &copied)
		}
	}
	return categories, nil
}

// UpdateCategory renames a category.
func (s *MemStore) UpdateCategory(_ context.Context, id int64, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.categories[id]
	if !ok {
		return repository.ErrCategoryNotFound
	}
	c.Name = name
	return nil
}

// DeleteCategory removes a category.
func (s *MemStore) DeleteCategory(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[id]; !ok {
		return repository.ErrCategoryNotFound
	}
	delete(s.categories, id)
	return nil
}
