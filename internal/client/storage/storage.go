// Package storage is the client's local sqlite store: the saved
// session token and the favorites list.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS session (
	id    INTEGER PRIMARY KEY CHECK (id = 1),
	token TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS favorites (
	imdb_id    TEXT PRIMARY KEY,
	title      TEXT NOT NULL,
	year       TEXT,
	poster_url TEXT,
	added_at   TIMESTAMP NOT NULL
);
`

// Favorite is a locally pinned movie. Favorites never leave the
// client; the server knows nothing about them.
type Favorite struct {
	ImdbID    string
	Title     string
	Year      string
	PosterURL string
	AddedAt   time.Time
}

// Storage wraps the client's sqlite database.
type Storage struct {
	db *sql.DB
}

// Open opens (or creates) the client database in dataDir.
func Open(ctx context.Context, dataDir string) (*Storage, error) {
	db, err := sql.Open("sqlite", filepath.Join(dataDir, "movieshelf.db"))
	if err != nil {
		return nil, fmt.Errorf("open client db: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply client schema: %w", err)
	}

	return &Storage{db: db}, nil
}

// Close closes the database.
func (s *Storage) Close() error {
	return s.db.Close()
}

// SaveToken persists the session token, replacing any previous one.
func (s *Storage) SaveToken(ctx context.Context, token string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO session (id, token) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET token = excluded.token
	`, token)
	if err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

// Token returns the saved session token, or "" when logged out.
func (s *Storage) Token(ctx context.Context) (string, error) {
	var token string
	err := s.db.QueryRowContext(ctx, `SELECT token FROM session WHERE id = 1`).Scan(&token)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load token: %w", err)
	}
	return token, nil
}

// ClearToken forgets the saved session.
func (s *Storage) ClearToken(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM session`); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

// AddFavorite pins a movie locally. Re-adding the same imdb id
// refreshes the stored fields.
func (s *Storage) AddFavorite(ctx context.Context, fav Favorite) error {
	if fav.AddedAt.IsZero() {
		fav.AddedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO favorites (imdb_id, title, year, poster_url, added_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(imdb_id) DO UPDATE SET
			title = excluded.title,
			year = excluded.year,
			poster_url = excluded.poster_url
	`, fav.ImdbID, fav.Title, fav.Year, fav.PosterURL, fav.AddedAt)
	if err != nil {
		return fmt.Errorf("add favorite %s: %w", fav.ImdbID, err)
	}
	return nil
}

// RemoveFavorite unpins a movie. Removing an unknown id is a no-op.
func (s *Storage) RemoveFavorite(ctx context.Context, imdbID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM favorites WHERE imdb_id = ?`, imdbID); err != nil {
		return fmt.Errorf("remove favorite %s: %w", imdbID, err)
	}
	return nil
}

// ListFavorites returns favorites, most recently added first.
func (s *Storage) ListFavorites(ctx context.Context) ([]Favorite, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT imdb_id, title, year, poster_url, added_at
		FROM favorites
		ORDER BY added_at DESC, imdb_id
	`)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer rows.Close()

	var favorites []Favorite
	for rows.Next() {
		var fav Favorite
		if err := rows.Scan(&fav.ImdbID, &fav.Title, &fav.Year, &fav.PosterURL, &fav.AddedAt); err != nil {
			return nil, fmt.Errorf("scan favorite: %w", err)
		}
		favorites = append(favorites, fav)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate favorites: %w", err)
	}
	return favorites, nil
}
