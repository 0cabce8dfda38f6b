package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/movieshelf/movieshelf/internal/model"
)

// MovieUpdate carries a partial update. Nil fields are left untouched,
// matching the partial-update contract of the API.
type MovieUpdate struct {
	Title     *string
	Year      *string
	Type      *string
	ImdbID    *string
	PosterURL *string
}

const movieColumns = `id, user_id, title, year, type, imdb_id, poster_url, created_at, updated_at`

// CreateMovie inserts a new movie and populates its generated id.
func (r *Repository) CreateMovie(ctx context.Context, movie *model.Movie) error {
	query := `
		INSERT INTO movies (user_id, title, year, type, imdb_id, poster_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		movie.UserID,
		movie.Title,
		movie.Year,
		movie.Type,
		movie.ImdbID,
		movie.PosterURL,
		movie.CreatedAt,
		movie.UpdatedAt,
	).Scan(&movie.ID)

	if err != nil {
		return fmt.Errorf("failed to create movie: %w", err)
	}

	return nil
}

// GetMovie retrieves a single movie, scoped to its owner. A movie that
// exists but belongs to another user is reported as not found.
func (r *Repository) GetMovie(ctx context.Context, userID, id int64) (*model.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = $1 AND user_id = $2`

	movie, err := scanMovie(r.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMovieNotFound
		}
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}

	return movie, nil
}

// ListMovies retrieves all movies owned by userID.
func (r *Repository) ListMovies(ctx context.Context, userID int64) ([]*model.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE user_id = $1 ORDER BY id`

	return r.queryMovies(ctx, query, userID)
}

// likeEscaper escapes LIKE metacharacters so a search term matches
// literally ("t_0" must not act as a one-character wildcard).
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchMovies retrieves movies owned by userID whose title or external id
// contains q, case-insensitively. q is matched as a literal substring.
func (r *Repository) SearchMovies(ctx context.Context, userID int64, q string) ([]*model.Movie, error) {
	query := `
		SELECT ` + movieColumns + `
		FROM movies
		WHERE user_id = $1
		  AND (title ILIKE '%' || $2 || '%' OR imdb_id ILIKE '%' || $2 || '%')
		ORDER BY id
	`

	return r.queryMovies(ctx, query, userID, likeEscaper.Replace(q))
}

// UpdateMovie applies a partial update to the row matching both id and
// owner, touching updated_at. Returns the number of rows updated; zero
// matching rows is not an error.
func (r *Repository) UpdateMovie(ctx context.Context, userID, id int64, update MovieUpdate) (int64, error) {
	query := `UPDATE movies SET updated_at = $1`
	args := []any{time.Now()}
	argIndex := 2

	set := func(column string, value *string) {
		if value == nil {
			return
		}
		query += fmt.Sprintf(", %s = $%d", column, argIndex)
		args = append(args, *value)
		argIndex++
	}
	set("title", update.Title)
	set("year", update.Year)
	set("type", update.Type)
	set("imdb_id", update.ImdbID)
	set("poster_url", update.PosterURL)

	query += fmt.Sprintf(" WHERE id = $%d AND user_id = $%d", argIndex, argIndex+1)
	args = append(args, id, userID)

	result, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update movie: %w", err)
	}

	return result.RowsAffected(), nil
}

// DeleteMovie removes the row matching both id and owner. Returns the
// number of rows deleted; zero matching rows is not an error.
func (r *Repository) DeleteMovie(ctx context.Context, userID, id int64) (int64, error) {
	query := `DELETE FROM movies WHERE id = $1 AND user_id = $2`

	result, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete movie: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) queryMovies(ctx context.Context, query string, args ...any) ([]*model.Movie, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}
	defer rows.Close()

	movies := make([]*model.Movie, 0)
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating movies: %w", err)
	}

	return movies, nil
}

// scanMovie scans a single row into a Movie model.
func scanMovie(row pgx.Row) (*model.Movie, error) {
	var movie model.Movie
	err := row.Scan(
		&movie.ID,
		&movie.UserID,
		&movie.Title,
		&movie.Year,
		&movie.Type,
		&movie.ImdbID,
		&movie.PosterURL,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)
	return &movie, err
}
