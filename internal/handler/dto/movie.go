package dto

// CreateMovieRequest represents the request body for POST /movies.
// Title is the only required field.
type CreateMovieRequest struct {
	Title     string  `json:"title" validate:"required"`
	Year      *string `json:"year,omitempty"`
	Type      *string `json:"type,omitempty"`
	ImdbID    *string `json:"imdbID,omitempty"`
	PosterURL *string `json:"posterUrl,omitempty"`
}

// UpdateMovieRequest represents the request body for PUT /movies/{id}.
// Absent fields leave prior values untouched (partial update).
type UpdateMovieRequest struct {
	Title     *string `json:"title,omitempty"`
	Year      *string `json:"year,omitempty"`
	Type      *string `json:"type,omitempty"`
	ImdbID    *string `json:"imdbID,omitempty"`
	PosterURL *string `json:"posterUrl,omitempty"`
}
