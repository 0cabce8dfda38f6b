package model

import "time"

// Movie represents a tracked movie owned by a single user.
// All optional fields are pointers so that omitted values stay null
// rather than being defaulted to empty strings.
type Movie struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Title     string    `json:"title"`
	Year      *string   `json:"year,omitempty"`
	Type      *string   `json:"type,omitempty"`
	ImdbID    *string   `json:"imdbID,omitempty"`
	PosterURL *string   `json:"posterUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
