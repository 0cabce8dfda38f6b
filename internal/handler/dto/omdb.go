package dto

import (
	"net/url"
	"strconv"

	"github.com/movieshelf/movieshelf/internal/validation"
)

// SearchOmdbQuery represents the query string of GET /movies/omdb.
// Page is coerced from its string form and bounded before any outbound
// call is made.
type SearchOmdbQuery struct {
	S    string `json:"s" validate:"required"`
	Type string `json:"type" validate:"omitempty,oneof=movie series episode"`
	Y    string `json:"y" validate:"omitempty,year4"`
	Page int    `json:"page" validate:"gte=1,lte=100"`
}

// SearchOmdbTitleQuery represents the query string of GET /movies/omdb-title.
type SearchOmdbTitleQuery struct {
	T string `json:"t" validate:"required"`
	Y string `json:"y" validate:"omitempty,year4"`
}

// ParseSearchOmdbQuery decodes query parameters into a SearchOmdbQuery,
// defaulting page to 1. A non-numeric page is reported as a field issue
// rather than a decode failure.
func ParseSearchOmdbQuery(values url.Values) (SearchOmdbQuery, error) {
	query := SearchOmdbQuery{
		S:    values.Get("s"),
		Type: values.Get("type"),
		Y:    values.Get("y"),
		Page: 1,
	}

	if raw := values.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return query, &validation.Error{Issues: []validation.Issue{
				{Path: "page", Message: "must be a number"},
			}}
		}
		query.Page = page
	}

	return query, nil
}

// ParseSearchOmdbTitleQuery decodes query parameters into a
// SearchOmdbTitleQuery.
func ParseSearchOmdbTitleQuery(values url.Values) SearchOmdbTitleQuery {
	return SearchOmdbTitleQuery{
		T: values.Get("t"),
		Y: values.Get("y"),
	}
}
