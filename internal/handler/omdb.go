package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/movieshelf/movieshelf/internal/handler/dto"
	"github.com/movieshelf/movieshelf/internal/omdb"
	"github.com/movieshelf/movieshelf/internal/validation"
)

// OmdbHandler proxies search requests to the OMDb API. Responses are
// relayed verbatim so clients see OMDb's own shape.
type OmdbHandler struct {
	client   *omdb.Client
	validate *validation.Validator
	logger   *slog.Logger
}

// NewOmdbHandler creates a new OmdbHandler.
func NewOmdbHandler(client *omdb.Client, validate *validation.Validator, logger *slog.Logger) *OmdbHandler {
	return &OmdbHandler{
		client:   client,
		validate: validate,
		logger:   logger,
	}
}

// Search proxies a keyword search.
//
//	@Summary	Search OMDb by keyword
//	@Tags		omdb
//	@Produce	json
//	@Security	BearerAuth
//	@Param		s		query	string	true	"Search keyword"
//	@Param		type	query	string	false	"movie, series or episode"
//	@Param		y		query	string	false	"Release year (4 digits)"
//	@Param		page	query	int		false	"Page, 1-100"
//	@Success	200		{object}	object
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	500		{object}	dto.ErrorResponse
//	@Router		/movies/omdb [get]
func (h *OmdbHandler) Search(w http.ResponseWriter, r *http.Request) {
	query, err := dto.ParseSearchOmdbQuery(r.URL.Query())
	if err != nil {
		h.writeQueryError(w, err)
		return
	}
	if !h.validateQuery(w, query) {
		return
	}

	body, err := h.client.SearchByKeyword(r.Context(), query.S, query.Type, query.Y, query.Page)
	if err != nil {
		h.handleUpstreamError(w, err)
		return
	}

	writeRaw(w, body)
}

// SearchTitle proxies an exact-title lookup.
//
//	@Summary	Look up OMDb by title
//	@Tags		omdb
//	@Produce	json
//	@Security	BearerAuth
//	@Param		t	query	string	true	"Exact title"
//	@Param		y	query	string	false	"Release year (4 digits)"
//	@Success	200	{object}	object
//	@Failure	400	{object}	dto.ErrorResponse
//	@Failure	500	{object}	dto.ErrorResponse
//	@Router		/movies/omdb-title [get]
func (h *OmdbHandler) SearchTitle(w http.ResponseWriter, r *http.Request) {
	query := dto.ParseSearchOmdbTitleQuery(r.URL.Query())
	if !h.validateQuery(w, query) {
		return
	}

	body, err := h.client.SearchByTitle(r.Context(), query.T, query.Y)
	if err != nil {
		h.handleUpstreamError(w, err)
		return
	}

	writeRaw(w, body)
}

func (h *OmdbHandler) validateQuery(w http.ResponseWriter, query any) bool {
	if err := h.validate.Validate(query); err != nil {
		h.writeQueryError(w, err)
		return false
	}
	return true
}

func (h *OmdbHandler) writeQueryError(w http.ResponseWriter, err error) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		writeValidationError(w, verr)
		return
	}
	h.logger.Error("query validation error", slog.String("error", err.Error()))
	writeError(w, http.StatusInternalServerError, "Internal server error")
}

func (h *OmdbHandler) handleUpstreamError(w http.ResponseWriter, err error) {
	if errors.Is(err, omdb.ErrUpstreamFailure) {
		h.logger.Warn("omdb request failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "External fetch failed")
		return
	}
	h.logger.Error("omdb request failed", slog.String("error", err.Error()))
	writeError(w, http.StatusInternalServerError, "Internal server error")
}

// writeRaw relays an upstream JSON body untouched.
func writeRaw(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
