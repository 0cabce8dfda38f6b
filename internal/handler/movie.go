package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/movieshelf/movieshelf/internal/auth"
	"github.com/movieshelf/movieshelf/internal/handler/dto"
	"github.com/movieshelf/movieshelf/internal/model"
	"github.com/movieshelf/movieshelf/internal/repository"
	"github.com/movieshelf/movieshelf/internal/service"
	"github.com/movieshelf/movieshelf/internal/validation"
)

// MovieHandler handles movie collection endpoints. All routes are
// bearer-protected and scoped to the authenticated user.
type MovieHandler struct {
	svc      *service.MovieService
	validate *validation.Validator
	logger   *slog.Logger
}

// NewMovieHandler creates a new MovieHandler.
func NewMovieHandler(svc *service.MovieService, validate *validation.Validator, logger *slog.Logger) *MovieHandler {
	return &MovieHandler{
		svc:      svc,
		validate: validate,
		logger:   logger,
	}
}

// List returns the user's movies. With ?q= it searches title and
// IMDb id instead; a blank q behaves like a plain list.
//
//	@Summary	List or search the user's movies
//	@Tags		movies
//	@Produce	json
//	@Security	BearerAuth
//	@Param		q	query		string	false	"Search term (title or IMDb id)"
//	@Success	200	{array}		model.Movie
//	@Failure	401	{object}	dto.ErrorResponse
//	@Router		/movies [get]
func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := auth.MustUserIDFromContext(r.Context())

	var (
		movies []*model.Movie
		err    error
	)
	if q, ok := r.URL.Query()["q"]; ok && len(q) > 0 {
		movies, err = h.svc.Search(r.Context(), userID, q[0])
	} else {
		movies, err = h.svc.List(r.Context(), userID)
	}
	if err != nil {
		h.logger.Error("list movies failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, movies)
}

// Create adds a movie to the user's collection.
//
//	@Summary	Add a movie
//	@Tags		movies
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.CreateMovieRequest	true	"Movie payload"
//	@Success	201		{object}	model.Movie
//	@Failure	400		{object}	dto.ErrorResponse
//	@Router		/movies [post]
func (h *MovieHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := auth.MustUserIDFromContext(r.Context())

	var req dto.CreateMovieRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validate.Validate(req); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			writeValidationError(w, verr)
			return
		}
		h.logger.Error("validation error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	movie, err := h.svc.Create(r.Context(), userID, service.CreateMovieInput{
		Title:     req.Title,
		Year:      req.Year,
		Type:      req.Type,
		ImdbID:    req.ImdbID,
		PosterURL: req.PosterURL,
	})
	if err != nil {
		h.logger.Error("create movie failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.logger.Info("movie created",
		slog.Int64("movie_id", movie.ID),
		slog.Int64("user_id", userID),
	)
	writeJSON(w, http.StatusCreated, movie)
}

// Get returns one movie by id.
//
//	@Summary	Get a movie
//	@Tags		movies
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"Movie id"
//	@Success	200	{object}	model.Movie
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/movies/{id} [get]
func (h *MovieHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := auth.MustUserIDFromContext(r.Context())

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	movie, err := h.svc.GetByID(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			writeError(w, http.StatusNotFound, "Movie not found")
			return
		}
		h.logger.Error("get movie failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, movie)
}

// Update applies a partial update. Updating a movie the user does not
// own, or one that does not exist, is a silent no-op.
//
//	@Summary	Update a movie
//	@Tags		movies
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int						true	"Movie id"
//	@Param		request	body		dto.UpdateMovieRequest	true	"Fields to change"
//	@Success	200		{object}	dto.MessageResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Router		/movies/{id} [put]
func (h *MovieHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := auth.MustUserIDFromContext(r.Context())

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateMovieRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.svc.Update(r.Context(), userID, id, repository.MovieUpdate{
		Title:     req.Title,
		Year:      req.Year,
		Type:      req.Type,
		ImdbID:    req.ImdbID,
		PosterURL: req.PosterURL,
	})
	if err != nil {
		h.logger.Error("update movie failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Movie updated"})
}

// Delete removes a movie. Deleting a movie the user does not own, or
// one that does not exist, is a silent no-op.
//
//	@Summary	Delete a movie
//	@Tags		movies
//	@Security	BearerAuth
//	@Param		id	path	int	true	"Movie id"
//	@Success	204
//	@Failure	400	{object}	dto.ErrorResponse
//	@Router		/movies/{id} [delete]
func (h *MovieHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := auth.MustUserIDFromContext(r.Context())

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), userID, id); err != nil {
		h.logger.Error("delete movie failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseID reads the {id} route parameter.
// Writes a 400 and returns false when it is not a number.
func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}
