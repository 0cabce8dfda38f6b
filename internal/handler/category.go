package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/movieshelf/movieshelf/internal/handler/dto"
	"github.com/movieshelf/movieshelf/internal/service"
	"github.com/movieshelf/movieshelf/internal/validation"
)

// CategoryHandler handles the global category catalog. Categories are
// shared across users, not owner-scoped.
type CategoryHandler struct {
	svc      *service.CategoryService
	validate *validation.Validator
	logger   *slog.Logger
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(svc *service.CategoryService, validate *validation.Validator, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		svc:      svc,
		validate: validate,
		logger:   logger,
	}
}

// List returns every category.
//
//	@Summary	List categories
//	@Tags		categories
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		model.Category
//	@Failure	401	{object}	dto.ErrorResponse
//	@Router		/categories [get]
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.List(r.Context())
	if err != nil {
		h.logger.Error("list categories failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, categories)
}

// Create adds a category.
//
//	@Summary	Create a category
//	@Tags		categories
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.CategoryRequest	true	"Category payload"
//	@Success	201		{object}	model.Category
//	@Failure	400		{object}	dto.ErrorResponse
//	@Router		/categories [post]
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeCategory(w, r)
	if !ok {
		return
	}

	category, err := h.svc.Create(r.Context(), req.Name)
	if err != nil {
		h.logger.Error("create category failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.logger.Info("category created",
		slog.Int64("category_id", category.ID),
		slog.String("name", category.Name),
	)
	writeJSON(w, http.StatusCreated, category)
}

// Get returns one category by id.
//
//	@Summary	Get a category
//	@Tags		categories
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"Category id"
//	@Success	200	{object}	model.Category
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/categories/{id} [get]
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	category, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, category)
}

// Update renames a category.
//
//	@Summary	Update a category
//	@Tags		categories
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int					true	"Category id"
//	@Param		request	body		dto.CategoryRequest	true	"Category payload"
//	@Success	200		{object}	model.Category
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/categories/{id} [put]
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	req, ok := h.decodeCategory(w, r)
	if !ok {
		return
	}

	category, err := h.svc.Update(r.Context(), id, req.Name)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, category)
}

// Delete removes a category.
//
//	@Summary	Delete a category
//	@Tags		categories
//	@Security	BearerAuth
//	@Param		id	path	int	true	"Category id"
//	@Success	204
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/categories/{id} [delete]
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CategoryHandler) decodeCategory(w http.ResponseWriter, r *http.Request) (dto.CategoryRequest, bool) {
	var req dto.CategoryRequest
	if !decodeJSON(w, r, &req) {
		return req, false
	}
	if err := h.validate.Validate(req); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			writeValidationError(w, verr)
			return req, false
		}
		h.logger.Error("validation error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return req, false
	}
	return req, true
}

func (h *CategoryHandler) handleServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrCategoryNotFound) {
		writeError(w, http.StatusNotFound, "Category not found")
		return
	}
	h.logger.Error("category operation failed", slog.String("error", err.Error()))
	writeError(w, http.StatusInternalServerError, "Internal server error")
}
