package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/movieshelf/movieshelf/internal/auth"
	"github.com/movieshelf/movieshelf/internal/handler/dto"
	"github.com/movieshelf/movieshelf/internal/service"
	"github.com/movieshelf/movieshelf/internal/validation"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	svc      *service.AuthService
	validate *validation.Validator
	logger   *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService, validate *validation.Validator, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		svc:      svc,
		validate: validate,
		logger:   logger,
	}
}

// Register creates a user and issues a token right away.
//
//	@Summary	Register a new user
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.RegisterRequest	true	"Registration payload"
//	@Success	201		{object}	service.AuthResult
//	@Failure	400		{object}	dto.ErrorResponse
//	@Router		/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !h.validateRequest(w, req) {
		return
	}

	result, err := h.svc.Register(r.Context(), service.RegisterInput{
		Name:     req.Name,
		Login:    req.Login,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrLoginTaken) {
			writeError(w, http.StatusBadRequest, "Login already in use")
			return
		}
		h.logger.Error("register failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.logger.Info("user registered",
		slog.Int64("user_id", result.User.ID),
		slog.String("login", result.User.Login),
	)
	writeJSON(w, http.StatusCreated, result)
}

// Login authenticates a user and issues a token.
//
//	@Summary	Log in
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.LoginRequest	true	"Credentials"
//	@Success	200		{object}	service.AuthResult
//	@Failure	400		{object}	dto.ErrorResponse
//	@Router		/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !h.validateRequest(w, req) {
		return
	}

	result, err := h.svc.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusBadRequest, "Invalid credentials")
			return
		}
		h.logger.Error("login failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.logger.Info("user logged in",
		slog.Int64("user_id", result.User.ID),
		slog.String("login", result.User.Login),
	)
	writeJSON(w, http.StatusOK, result)
}

// Logout acknowledges a logout. Tokens are stateless, so the client
// discards the token; nothing changes server-side.
//
//	@Summary	Log out
//	@Tags		auth
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.MessageResponse
//	@Failure	401	{object}	dto.ErrorResponse
//	@Router		/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID := auth.MustUserIDFromContext(r.Context())

	h.logger.Info("user logged out", slog.Int64("user_id", userID))
	writeJSON(w, http.StatusOK, dto.MessageResponse{
		Message: fmt.Sprintf("User %d logged out (token discard)", userID),
	})
}

func (h *AuthHandler) validateRequest(w http.ResponseWriter, req any) bool {
	if err := h.validate.Validate(req); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			writeValidationError(w, verr)
		} else {
			h.logger.Error("validation error", slog.String("error", err.Error()))
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return false
	}
	return true
}
