// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/movieshelf/movieshelf/internal/auth"
	"github.com/movieshelf/movieshelf/internal/model"
	"github.com/movieshelf/movieshelf/internal/repository"
)

// Service errors.
var (
	ErrLoginTaken = errors.New("login already in use")
	// ErrInvalidCredentials is returned both for an unknown login and for
	// a wrong password, so callers cannot tell which check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserStore is the storage contract the auth service depends on.
// *repository.Repository satisfies it.
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
}

// AuthResult carries the issued token and the public profile fields.
type AuthResult struct {
	Token string           `json:"token"`
	User  model.PublicUser `json:"user"`
}

// AuthService handles registration and authentication.
type AuthService struct {
	store  UserStore
	tokens *auth.TokenManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(store UserStore, tokens *auth.TokenManager) *AuthService {
	return &AuthService{
		store:  store,
		tokens: tokens,
	}
}

// RegisterInput defines input for registering a user.
type RegisterInput struct {
	Name     *string
	Login    string
	Password string
}

// Register creates a user with a salted slow hash of the password and
// immediately issues a token, so registration doubles as login.
// Returns ErrLoginTaken when the login already exists.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if _, err := s.store.GetUserByLogin(ctx, input.Login); err == nil {
		return nil, ErrLoginTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("lookup login: %w", err)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &model.User{
		Name:         input.Name,
		Login:        input.Login,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		// Lost the race against a concurrent registration with the same login.
		if errors.Is(err, repository.ErrLoginExists) {
			return nil, ErrLoginTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return s.issueFor(user)
}

// Login verifies credentials and issues a time-boxed bearer token.
// Unknown login and wrong password yield the identical error.
func (s *AuthService) Login(ctx context.Context, login, password string) (*AuthResult, error) {
	user, err := s.store.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup login: %w", err)
	}

	match, err := auth.VerifyPassword(password, user.PasswordHash)
	if err != nil || !match {
		return nil, ErrInvalidCredentials
	}

	return s.issueFor(user)
}

func (s *AuthService) issueFor(user *model.User) (*AuthResult, error) {
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &AuthResult{
		Token: token,
		User:  user.Public(),
	}, nil
}
