package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/movieshelf/movieshelf/internal/auth"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTokenManager(t *testing.T) *auth.TokenManager {
	t.Helper()
	tm, err := auth.NewTokenManager("test-secret-for-middleware", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenManager() error = %v", err)
	}
	return tm
}

func TestAuthMissingToken(t *testing.T) {
	tm := newTokenManager(t)
	handler := Auth(discardLogger(), tm)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not be called")
	}))

	tests := []struct {
		name   string
		header string
	}{
		{name: "no header", header: ""},
		{name: "wrong scheme", header: "Basic abc123"},
		{name: "bare bearer", header: "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/movies", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
			}

			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON body: %v", err)
			}
			if body["error"] != "Token not provided" {
				t.Errorf("error = %q, want %q", body["error"], "Token not provided")
			}
		})
	}
}

func TestAuthInvalidToken(t *testing.T) {
	tm := newTokenManager(t)
	handler := Auth(discardLogger(), tm)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not be called")
	}))

	otherTM, err := auth.NewTokenManager("a-different-secret-entirely", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenManager() error = %v", err)
	}
	foreign, err := otherTM.Issue(42)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	for _, token := range []string{"not-a-jwt", foreign} {
		req := httptest.NewRequest(http.MethodGet, "/movies", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusForbidden {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusForbidden)
		}

		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON body: %v", err)
		}
		if body["error"] != "Invalid token" {
			t.Errorf("error = %q, want %q", body["error"], "Invalid token")
		}
	}
}

func TestAuthValidTokenInjectsUserID(t *testing.T) {
	tm := newTokenManager(t)
	token, err := tm.Issue(7)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	var gotUserID int64
	called := false
	handler := Auth(discardLogger(), tm)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		id, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			t.Error("user id missing from context")
		}
		gotUserID = id
	}))

	req := httptest.NewRequest(http.MethodGet, "/movies", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if !called {
		t.Fatal("next handler was not called")
	}
	if gotUserID != 7 {
		t.Errorf("user id = %d, want 7", gotUserID)
	}
}
