package handler

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/movieshelf/movieshelf/internal/service"
	"github.com/movieshelf/movieshelf/internal/testutil"
	"github.com/movieshelf/movieshelf/internal/validation"
)

func categoryRouter() http.Handler {
	svc := service.NewCategoryService(testutil.NewMemStore())
	h := NewCategoryHandler(svc, validation.New(), discardLogger())

	r := chi.NewRouter()
	r.Get("/categories", h.List)
	r.Post("/categories", h.Create)
	r.Get("/categories/{id}", h.Get)
	r.Put("/categories/{id}", h.Update)
	r.Delete("/categories/{id}", h.Delete)
	return r
}

func TestCategoryCRUD(t *testing.T) {
	router := categoryRouter()

	rec := do(t, router, http.MethodPost, "/categories", `{"name":"Thriller"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body.String())
	}
	created := decodeBody(t, rec)
	if created["name"] != "Thriller" {
		t.Errorf("name = %v", created["name"])
	}

	rec = do(t, router, http.MethodGet, "/categories", "")
	var list []map[string]any
	mustUnmarshal(t, rec, &list)
	if len(list) != 1 {
		t.Fatalf("list returned %d categories, want 1", len(list))
	}

	rec = do(t, router, http.MethodPut, "/categories/1", `{"name":"Noir"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["name"] != "Noir" {
		t.Errorf("updated name = %v", body["name"])
	}

	rec = do(t, router, http.MethodGet, "/categories/1", "")
	if body := decodeBody(t, rec); body["name"] != "Noir" {
		t.Errorf("get after update name = %v", body["name"])
	}

	rec = do(t, router, http.MethodDelete, "/categories/1", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d, want 204", rec.Code)
	}
}

func TestCategoryMiss(t *testing.T) {
	router := categoryRouter()

	tests := []struct {
		name   string
		method string
		body   string
	}{
		{name: "get", method: http.MethodGet},
		{name: "update", method: http.MethodPut, body: `{"name":"Noir"}`},
		{name: "delete", method: http.MethodDelete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, tt.method, "/categories/42", tt.body)
			if rec.Code != http.StatusNotFound {
				t.Fatalf("status = %d, want 404", rec.Code)
			}
			if body := decodeBody(t, rec); body["error"] != "Category not found" {
				t.Errorf("error = %v, want %q", body["error"], "Category not found")
			}
		})
	}
}

func TestCategoryValidation(t *testing.T) {
	router := categoryRouter()

	rec := do(t, router, http.MethodPost, "/categories", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "Validation failed" {
		t.Errorf("error = %v", body["error"])
	}

	rec = do(t, router, http.MethodPost, "/categories", `not json`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("malformed body status = %d, want 400", rec.Code)
	}
}
