package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(ctx context.Context) error { return p.err }

func TestHealthUp(t *testing.T) {
	h := NewHealthHandler(stubPinger{})

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["status"] != "UP" {
		t.Errorf("status = %v, want UP", body["status"])
	}
	db, _ := body["db"].(map[string]any)
	if db["status"] != "UP" {
		t.Errorf("db.status = %v, want UP", db["status"])
	}
	if _, ok := db["responseTimeMs"]; !ok {
		t.Error("db.responseTimeMs missing")
	}
	if _, ok := body["uptimeSeconds"]; !ok {
		t.Error("uptimeSeconds missing")
	}
}

func TestHealthDegraded(t *testing.T) {
	h := NewHealthHandler(stubPinger{err: errors.New("connection refused")})

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["status"] != "DEGRADED" {
		t.Errorf("status = %v, want DEGRADED", body["status"])
	}
	db, _ := body["db"].(map[string]any)
	if db["status"] != "DOWN" {
		t.Errorf("db.status = %v, want DOWN", db["status"])
	}
}

func TestHealthDB(t *testing.T) {
	h := NewHealthHandler(stubPinger{})

	rec := httptest.NewRecorder()
	h.HealthDB(rec, httptest.NewRequest(http.MethodGet, "/health/db", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body := decodeBody(t, rec); body["status"] != "UP" {
		t.Errorf("status = %v, want UP", body["status"])
	}
}

func TestHealthDBDown(t *testing.T) {
	h := NewHealthHandler(stubPinger{err: errors.New("no route to host")})

	rec := httptest.NewRecorder()
	h.HealthDB(rec, httptest.NewRequest(http.MethodGet, "/health/db", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if body := decodeBody(t, rec); body["status"] != "DOWN" {
		t.Errorf("status = %v, want DOWN", body["status"])
	}
}
