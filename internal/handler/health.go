package handler

import (
	"context"
	"net/http"
	"time"
)

// Pinger checks reachability of a backing store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler manages health probe endpoints.
type HealthHandler struct {
	db    Pinger
	start time.Time
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{
		db:    db,
		start: time.Now(),
	}
}

// DBStatus describes the database portion of a health probe.
type DBStatus struct {
	Status         string `json:"status"`
	ResponseTimeMs int64  `json:"responseTimeMs"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status        string   `json:"status"`
	UptimeSeconds int64    `json:"uptimeSeconds"`
	DB            DBStatus `json:"db"`
}

// Health is the combined process + database liveness probe.
// Returns 200 with status UP when the database is reachable,
// 500 with status DEGRADED otherwise.
//
// GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db := h.checkDB(r.Context())

	status := "UP"
	statusCode := http.StatusOK
	if db.Status != "UP" {
		status = "DEGRADED"
		statusCode = http.StatusInternalServerError
	}

	writeJSON(w, statusCode, HealthResponse{
		Status:        status,
		UptimeSeconds: int64(time.Since(h.start).Seconds()),
		DB:            db,
	})
}

// HealthDB probes only the database.
//
// GET /health/db
func (h *HealthHandler) HealthDB(w http.ResponseWriter, r *http.Request) {
	db := h.checkDB(r.Context())

	statusCode := http.StatusOK
	if db.Status != "UP" {
		statusCode = http.StatusInternalServerError
	}
	writeJSON(w, statusCode, db)
}

func (h *HealthHandler) checkDB(ctx context.Context) DBStatus {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	start := time.Now()
	status := "UP"
	if h.db == nil {
		status = "DOWN"
	} else if err := h.db.Ping(ctx); err != nil {
		status = "DOWN"
	}

	return DBStatus{
		Status:         status,
		ResponseTimeMs: time.Since(start).Milliseconds(),
	}
}
