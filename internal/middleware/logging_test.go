package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"
)

func captureLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewJSONHandler(buf, nil)), buf
}

func logLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	line := map[string]any{}
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("parse log line %q: %v", buf.String(), err)
	}
	return line
}

func TestLoggerRecordsRequest(t *testing.T) {
	logger, buf := captureLogger()
	handler := Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":1}`))
	}))

	req := httptest.NewRequest(http.MethodPost, "/movies", nil)
	req.RemoteAddr = "203.0.113.9:4711"
	handler.ServeHTTP(httptest.NewRecorder(), req)

	line := logLine(t, buf)
	if line["method"] != "POST" || line["path"] != "/movies" {
		t.Errorf("method/path = %v/%v", line["method"], line["path"])
	}
	if line["status"] != float64(http.StatusCreated) {
		t.Errorf("status = %v, want 201", line["status"])
	}
	if line["bytes"] != float64(8) {
		t.Errorf("bytes = %v, want 8", line["bytes"])
	}
	if line["ip"] != "203.0.113.9" {
		t.Errorf("ip = %v", line["ip"])
	}
	if line["level"] != "INFO" {
		t.Errorf("level = %v, want INFO", line["level"])
	}
}

func TestLoggerLevelledByStatus(t *testing.T) {
	cases := []struct {
		status int
		level  string
	}{
		{http.StatusNotFound, "WARN"},
		{http.StatusInternalServerError, "ERROR"},
	}
	for _, tc := range cases {
		logger, buf := captureLogger()
		handler := Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		if line := logLine(t, buf); line["level"] != tc.level {
			t.Errorf("status %d logged at %v, want %s", tc.status, line["level"], tc.level)
		}
	}
}

func TestLoggerDefaultsImplicitOK(t *testing.T) {
	logger, buf := captureLogger()
	handler := Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Handler never writes; net/http would send 200.
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	if line := logLine(t, buf); line["status"] != float64(http.StatusOK) {
		t.Errorf("status = %v, want 200", line["status"])
	}
}
