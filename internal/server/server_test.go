package server

import (
	"io"
	"log/slog"
	"net"
	"net/http"
	"syscall"
	"testing"
	"time"
)

func TestRunDrainsOnSignal(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := New(http.NewServeMux(), 0, time.Second, time.Second, time.Second, logger)
	srv.http.Addr = "127.0.0.1:0"

	done := make(chan error, 1)
	go func() { done <- srv.Run() }()

	// Give the listener a moment to come up before signalling.
	time.Sleep(100 * time.Millisecond)
	if err := syscall.Kill(syscall.Getpid(), syscall.SIGTERM); err != nil {
		t.Fatalf("send SIGTERM: %v", err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v, want nil after clean drain", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Run() did not return after SIGTERM")
	}
}

func TestRunReportsListenFailure(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	// Occupy a port so the server's bind fails.
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer taken.Close()

	srv := New(http.NewServeMux(), 0, time.Second, time.Second, time.Second, logger)
	srv.http.Addr = taken.Addr().String()

	done := make(chan error, 1)
	go func() { done <- srv.Run() }()

	select {
	case err := <-done:
		if err == nil {
			t.Error("Run() = nil, want listen error")
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Run() did not return on listen failure")
	}
}
