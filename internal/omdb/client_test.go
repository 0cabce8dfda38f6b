package omdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearchByKeyword(t *testing.T) {
	const payload = `{"Search":[{"Title":"Alien","Year":"1979","imdbID":"tt0078748"}],"totalResults":"1","Response":"True"}`

	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"apikey": r.URL.Query().Get("apikey"),
			"s":      r.URL.Query().Get("s"),
			"type":   r.URL.Query().Get("type"),
			"y":      r.URL.Query().Get("y"),
			"page":   r.URL.Query().Get("page"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	result, err := client.SearchByKeyword(context.Background(), "alien", "movie", "1979", 2)
	if err != nil {
		t.Fatalf("SearchByKeyword() error = %v", err)
	}

	// Relayed verbatim, byte for byte.
	if string(result) != payload {
		t.Errorf("result = %s, want provider payload untouched", result)
	}

	want := map[string]string{"apikey": "test-key", "s": "alien", "type": "movie", "y": "1979", "page": "2"}
	for k, v := range want {
		if gotQuery[k] != v {
			t.Errorf("query %s = %q, want %q", k, gotQuery[k], v)
		}
	}
}

func TestSearchByKeywordOmitsEmptyOptionals(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Has("type") || r.URL.Query().Has("y") {
			t.Error("empty optional parameters should not be forwarded")
		}
		_, _ = w.Write([]byte(`{"Response":"True"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	if _, err := client.SearchByKeyword(context.Background(), "alien", "", "", 1); err != nil {
		t.Fatalf("SearchByKeyword() error = %v", err)
	}
}

func TestSearchByTitle(t *testing.T) {
	const payload = `{"Title":"Blade Runner","Year":"1982","Response":"True"}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("t"); got != "blade runner" {
			t.Errorf("t = %q", got)
		}
		if got := r.URL.Query().Get("y"); got != "1982" {
			t.Errorf("y = %q", got)
		}
		_, _ = w.Write([]byte(payload))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	result, err := client.SearchByTitle(context.Background(), "blade runner", "1982")
	if err != nil {
		t.Fatalf("SearchByTitle() error = %v", err)
	}
	if string(result) != payload {
		t.Errorf("result = %s", result)
	}
}

func TestProviderErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	_, err := client.SearchByTitle(context.Background(), "alien", "")
	if !errors.Is(err, ErrUpstreamFailure) {
		t.Fatalf("error = %v, want ErrUpstreamFailure", err)
	}
}

func TestProviderUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // immediately, so the address refuses connections

	client := NewClient(server.URL, "test-key")
	_, err := client.SearchByKeyword(context.Background(), "alien", "", "", 1)
	if !errors.Is(err, ErrUpstreamFailure) {
		t.Fatalf("error = %v, want ErrUpstreamFailure", err)
	}
}
