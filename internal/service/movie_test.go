package service

import (
	"context"
	"errors"
	"testing"

	"github.com/movieshelf/movieshelf/internal/repository"
	"github.com/movieshelf/movieshelf/internal/testutil"
)

func strPtr(s string) *string { return &s }

func TestMovieCreateAndGetRoundTrip(t *testing.T) {
	svc := NewMovieService(testutil.NewMemStore())
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, CreateMovieInput{
		Title:  "Blade Runner",
		Year:   strPtr("1982"),
		ImdbID: strPtr("tt0083658"),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := svc.GetByID(ctx, 1, created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}

	if got.Title != "Blade Runner" {
		t.Errorf("Title = %q", got.Title)
	}
	if got.Year == nil || *got.Year != "1982" {
		t.Errorf("Year = %v, want 1982", got.Year)
	}
	if got.ImdbID == nil || *got.ImdbID != "tt0083658" {
		t.Errorf("ImdbID = %v, want tt0083658", got.ImdbID)
	}
	// Omitted optional fields stay null, not defaulted.
	if got.Type != nil {
		t.Errorf("Type = %v, want nil", got.Type)
	}
	if got.PosterURL != nil {
		t.Errorf("PosterURL = %v, want nil", got.PosterURL)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Error("timestamps should be set on create")
	}
}

func TestMovieOwnerIsolation(t *testing.T) {
	svc := NewMovieService(testutil.NewMemStore())
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, CreateMovieInput{Title: "Heat", ImdbID: strPtr("tt0113277")})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Invisible to user 2 through every read path.
	if _, err := svc.GetByID(ctx, 2, created.ID); !errors.Is(err, ErrMovieNotFound) {
		t.Errorf("GetByID as other user error = %v, want ErrMovieNotFound", err)
	}

	listed, err := svc.List(ctx, 2)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(listed) != 0 {
		t.Errorf("List as other user returned %d movies, want 0", len(listed))
	}

	found, err := svc.Search(ctx, 2, "Heat")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(found) != 0 {
		t.Errorf("Search as other user returned %d movies, want 0", len(found))
	}
}

func TestMovieSearchBlankQueryEqualsList(t *testing.T) {
	svc := NewMovieService(testutil.NewMemStore())
	ctx := context.Background()

	for _, title := range []string{"Alien", "Aliens", "Blade Runner"} {
		if _, err := svc.Create(ctx, 1, CreateMovieInput{Title: title}); err != nil {
			t.Fatalf("Create(%q) error = %v", title, err)
		}
	}

	for _, q := range []string{"", "   ", "\t"} {
		found, err := svc.Search(ctx, 1, q)
		if err != nil {
			t.Fatalf("Search(%q) error = %v", q, err)
		}
		if len(found) != 3 {
			t.Errorf("Search(%q) returned %d movies, want 3 (same as list)", q, len(found))
		}
	}
}

func TestMovieSearchMatchesTitleOrExternalID(t *testing.T) {
	svc := NewMovieService(testutil.NewMemStore())
	ctx := context.Background()

	if _, err := svc.Create(ctx, 1, CreateMovieInput{Title: "Alien", ImdbID: strPtr("tt0078748")}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := svc.Create(ctx, 1, CreateMovieInput{Title: "Heat"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	tests := []struct {
		query string
		want  int
	}{
		{"alien", 1},  // case-insensitive title match
		{"ALIEN", 1},
		{"tt0078", 1}, // external id match
		{"ea", 1},     // substring of Heat
		{"zzz", 0},
	}

	for _, tt := range tests {
		found, err := svc.Search(ctx, 1, tt.query)
		if err != nil {
			t.Fatalf("Search(%q) error = %v", tt.query, err)
		}
		if len(found) != tt.want {
			t.Errorf("Search(%q) returned %d movies, want %d", tt.query, len(found), tt.want)
		}
	}
}

func TestMovieUpdatePartial(t *testing.T) {
	store := testutil.NewMemStore()
	svc := NewMovieService(store)
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, CreateMovieInput{
		Title: "Blade Runner",
		Year:  strPtr("1982"),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	err = svc.Update(ctx, 1, created.ID, repository.MovieUpdate{Title: strPtr("Blade Runner (Final Cut)")})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := svc.GetByID(ctx, 1, created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Title != "Blade Runner (Final Cut)" {
		t.Errorf("Title = %q", got.Title)
	}
	// Fields absent from the payload keep their prior values.
	if got.Year == nil || *got.Year != "1982" {
		t.Errorf("Year = %v, want 1982 preserved", got.Year)
	}
}

// Updating a movie not owned by the caller is a silent no-op that leaves
// the row untouched.
func TestMovieUpdateNotOwnedIsSilentNoOp(t *testing.T) {
	svc := NewMovieService(testutil.NewMemStore())
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, CreateMovieInput{Title: "Heat"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := svc.Update(ctx, 2, created.ID, repository.MovieUpdate{Title: strPtr("Hijacked")}); err != nil {
		t.Fatalf("Update() as other user error = %v, want nil (silent no-op)", err)
	}

	got, err := svc.GetByID(ctx, 1, created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Title != "Heat" {
		t.Errorf("Title = %q, underlying row should be unchanged", got.Title)
	}
}

func TestMovieDeleteNotOwnedIsSilentNoOp(t *testing.T) {
	svc := NewMovieService(testutil.NewMemStore())
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, CreateMovieInput{Title: "Heat"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := svc.Delete(ctx, 2, created.ID); err != nil {
		t.Fatalf("Delete() as other user error = %v, want nil (silent no-op)", err)
	}

	if _, err := svc.GetByID(ctx, 1, created.ID); err != nil {
		t.Errorf("movie should still exist for its owner, got %v", err)
	}

	// Deleting a nonexistent id is equally silent.
	if err := svc.Delete(ctx, 1, 999); err != nil {
		t.Errorf("Delete(999) error = %v, want nil", err)
	}
}
