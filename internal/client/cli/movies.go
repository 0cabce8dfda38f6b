package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/movieshelf/movieshelf/internal/client/api"
	"github.com/movieshelf/movieshelf/internal/model"
)

func (a *App) list(ctx context.Context, args []string) {
	query := strings.Join(args, " ")
	movies, err := a.api.ListMovies(ctx, query)
	if err != nil {
		a.fail(err)
		return
	}
	a.printMovies(movies)
}

func (a *App) search(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: search <term>")
		return
	}
	a.list(ctx, args)
}

func (a *App) add(ctx context.Context) {
	title, err := prompt(a.reader, "Title", a.out)
	if err != nil {
		a.fail(err)
		return
	}
	year, _ := prompt(a.reader, "Year (optional)", a.out)
	mediaType, _ := prompt(a.reader, "Type (optional)", a.out)
	imdbID, _ := prompt(a.reader, "IMDb id (optional)", a.out)
	posterURL, _ := prompt(a.reader, "Poster URL (optional)", a.out)

	movie, err := a.api.CreateMovie(ctx, api.MovieInput{
		Title:     title,
		Year:      optional(year),
		Type:      optional(mediaType),
		ImdbID:    optional(imdbID),
		PosterURL: optional(posterURL),
	})
	if err != nil {
		a.fail(err)
		return
	}
	fmt.Fprintf(a.out, "Added #%d %s\n", movie.ID, movie.Title)
}

func (a *App) show(ctx context.Context, args []string) {
	id, ok := a.parseID(args, "show")
	if !ok {
		return
	}

	movie, err := a.api.GetMovie(ctx, id)
	if err != nil {
		a.fail(err)
		return
	}

	fmt.Fprintf(a.out, "#%d %s\n", movie.ID, movie.Title)
	printField(a.out, "Year", movie.Year)
	printField(a.out, "Type", movie.Type)
	printField(a.out, "IMDb", movie.ImdbID)
	printField(a.out, "Poster", movie.PosterURL)
	fmt.Fprintf(a.out, "  Added %s\n", movie.CreatedAt.Format("2006-01-02"))
}

func (a *App) update(ctx context.Context, args []string) {
	id, ok := a.parseID(args, "update")
	if !ok {
		return
	}

	fmt.Fprintln(a.out, "Leave a field blank to keep its current value.")
	title, _ := prompt(a.reader, "Title", a.out)
	year, _ := prompt(a.reader, "Year", a.out)
	mediaType, _ := prompt(a.reader, "Type", a.out)
	imdbID, _ := prompt(a.reader, "IMDb id", a.out)
	posterURL, _ := prompt(a.reader, "Poster URL", a.out)

	input := api.MovieInput{
		Title:     title,
		Year:      optional(year),
		Type:      optional(mediaType),
		ImdbID:    optional(imdbID),
		PosterURL: optional(posterURL),
	}

	if err := a.api.UpdateMovie(ctx, id, input); err != nil {
		a.fail(err)
		return
	}
	fmt.Fprintln(a.out, "Movie updated")
}

func (a *App) delete(ctx context.Context, args []string) {
	id, ok := a.parseID(args, "delete")
	if !ok {
		return
	}

	if err := a.api.DeleteMovie(ctx, id); err != nil {
		a.fail(err)
		return
	}
	fmt.Fprintln(a.out, "Movie deleted")
}

func (a *App) categories(ctx context.Context) {
	categories, err := a.api.ListCategories(ctx)
	if err != nil {
		a.fail(err)
		return
	}
	if len(categories) == 0 {
		fmt.Fprintln(a.out, "No categories")
		return
	}
	for _, c := range categories {
		fmt.Fprintf(a.out, "#%d %s\n", c.ID, c.Name)
	}
}

func (a *App) parseID(args []string, usage string) (int64, bool) {
	if len(args) == 0 {
		fmt.Fprintf(a.out, "Usage: %s <id>\n", usage)
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(a.out, "Invalid id %q\n", args[0])
		return 0, false
	}
	return id, true
}

func (a *App) printMovies(movies []model.Movie) {
	if len(movies) == 0 {
		fmt.Fprintln(a.out, "No movies")
		return
	}
	for _, m := range movies {
		line := fmt.Sprintf("#%d %s", m.ID, m.Title)
		if m.Year != nil {
			line += " (" + *m.Year + ")"
		}
		if m.ImdbID != nil {
			line += " [" + *m.ImdbID + "]"
		}
		fmt.Fprintln(a.out, line)
	}
}

func printField(w io.Writer, label string, value *string) {
	if value == nil {
		return
	}
	fmt.Fprintf(w, "  %s: %s\n", label, *value)
}
