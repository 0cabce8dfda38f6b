package cli

import (
	"context"
	"fmt"

	"github.com/movieshelf/movieshelf/internal/client/storage"
)

// fav manages the local favorites list. Favorites live only in the
// client's sqlite file; the server never sees them.
func (a *App) fav(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: fav add|rm|list")
		return
	}

	switch args[0] {
	case "add":
		a.favAdd(ctx, args[1:])
	case "rm":
		a.favRemove(ctx, args[1:])
	case "list":
		a.favList(ctx)
	default:
		fmt.Fprintf(a.out, "Unknown fav subcommand %q\n", args[0])
	}
}

func (a *App) favAdd(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(a.out, "Usage: fav add <imdbID> <title> [year]")
		return
	}

	fav := storage.Favorite{
		ImdbID: args[0],
		Title:  args[1],
	}
	if len(args) > 2 {
		fav.Year = args[2]
	}

	if err := a.store.AddFavorite(ctx, fav); err != nil {
		a.fail(err)
		return
	}
	fmt.Fprintf(a.out, "Pinned %s\n", fav.Title)
}

func (a *App) favRemove(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: fav rm <imdbID>")
		return
	}

	if err := a.store.RemoveFavorite(ctx, args[0]); err != nil {
		a.fail(err)
		return
	}
	fmt.Fprintf(a.out, "Unpinned %s\n", args[0])
}

func (a *App) favList(ctx context.Context) {
	favorites, err := a.store.ListFavorites(ctx)
	if err != nil {
		a.fail(err)
		return
	}
	if len(favorites) == 0 {
		fmt.Fprintln(a.out, "No favorites")
		return
	}
	for _, fav := range favorites {
		line := fav.Title
		if fav.Year != "" {
			line += " (" + fav.Year + ")"
		}
		fmt.Fprintf(a.out, "%s [%s]\n", line, fav.ImdbID)
	}
}
