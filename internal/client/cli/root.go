package cli

import (
	"context"
	"fmt"
	"strings"
)

// Run starts the REPL and blocks until the user exits or input closes.
// Commands and interactive prompts share a.reader, so scripted input
// feeds both without one buffering ahead of the other.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Movieshelf shell (type 'help' for commands)")

	for {
		fmt.Fprintf(a.out, "shelf%s> ", a.status())
		line, err := a.reader.ReadString('\n')

		if parts := strings.Fields(line); len(parts) > 0 {
			if done := a.dispatch(ctx, parts[0], parts[1:]); done {
				return
			}
		}
		if err != nil {
			return
		}
	}
}

// dispatch runs one command. It reports true when the user asked to exit.
func (a *App) dispatch(ctx context.Context, cmd string, args []string) bool {
	switch cmd {
	case "help":
		a.help()
	case "register":
		a.register(ctx)
	case "login":
		a.loginCmd(ctx)
	case "logout":
		a.logout(ctx)
	case "list":
		a.list(ctx, args)
	case "search":
		a.search(ctx, args)
	case "add":
		a.add(ctx)
	case "show":
		a.show(ctx, args)
	case "update":
		a.update(ctx, args)
	case "delete":
		a.delete(ctx, args)
	case "categories":
		a.categories(ctx)
	case "omdb":
		a.omdb(ctx, args)
	case "omdb-title":
		a.omdbTitle(ctx, args)
	case "fav":
		a.fav(ctx, args)
	case "exit", "quit":
		fmt.Fprintln(a.out, "Bye!")
		return true
	default:
		fmt.Fprintf(a.out, "Unknown command %q, type 'help'\n", cmd)
	}
	return false
}

func (a *App) status() string {
	if a.login == "" {
		return ""
	}
	return " (" + a.login + ")"
}

func (a *App) help() {
	fmt.Fprintln(a.out, `Commands:
  register               create an account (logs you in)
  login                  log in
  logout                 log out and forget the saved session
  list                   list your movies
  search <term>          search your movies by title or IMDb id
  add                    add a movie (interactive)
  show <id>              show one movie
  update <id>            update a movie (interactive, blank keeps current)
  delete <id>            delete a movie
  categories             list the shared categories
  omdb <keyword> [page]  search OMDb by keyword
  omdb-title <title>     look up OMDb by exact title
  fav add <imdbID> <title> [year]   pin a movie locally
  fav rm <imdbID>                   unpin
  fav list                          show local favorites
  exit`)
}
