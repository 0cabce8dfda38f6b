package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// omdbSearchResult mirrors the subset of OMDb's search response the
// shell renders.
type omdbSearchResult struct {
	Search []struct {
		Title  string `json:"Title"`
		Year   string `json:"Year"`
		ImdbID string `json:"imdbID"`
		Type   string `json:"Type"`
	} `json:"Search"`
	TotalResults string `json:"totalResults"`
	Response     string `json:"Response"`
	Error        string `json:"Error"`
}

func (a *App) omdb(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: omdb <keyword> [page]")
		return
	}

	page := 0
	keywordParts := args
	if len(args) > 1 {
		if n, err := strconv.Atoi(args[len(args)-1]); err == nil {
			page = n
			keywordParts = args[:len(args)-1]
		}
	}
	keyword := strings.Join(keywordParts, " ")

	raw, err := a.api.SearchOmdb(ctx, keyword, "", "", page)
	if err != nil {
		a.fail(err)
		return
	}

	var result omdbSearchResult
	if err := json.Unmarshal(raw, &result); err != nil {
		a.fail(err)
		return
	}
	if result.Response != "True" {
		fmt.Fprintf(a.out, "OMDb: %s\n", result.Error)
		return
	}

	for _, item := range result.Search {
		fmt.Fprintf(a.out, "%s (%s) [%s] %s\n", item.Title, item.Year, item.ImdbID, item.Type)
	}
	fmt.Fprintf(a.out, "%s results total\n", result.TotalResults)
}

func (a *App) omdbTitle(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: omdb-title <title>")
		return
	}

	raw, err := a.api.SearchOmdbTitle(ctx, strings.Join(args, " "), "")
	if err != nil {
		a.fail(err)
		return
	}

	// Title lookups return a flat object; render the interesting keys.
	var detail map[string]any
	if err := json.Unmarshal(raw, &detail); err != nil {
		a.fail(err)
		return
	}
	if detail["Response"] == "False" {
		fmt.Fprintf(a.out, "OMDb: %v\n", detail["Error"])
		return
	}

	for _, key := range []string{"Title", "Year", "Genre", "Director", "Plot", "imdbID", "imdbRating"} {
		if v, ok := detail[key]; ok {
			fmt.Fprintf(a.out, "%s: %v\n", key, v)
		}
	}
}
