package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/alvarorichard/mediapoisk/internal/appflow"
	"github.com/alvarorichard/mediapoisk/internal/enums"
	"github.com/alvarorichard/mediapoisk/internal/models"
	"github.com/alvarorichard/mediapoisk/internal/titleformat"
)

type command struct {
	minArgs int
	usage   string
	run     func(ctx context.Context, app *appflow.App, w io.Writer, args []string) error
}

var commands = map[string]command{
	"search":      {1, "search <section> [flags] [name...]", runSearch},
	"details":     {2, "details <section> <id>", runDetails},
	"folders":     {2, "folders <section> <id>", runFolders},
	"files":       {3, "files <section> <id> <folder>", runFiles},
	"play":        {4, "play <section> <id> <folder> <file>", runPlay},
	"playfolder":  {3, "playfolder <section> <id> <folder> [file]", runPlayFolder},
	"torrent":     {3, "torrent <section> <id> <folder> [dir]", runTorrent},
	"bookmarks":   {0, "bookmarks [section]", runBookmarks},
	"bookmark":    {2, "bookmark <section> <id>", runBookmark},
	"history":     {0, "history [section|clear]", runHistory},
	"unwatch":     {2, "unwatch <section> <id>", runUnwatch},
	"refresh":     {2, "refresh <section> <id>", runRefresh},
	"autorefresh": {2, "autorefresh <section> <id>", runAutoRefresh},
}

func run(ctx context.Context, app *appflow.App, w io.Writer, args []string) error {
	cmd, ok := commands[args[0]]
	if !ok {
		return errors.Errorf("unknown command %q, run with -help", args[0])
	}
	if len(args)-1 < cmd.minArgs {
		return errors.Errorf("usage: mediapoisk %s", cmd.usage)
	}
	return cmd.run(ctx, app, w, args[1:])
}

func parseSection(s string) (enums.Section, error) {
	section, ok := enums.FindSection(s)
	if !ok {
		// accept the upper-case names in any case
		section, ok = enums.FindSection(strings.ToUpper(s))
	}
	if !ok {
		return 0, errors.Errorf("unknown section %q (video, series, anime)", s)
	}
	return section, nil
}

func parseKey(args []string) (models.MediaKey, error) {
	section, err := parseSection(args[0])
	if err != nil {
		return models.MediaKey{}, err
	}
	id, err := strconv.Atoi(args[1])
	if err != nil {
		return models.MediaKey{}, errors.Errorf("invalid id %q", args[1])
	}
	return models.MediaKey{Section: section, ID: id}, nil
}

func parseInts(args ...string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, errors.Errorf("invalid number %q", a)
		}
		out[i] = n
	}
	return out, nil
}

func optionalSection(args []string) (enums.Section, error) {
	if len(args) == 0 {
		return 0, nil
	}
	return parseSection(args[0])
}

func runDetails(ctx context.Context, app *appflow.App, w io.Writer, args []string) error {
	key, err := parseKey(args)
	if err != nil {
		return err
	}
	d, err := appflow.OpenDetails(ctx, app, key.Section, key.ID)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, d.Title)
	if len(d.OriginalTitle) > 0 {
		fmt.Fprintln(w, strings.Join(d.OriginalTitle, " / "))
	}
	fmt.Fprintf(w, "%s, %s, %s\n", d.Year, models.JoinLabels(d.Countries, ", "), d.GenresDisplay())
	if d.Rating != "" {
		fmt.Fprintf(w, "IMDB %s, users %s\n", d.Rating, d.UserRating)
	}
	if p := d.Premiered(); p != "" {
		fmt.Fprintln(w, "Premiere:", p)
	}
	if watched, err := appflow.IsWatched(ctx, app, key.Section, key.ID); err != nil {
		app.Logger.Warn("could not read watched state", "error", err)
	} else if watched {
		fmt.Fprintln(w, "Watched")
	}
	if d.Plot != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, d.Plot)
	}
	return nil
}

func runFolders(ctx context.Context, app *appflow.App, w io.Writer, args []string) error {
	key, err := parseKey(args)
	if err != nil {
		return err
	}
	folders, err := appflow.GetFolders(ctx, app, key.Section, key.ID)
	if err != nil {
		return err
	}
	for _, f := range folders {
		fmt.Fprintf(w, "%8d  %s\n", f.ID, app.Format.FolderTitle(f))
	}
	return nil
}

func runFiles(ctx context.Context, app *appflow.App, w io.Writer, args []string) error {
	key, err := parseKey(args)
	if err != nil {
		return err
	}
	ids, err := parseInts(args[2])
	if err != nil {
		return err
	}
	files, err := appflow.GetFiles(ctx, app, key.Section, key.ID, ids[0])
	if err != nil {
		return err
	}
	for _, f := range files {
		fmt.Fprintf(w, "%8d  %s\n", f.ID, app.Format.FileTitle(f))
	}
	return nil
}

func runPlay(ctx context.Context, app *appflow.App, w io.Writer, args []string) error {
	key, err := parseKey(args)
	if err != nil {
		return err
	}
	ids, err := parseInts(args[2], args[3])
	if err != nil {
		return err
	}
	return appflow.PlayFile(ctx, app, key.Section, key.ID, ids[0], ids[1])
}

func runPlayFolder(ctx context.Context, app *appflow.App, w io.Writer, args []string) error {
	key, err := parseKey(args)
	if err != nil {
		return err
	}
	nums := args[2:3]
	if len(args) > 3 {
		nums = args[2:4]
	}
	ids, err := parseInts(nums...)
	if err != nil {
		return err
	}
	fileID := 0
	if len(ids) > 1 {
		fileID = ids[1]
	}
	return appflow.PlayFolderFile(ctx, app, key.Section, key.ID, ids[0], fileID)
}

func runTorrent(ctx context.Context, app *appflow.App, w io.Writer, args []string) error {
	key, err := parseKey(args)
	if err != nil {
		return err
	}
	ids, err := parseInts(args[2])
	if err != nil {
		return err
	}
	dir := "."
	if len(args) > 3 {
		dir = args[3]
	}
	path, err := appflow.SaveTorrent(ctx, app, key.Section, key.ID, ids[0], dir)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, path)
	return nil
}

func runBookmarks(ctx context.Context, app *appflow.App, w io.Writer, args []string) error {
	section, err := optionalSection(args)
	if err != nil {
		return err
	}
	items, err := appflow.ListBookmarks(ctx, app, section, appflow.DefaultBatchSize)
	for _, it := range items {
		fmt.Fprintf(w, "%8d  %s\n", it.Bookmark.MediaID, app.Format.BookmarkTitle(it.Details, it.Folders))
	}
	return err
}

func runBookmark(ctx context.Context, app *appflow.App, w io.Writer, args []string) error {
	key, err := parseKey(args)
	if err != nil {
		return err
	}
	saved, err := appflow.ToggleBookmark(ctx, app, key)
	if err != nil {
		return err
	}
	if saved {
		fmt.Fprintln(w, "bookmarked", key)
	} else {
		fmt.Fprintln(w, "removed bookmark", key)
	}
	return nil
}

func runHistory(ctx context.Context, app *appflow.App, w io.Writer, args []string) error {
	if len(args) > 0 && args[0] == "clear" {
		return appflow.ClearHistory(ctx, app)
	}
	section, err := optionalSection(args)
	if err != nil {
		return err
	}
	entries, err := appflow.History(ctx, app, section)
	if err != nil {
		return err
	}
	for _, h := range entries {
		fmt.Fprintf(w, "%8d  %-8s %s  %s\n", h.MediaID, titleformat.SectionSingular(h.Section), h.At.Format("2006-01-02 15:04"), h.Title)
	}
	return nil
}

func runAutoRefresh(ctx context.Context, app *appflow.App, w io.Writer, args []string) error {
	key, err := parseKey(args)
	if err != nil {
		return err
	}
	on, err := app.ToggleAutoRefresh(ctx, key)
	if err != nil {
		return err
	}
	if on {
		fmt.Fprintln(w, "auto refresh disabled for", key)
	} else {
		fmt.Fprintln(w, "auto refresh enabled for", key)
	}
	return nil
}

func runUnwatch(ctx context.Context, app *appflow.App, w io.Writer, args []string) error {
	key, err := parseKey(args)
	if err != nil {
		return err
	}
	return appflow.Unwatch(ctx, app, key)
}

func runRefresh(ctx context.Context, app *appflow.App, w io.Writer, args []string) error {
	key, err := parseKey(args)
	if err != nil {
		return err
	}
	d, err := appflow.RefreshTitle(ctx, app, key.Section, key.ID)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "refreshed", d.Title)
	return nil
}
