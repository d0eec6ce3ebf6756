package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/alvarorichard/mediapoisk/internal/appflow"
	"github.com/alvarorichard/mediapoisk/internal/enums"
	"github.com/alvarorichard/mediapoisk/internal/scraper"
)

// searchArgs parses `<section> [flags] [name...]` into a filter and the
// paging offset. base supplies the section defaults such as the page size.
func searchArgs(base func(enums.Section) *scraper.SearchFilter, args []string) (*scraper.SearchFilter, int, error) {
	section, err := parseSection(args[0])
	if err != nil {
		return nil, 0, err
	}
	filter := base(section)

	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	skip := fs.Int("skip", 0, "results to skip")
	page := fs.Int("page", 0, "page number, starting at 1")
	genres := fs.String("genre", "", "comma separated genres")
	countries := fs.String("country", "", "comma separated countries")
	langs := fs.String("lang", "", "comma separated audio languages")
	fs.IntVar(&filter.YearMin, "year-from", 0, "first year")
	fs.IntVar(&filter.YearMax, "year-to", 0, "last year")
	fs.Float64Var(&filter.RatingMin, "rating-from", 0, "lowest IMDB rating")
	fs.Float64Var(&filter.RatingMax, "rating-to", 0, "highest IMDB rating")
	fs.Float64Var(&filter.UserRatingMin, "user-rating-from", 0, "lowest user rating")
	fs.Float64Var(&filter.UserRatingMax, "user-rating-to", 0, "highest user rating")
	fs.StringVar(&filter.People, "people", "", "cast or crew member")
	fs.StringVar(&filter.Studio, "studio", "", "studio")
	order := fs.String("order", "", "rating, user_rating, year, title, entry_date, genre or country")
	desc := fs.Bool("desc", false, "reverse the order")
	if err := fs.Parse(args[1:]); err != nil {
		return nil, 0, errors.Wrap(err, "search flags")
	}

	filter.Name = strings.Join(fs.Args(), " ")
	filter.Genres = labelList(enums.FindGenre, *genres)
	filter.Countries = labelList(enums.FindCountry, *countries)
	filter.Languages = labelList(enums.FindLanguage, *langs)
	if *order != "" {
		o, ok := findFold(enums.FindOrder, *order)
		if !ok {
			return nil, 0, errors.Errorf("unknown order %q", *order)
		}
		filter.OrderBy = o
	}
	if *desc {
		filter.OrderDir = enums.Desc
	}

	switch {
	case *skip < 0 || *page < 0:
		return nil, 0, errors.New("paging values must not be negative")
	case *skip > 0:
		return filter, *skip, nil
	case *page > 1:
		if filter.PageSize <= 0 {
			return nil, 0, errors.New("-page needs a configured page size, use -skip")
		}
		return filter, (*page - 1) * filter.PageSize, nil
	}
	return filter, 0, nil
}

// findFold retries the lookup with the upper-case variant name
func findFold[T enums.Attribute](find func(string) (T, bool), s string) (T, bool) {
	if v, ok := find(s); ok {
		return v, true
	}
	return find(strings.ToUpper(s))
}

// labelList resolves a comma separated list. Unknown entries are sent as
// typed.
func labelList[T enums.Attribute](find func(string) (T, bool), list string) []enums.Label {
	var out []enums.Label
	for _, item := range strings.Split(list, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		l, _ := enums.Resolve(func(s string) (T, bool) { return findFold(find, s) }, item)
		out = append(out, l)
	}
	return out
}

func runSearch(ctx context.Context, app *appflow.App, w io.Writer, args []string) error {
	filter, skip, err := searchArgs(app.NewSearchFilter, args)
	if err != nil {
		return err
	}

	results, more, err := appflow.SearchMedia(ctx, app, filter, skip)
	if err != nil {
		return err
	}
	watched, err := appflow.WatchedMedia(ctx, app, results)
	if err != nil {
		app.Logger.Warn("could not read watched state", "error", err)
	}
	for _, m := range results {
		mark := " "
		if watched[m.ID] {
			mark = "w"
		}
		fmt.Fprintf(w, "%8d %s %s\n", m.ID, mark, app.Format.MediaTitle(m))
	}
	if more {
		fmt.Fprintf(w, "more results with -skip %d\n", skip+len(results))
	}
	return nil
}
