package scraper

import (
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/mitchellh/hashstructure/v2"

	"github.com/alvarorichard/mediapoisk/internal/enums"
)

// SearchFilter describes one catalog search. Zero fields are not sent.
// A filter must not change while a paged search is running over it.
type SearchFilter struct {
	Section       enums.Section
	Format        enums.Format
	Name          string
	People        string
	Studio        string
	Genres        []enums.Label
	Countries     []enums.Label
	Languages     []enums.Label
	RatingMin     float64
	RatingMax     float64
	UserRatingMin float64
	UserRatingMax float64
	YearMin       int
	YearMax       int
	OrderBy       enums.Order
	OrderDir      enums.OrderDirection
	PageSize      int
}

// Query maps the filter onto media_page.php parameters
func (f *SearchFilter) Query() url.Values {
	q := url.Values{}
	setIf := func(key, val string) {
		if val != "" {
			q.Set(key, val)
		}
	}

	setIf("title", f.Name)
	if f.Section != 0 {
		q.Set("section", f.Section.Token())
	}
	if f.Format != 0 {
		q.Set("form", f.Format.Token())
	}
	setIf("people", f.People)
	setIf("studio", f.Studio)
	setIf("genre", joinTokens(f.Genres))
	setIf("made_in", joinTokens(f.Countries))
	setIf("langs", joinTokens(f.Languages))
	setIf("rating_from", formatBound(f.RatingMin))
	setIf("rating_to", formatBound(f.RatingMax))
	setIf("user_rating_from", formatBound(f.UserRatingMin))
	setIf("user_rating_to", formatBound(f.UserRatingMax))
	if f.YearMin != 0 {
		q.Set("year_from", strconv.Itoa(f.YearMin))
	}
	if f.YearMax != 0 {
		q.Set("year_to", strconv.Itoa(f.YearMax))
	}
	if f.OrderBy != 0 {
		q.Set("order", f.OrderBy.Token())
	}
	if f.OrderDir == enums.Desc {
		q.Set("reverse", "yes")
	}
	return q
}

// Cookies returns the site settings cookie, or nil when no setting is set.
// The site reads it as a PHP-serialized map.
func (f *SearchFilter) Cookies() []*http.Cookie {
	if f.PageSize <= 0 {
		return nil
	}
	settings := fmt.Sprintf(`a:1:{s:14:"media_per_page";i:%d;}`, f.PageSize)
	return []*http.Cookie{{
		Name:  "settings",
		Value: url.QueryEscape(settings),
		Path:  "/",
	}}
}

// Equal reports whether both filters describe the same search.
// Nil and empty label lists are equal.
func (f *SearchFilter) Equal(other *SearchFilter) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.key(0).equal(other.key(0))
}

// Key hashes the filter together with the paging offset
func (f *SearchFilter) Key(skip int) (uint64, error) {
	return hashstructure.Hash(f.key(skip), hashstructure.FormatV2, nil)
}

// Clear resets every criterion except the section
func (f *SearchFilter) Clear() {
	*f = SearchFilter{Section: f.Section}
}

func (f *SearchFilter) String() string {
	return "SearchFilter" + f.Query().Encode()
}

// filterKey is the hashable image of a filter. hashstructure skips
// unexported fields, so label lists are flattened to strings first.
type filterKey struct {
	Section       int
	Format        int
	Name          string
	People        string
	Studio        string
	Genres        []string
	Countries     []string
	Languages     []string
	RatingMin     float64
	RatingMax     float64
	UserRatingMin float64
	UserRatingMax float64
	YearMin       int
	YearMax       int
	OrderBy       int
	OrderDir      int
	PageSize      int
	Skip          int
}

func (f *SearchFilter) key(skip int) filterKey {
	return filterKey{
		Section:       int(f.Section),
		Format:        int(f.Format),
		Name:          f.Name,
		People:        f.People,
		Studio:        f.Studio,
		Genres:        labelKeys(f.Genres),
		Countries:     labelKeys(f.Countries),
		Languages:     labelKeys(f.Languages),
		RatingMin:     f.RatingMin,
		RatingMax:     f.RatingMax,
		UserRatingMin: f.UserRatingMin,
		UserRatingMax: f.UserRatingMax,
		YearMin:       f.YearMin,
		YearMax:       f.YearMax,
		OrderBy:       int(f.OrderBy),
		OrderDir:      int(f.OrderDir),
		PageSize:      f.PageSize,
		Skip:          skip,
	}
}

// equal compares two filterKeys field by field
func (k filterKey) equal(o filterKey) bool {
	return k.Section == o.Section && k.Format == o.Format &&
		k.Name == o.Name && k.People == o.People && k.Studio == o.Studio &&
		slices.Equal(k.Genres, o.Genres) && slices.Equal(k.Countries, o.Countries) &&
		slices.Equal(k.Languages, o.Languages) &&
		k.RatingMin == o.RatingMin && k.RatingMax == o.RatingMax &&
		k.UserRatingMin == o.UserRatingMin && k.UserRatingMax == o.UserRatingMax &&
		k.YearMin == o.YearMin && k.YearMax == o.YearMax &&
		k.OrderBy == o.OrderBy && k.OrderDir == o.OrderDir &&
		k.PageSize == o.PageSize && k.Skip == o.Skip
}

// labelKeys distinguishes known variants from raw text with the same token
func labelKeys(labels []enums.Label) []string {
	if len(labels) == 0 {
		return nil
	}
	keys := make([]string, len(labels))
	for i, l := range labels {
		if a, ok := l.Attribute(); ok {
			keys[i] = fmt.Sprintf("%T:%d", a, a.ID())
		} else {
			keys[i] = "raw:" + l.String()
		}
	}
	return keys
}

func joinTokens(labels []enums.Label) string {
	tokens := make([]string, 0, len(labels))
	for _, l := range labels {
		tokens = append(tokens, l.Token())
	}
	return strings.Join(tokens, ",")
}

func formatBound(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
