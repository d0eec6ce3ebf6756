package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alvarorichard/mediapoisk/internal/enums"
	"github.com/alvarorichard/mediapoisk/internal/models"
	"github.com/alvarorichard/mediapoisk/internal/scraper"
)

func TestParseSection(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]enums.Section{
		"video":  enums.SectionMovies,
		"movies": enums.SectionMovies,
		"Series": enums.SectionSeries,
		"30":     enums.SectionAnime,
	} {
		got, err := parseSection(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := parseSection("cartoons")
	assert.Error(t, err)
}

func TestParseKey(t *testing.T) {
	t.Parallel()

	key, err := parseKey([]string{"anime", "42"})
	require.NoError(t, err)
	assert.Equal(t, models.MediaKey{Section: enums.SectionAnime, ID: 42}, key)

	_, err = parseKey([]string{"anime", "x"})
	assert.Error(t, err)
}

func TestRunRejectsBadInvocations(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := run(context.Background(), nil, &out, []string{"dance"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")

	err = run(context.Background(), nil, &out, []string{"files", "video", "1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage: mediapoisk files")
	assert.Empty(t, out.String())
}

func searchDefaults(section enums.Section) *scraper.SearchFilter {
	return &scraper.SearchFilter{Section: section, PageSize: 50}
}

func TestSearchArgsBuildQuery(t *testing.T) {
	t.Parallel()

	filter, skip, err := searchArgs(searchDefaults, []string{
		"series",
		"-genre", "comedy, Драма,cyberpunk",
		"-country", "USA",
		"-lang", "english",
		"-year-from", "2000", "-year-to", "2010",
		"-rating-from", "7.5", "-rating-to", "9",
		"-order", "rating", "-desc",
		"-page", "3",
		"doctor", "who",
	})
	require.NoError(t, err)
	assert.Equal(t, 100, skip)

	q := filter.Query()
	assert.Equal(t, "doctor who", q.Get("title"))
	assert.Equal(t, enums.SectionSeries.Token(), q.Get("section"))
	assert.Equal(t, "Комедия,Драма,cyberpunk", q.Get("genre"))
	assert.Equal(t, "США", q.Get("made_in"))
	assert.Equal(t, "Английский", q.Get("langs"))
	assert.Equal(t, "2000", q.Get("year_from"))
	assert.Equal(t, "2010", q.Get("year_to"))
	assert.Equal(t, "7.5", q.Get("rating_from"))
	assert.Equal(t, "9", q.Get("rating_to"))
	assert.Equal(t, "rating", q.Get("order"))
	assert.Equal(t, "yes", q.Get("reverse"))

	require.Len(t, filter.Genres, 3)
	assert.True(t, filter.Genres[0].Known())
	assert.False(t, filter.Genres[2].Known(), "unknown genre is sent as typed")
}

func TestSearchArgsPaging(t *testing.T) {
	t.Parallel()

	filter, skip, err := searchArgs(searchDefaults, []string{"anime"})
	require.NoError(t, err)
	assert.Zero(t, skip)
	assert.Empty(t, filter.Name)
	assert.Empty(t, filter.Query().Get("reverse"))

	_, skip, err = searchArgs(searchDefaults, []string{"anime", "-skip", "25", "-page", "4"})
	require.NoError(t, err)
	assert.Equal(t, 25, skip, "explicit skip wins over page")

	_, _, err = searchArgs(searchDefaults, []string{"anime", "-order", "popularity"})
	assert.Error(t, err)

	_, _, err = searchArgs(searchDefaults, []string{"anime", "-skip", "-1"})
	assert.Error(t, err)

	_, _, err = searchArgs(searchDefaults, []string{"anime", "-nope"})
	assert.Error(t, err)

	noSize := func(s enums.Section) *scraper.SearchFilter { return &scraper.SearchFilter{Section: s} }
	_, _, err = searchArgs(noSize, []string{"anime", "-page", "2"})
	assert.Error(t, err)
}
