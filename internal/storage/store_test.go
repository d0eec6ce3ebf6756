package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alvarorichard/mediapoisk/internal/enums"
	"github.com/alvarorichard/mediapoisk/internal/models"
	"github.com/alvarorichard/mediapoisk/internal/util"
)

func openTestStore(t *testing.T, historySize int) *Store {
	t.Helper()
	if !cgoEnabled {
		t.Skip("sqlite storage needs cgo")
	}
	path := filepath.Join(t.TempDir(), "data", "mediapoisk.db")
	s, err := Open(path, historySize, util.Discard())
	require.NoError(t, err)
	t.Cleanup(func() {
		if s.db != nil {
			assert.NoError(t, s.Close())
		}
	})
	return s
}

func movie(id int) models.MediaKey  { return models.MediaKey{Section: enums.SectionMovies, ID: id} }
func series(id int) models.MediaKey { return models.MediaKey{Section: enums.SectionSeries, ID: id} }

func TestOpenCreatesDatabase(t *testing.T) {
	t.Parallel()
	if !cgoEnabled {
		t.Skip("sqlite storage needs cgo")
	}

	path := filepath.Join(t.TempDir(), "nested", "store.db")
	s, err := Open(path, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultHistorySize, s.historySize)

	_, err = os.Stat(path)
	require.NoError(t, err, "database file is created")

	require.NoError(t, s.Close())
	assert.ErrorIs(t, s.Close(), ErrClosed)
	assert.ErrorIs(t, s.AddBookmark(context.Background(), movie(1)), ErrClosed)
}

func TestBookmarks(t *testing.T) {
	t.Parallel()
	s := openTestStore(t, 0)
	ctx := context.Background()
	tick := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}

	require.NoError(t, s.AddBookmark(ctx, movie(1)))
	require.NoError(t, s.AddBookmark(ctx, series(2)))
	require.NoError(t, s.AddBookmark(ctx, movie(3)))
	require.NoError(t, s.AddBookmark(ctx, movie(1)), "adding twice is a no-op")

	all, err := s.Bookmarks(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, movie(3), all[0].Key(), "newest first")
	assert.Equal(t, movie(1), all[2].Key())

	movies, err := s.Bookmarks(ctx, enums.SectionMovies)
	require.NoError(t, err)
	assert.Len(t, movies, 2)

	ok, err := s.IsBookmarked(ctx, series(2))
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, s.RemoveBookmark(ctx, series(2)))
	require.NoError(t, s.RemoveBookmark(ctx, series(99)))
	ok, err = s.IsBookmarked(ctx, series(2))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProtectedIDs(t *testing.T) {
	t.Parallel()
	s := openTestStore(t, 0)
	ctx := context.Background()

	ids, err := s.ProtectedIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	require.NoError(t, s.Protect(ctx, series(5), movie(7), movie(7)))
	ids, err = s.ProtectedIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.MediaKey{movie(7), series(5)}, ids)

	require.NoError(t, s.Unprotect(ctx, movie(7)))
	ids, err = s.ProtectedIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.MediaKey{series(5)}, ids)
}

func TestWatchedMarker(t *testing.T) {
	t.Parallel()
	s := openTestStore(t, 0)
	ctx := context.Background()

	ok, err := s.IsWatched(ctx, movie(1), models.WatchedMarker{})
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.MarkWatched(ctx, movie(1), models.WatchedMarker{}))
	ok, err = s.IsWatched(ctx, movie(1), models.WatchedMarker{})
	require.NoError(t, err)
	assert.True(t, ok)

	added := time.Date(2014, 3, 5, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.MarkWatched(ctx, series(2), models.WatchedMarker{TotalSize: 1 << 30, DateAdded: added}))

	tests := []struct {
		name    string
		current models.WatchedMarker
		want    bool
	}{
		{"same state", models.WatchedMarker{TotalSize: 1 << 30, DateAdded: added}, true},
		{"no marker", models.WatchedMarker{}, true},
		{"more episodes", models.WatchedMarker{TotalSize: 2 << 30}, false},
		{"newer addition", models.WatchedMarker{DateAdded: added.AddDate(0, 0, 1)}, false},
	}
	for _, tt := range tests {
		ok, err := s.IsWatched(ctx, series(2), tt.current)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, ok, tt.name)
	}

	// a marker stored without a date ignores catalog dates
	require.NoError(t, s.MarkWatched(ctx, series(3), models.WatchedMarker{TotalSize: 10}))
	ok, err = s.IsWatched(ctx, series(3), models.WatchedMarker{DateAdded: added})
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, s.UnmarkWatched(ctx, series(2)))
	ok, err = s.IsWatched(ctx, series(2), models.WatchedMarker{})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHistoryIsBoundedAndMostRecentFirst(t *testing.T) {
	t.Parallel()
	s := openTestStore(t, 3)
	ctx := context.Background()

	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= 5; i++ {
		require.NoError(t, s.AddHistory(ctx, models.HistoryEntry{
			Section: enums.SectionMovies,
			MediaID: i,
			Title:   "title",
			At:      base.Add(time.Duration(i) * time.Minute),
		}))
	}

	h, err := s.History(ctx, 0)
	require.NoError(t, err)
	require.Len(t, h, 3)
	assert.Equal(t, []int{5, 4, 3}, []int{h[0].MediaID, h[1].MediaID, h[2].MediaID})

	// revisiting moves the title to the top instead of duplicating it
	require.NoError(t, s.AddHistory(ctx, models.HistoryEntry{
		Section: enums.SectionMovies, MediaID: 3, Title: "renamed", At: base.Add(time.Hour),
	}))
	h, err = s.History(ctx, enums.SectionMovies)
	require.NoError(t, err)
	require.Len(t, h, 3)
	assert.Equal(t, 3, h[0].MediaID)
	assert.Equal(t, "renamed", h[0].Title)

	none, err := s.History(ctx, enums.SectionAnime)
	require.NoError(t, err)
	assert.Empty(t, none)

	require.NoError(t, s.ClearHistory(ctx))
	h, err = s.History(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, h)
}
