package scraper

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/alvarorichard/mediapoisk/internal/cache"
	"github.com/alvarorichard/mediapoisk/internal/enums"
	"github.com/alvarorichard/mediapoisk/internal/models"
)

func TestGetDetailsBulkEmptyIDsSkipsFetch(t *testing.T) {
	t.Parallel()

	f := newFakeFetcher()
	s := newTestScraper(t, f, time.Second)

	res, err := s.GetDetailsBulk(context.Background(), enums.SectionMovies, nil)
	require.NoError(t, err)
	assert.Empty(t, res)
	assert.Zero(t, f.total())
}

func TestGetDetailsBulkCachesResults(t *testing.T) {
	t.Parallel()

	f := newFakeFetcher()
	for _, id := range []int{1, 2, 3} {
		f.pages[titleURL("video", id)] = detailsPageHTML
	}
	s := newTestScraper(t, f, time.Second)
	ctx := context.Background()

	res, err := s.GetDetailsBulk(ctx, enums.SectionMovies, []int{1, 2, 3, 2})
	require.NoError(t, err)
	assert.Len(t, res, 3)
	for _, id := range []int{1, 2, 3} {
		assert.Equal(t, id, res[id].MediaID)
	}
	assert.Equal(t, 3, f.total())

	again, err := s.GetDetailsBulk(ctx, enums.SectionMovies, []int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, res, again)
	assert.Equal(t, 3, f.total(), "second call is served from cache")

	d, err := s.GetDetailsCached(ctx, enums.SectionMovies, 2)
	require.NoError(t, err)
	assert.Equal(t, "Начало", d.Title)
	assert.Equal(t, 3, f.total())
}

func TestGetDetailsBulkNotFoundFailsWholeCall(t *testing.T) {
	t.Parallel()

	f := newFakeFetcher()
	f.pages[titleURL("video", 1)] = detailsPageHTML
	f.pages[titleURL("video", 2)] = missingDetailsPageHTML
	s := newTestScraper(t, f, time.Second)

	res, err := s.GetDetailsBulk(context.Background(), enums.SectionMovies, []int{1, 2})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetDetailsBulkTimeoutLeavesPendingIDsUncached(t *testing.T) {
	t.Parallel()

	f := newFakeFetcher()
	f.pages[titleURL("video", 1)] = detailsPageHTML
	f.pages[titleURL("video", 2)] = detailsPageHTML
	f.slow[titleURL("video", 2)] = true
	s := newTestScraper(t, f, 200*time.Millisecond)

	_, err := s.GetDetailsBulk(context.Background(), enums.SectionMovies, []int{1, 2})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)

	slowKey := models.MediaKey{Section: enums.SectionMovies, ID: 2}
	assert.False(t, s.details.Contains(slowKey))

	close(f.release)
	time.Sleep(100 * time.Millisecond)
	assert.False(t, s.details.Contains(slowKey), "late results are discarded")
}

func TestGetDetailsBulkProtectsPersistentIDs(t *testing.T) {
	t.Parallel()

	f := newFakeFetcher()
	f.pages[titleURL("video", 1)] = detailsPageHTML
	f.pages[titleURL("video", 2)] = detailsPageHTML
	s := newTestScraper(t, f, time.Second)

	kept := models.MediaKey{Section: enums.SectionMovies, ID: 1}
	s.SetPersistent(kept)
	_, err := s.GetDetailsBulk(context.Background(), enums.SectionMovies, []int{1, 2})
	require.NoError(t, err)

	assert.True(t, s.details.IsProtected(kept))
	assert.False(t, s.details.IsProtected(models.MediaKey{Section: enums.SectionMovies, ID: 2}))

	s.Refresh(enums.SectionMovies, 1)
	assert.False(t, s.details.Contains(kept))
	assert.True(t, s.IsPersistent(kept))

	_, err = s.GetDetailsCached(context.Background(), enums.SectionMovies, 1)
	require.NoError(t, err)
	assert.True(t, s.details.IsProtected(kept), "refetched persistent entries are protected again")
	assert.Equal(t, 2, f.count(titleURL("video", 1)))
}

func TestBulkCallsDropExpiredEntries(t *testing.T) {
	t.Parallel()

	f := newFakeFetcher()
	f.pages[titleURL("video", 1)] = detailsPageHTML
	details := cache.New[models.MediaKey, models.Details](time.Nanosecond)
	folders := cache.New[models.MediaKey, []models.Folder](time.Nanosecond)
	s := New(f, Options{BaseURL: testBase, MaxWorkers: 2, Timeout: time.Second, Details: details, Folders: folders})

	fresh := models.MediaKey{Section: enums.SectionMovies, ID: 1}
	s.SetPersistent(fresh)
	details.Set(models.MediaKey{Section: enums.SectionMovies, ID: 99}, models.Details{})
	folders.Set(models.MediaKey{Section: enums.SectionMovies, ID: 99}, nil)
	time.Sleep(time.Millisecond)

	_, err := s.GetDetailsBulk(context.Background(), enums.SectionMovies, []int{1})
	require.NoError(t, err)
	assert.Zero(t, details.Purge(), "stale entry dropped by the bulk call")
	assert.Zero(t, folders.Purge())
	assert.Equal(t, 1, details.Len())
}

func TestGetFoldersBulkFetchesFilesForMultiFolderTitles(t *testing.T) {
	t.Parallel()

	f := newFakeFetcher()
	f.pages[titleURL("video", 101)] = multiFolderPageHTML
	f.pages[filesURL("video", 101, 11)] = filesPageHTML(11, 1, 2)
	f.pages[filesURL("video", 101, 12)] = filesPageHTML(12, 3)
	f.pages[filesURL("video", 101, 13)] = filesPageHTML(13)
	f.pages[titleURL("video", 7)] = singleFolderPageHTML
	s := newTestScraper(t, f, time.Second)
	ctx := context.Background()

	res, err := s.GetFoldersBulk(ctx, enums.SectionMovies, []int{101, 7})
	require.NoError(t, err)
	require.Len(t, res, 2)

	multi := res[101]
	require.Len(t, multi, 3)
	require.Len(t, multi[0].Files, 2)
	assert.Equal(t, 11, multi[0].Files[0].FolderID)
	assert.Equal(t, 90, multi[0].Files[0].Duration)
	require.Len(t, multi[1].Files, 1)
	assert.Equal(t, 3, multi[1].Files[0].ID)
	assert.Empty(t, multi[2].Files)

	single := res[7]
	require.Len(t, single, 1)
	assert.Len(t, single[0].Files, 2)
	assert.Zero(t, f.count(filesURL("video", 7, 21)), "single folder pages carry their files inline")

	before := f.total()
	files, err := s.GetFilesCached(ctx, enums.SectionMovies, 101, 12)
	require.NoError(t, err)
	require.Len(t, files, 1)

	folder, ok, err := s.GetFolderCached(ctx, enums.SectionMovies, 101, 99)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, folder.ID)
	assert.Equal(t, before, f.total())
}

func TestGetFoldersBulkResultDoesNotAliasCache(t *testing.T) {
	t.Parallel()

	f := newFakeFetcher()
	f.pages[titleURL("video", 7)] = singleFolderPageHTML
	s := newTestScraper(t, f, time.Second)
	ctx := context.Background()

	res, err := s.GetFoldersBulk(ctx, enums.SectionMovies, []int{7})
	require.NoError(t, err)
	require.Len(t, res[7], 1)
	require.NotEmpty(t, res[7][0].Files)
	wantTitle := res[7][0].Title
	wantFile := res[7][0].Files[0].Title

	res[7][0].Title = "changed"
	res[7][0].Files[0].Title = "changed"

	again, err := s.GetFoldersBulk(ctx, enums.SectionMovies, []int{7})
	require.NoError(t, err)
	assert.Equal(t, wantTitle, again[7][0].Title)
	assert.Equal(t, wantFile, again[7][0].Files[0].Title)
	assert.Equal(t, 1, f.total(), "second call is served from cache")
}

func TestGetFoldersBulkFileTimeoutDoesNotCacheTitle(t *testing.T) {
	t.Parallel()

	f := newFakeFetcher()
	f.pages[titleURL("video", 101)] = multiFolderPageHTML
	f.pages[filesURL("video", 101, 11)] = filesPageHTML(11, 1)
	f.pages[filesURL("video", 101, 12)] = filesPageHTML(12, 2)
	f.pages[filesURL("video", 101, 13)] = filesPageHTML(13, 3)
	f.slow[filesURL("video", 101, 13)] = true
	s := newTestScraper(t, f, 200*time.Millisecond)
	defer close(f.release)

	_, err := s.GetFoldersBulk(context.Background(), enums.SectionMovies, []int{101})
	require.ErrorIs(t, err, ErrTimeout)
	assert.False(t, s.folders.Contains(models.MediaKey{Section: enums.SectionMovies, ID: 101}))
}

type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) Fetch(ctx context.Context, url string, _ ...*http.Cookie) ([]byte, error) {
	args := m.Called(ctx, url)
	body, _ := args.Get(0).([]byte)
	return body, args.Error(1)
}

func TestSearchCachedFetchesOnce(t *testing.T) {
	t.Parallel()

	m := &mockFetcher{}
	m.On("Fetch", mock.Anything, mock.AnythingOfType("string")).Return([]byte(searchPageHTML), nil).Once()
	s := newTestScraper(t, m, time.Second)
	ctx := context.Background()

	filter := &SearchFilter{Section: enums.SectionMovies, Name: "начало"}
	first, err := s.SearchCached(ctx, filter, 0)
	require.NoError(t, err)
	assert.True(t, s.HasMore())

	same := &SearchFilter{Section: enums.SectionMovies, Name: "начало", Genres: []enums.Label{}}
	second, err := s.SearchCached(ctx, same, 0)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.True(t, s.HasMore())

	m.AssertNumberOfCalls(t, "Fetch", 1)
	m.AssertExpectations(t)
}

func TestSearchSendsQueryAndSettingsCookie(t *testing.T) {
	t.Parallel()

	f := newFakeFetcher()
	want := testBase + "/media_page.php?reverse=yes&section=video&skip=20&title=matrix"
	f.pages[want] = lastSearchPageHTML
	s := newTestScraper(t, f, time.Second)

	filter := &SearchFilter{Section: enums.SectionMovies, Name: "matrix", OrderDir: enums.Desc, PageSize: 50}
	_, hasMore, err := s.Search(context.Background(), filter, 20)
	require.NoError(t, err)
	assert.False(t, hasMore)
	assert.False(t, s.HasMore())
	assert.Equal(t, 1, f.count(want))

	require.Len(t, f.cookies, 1)
	assert.Equal(t, "settings", f.cookies[0].Name)
}
