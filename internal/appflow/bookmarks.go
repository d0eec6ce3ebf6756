package appflow

import (
	"context"

	"github.com/pkg/errors"

	"github.com/alvarorichard/mediapoisk/internal/enums"
	"github.com/alvarorichard/mediapoisk/internal/models"
)

const DefaultBatchSize = 20

var ErrNoStorage = errors.New("local storage not available")

// BookmarkItem is a bookmark resolved against the catalog
type BookmarkItem struct {
	Bookmark models.Bookmark
	Details  models.Details
	Folders  []models.Folder
}

// Catalog is the bulk lookup side of the scraper
type Catalog interface {
	GetDetailsBulk(ctx context.Context, section enums.Section, ids []int) (map[int]models.Details, error)
	GetFoldersBulk(ctx context.Context, section enums.Section, ids []int) (map[int][]models.Folder, error)
}

// ListBookmarks resolves the saved titles of section (all sections when
// zero), batchSize bookmarks at a time. Cancelling ctx stops between
// batches: the items of finished batches are returned with ctx's error.
func ListBookmarks(ctx context.Context, app *App, section enums.Section, batchSize int) ([]BookmarkItem, error) {
	if app.Store == nil {
		return nil, errors.WithStack(ErrNoStorage)
	}
	bookmarks, err := app.Store.Bookmarks(ctx, section)
	if err != nil {
		return nil, err
	}
	return resolveBookmarks(ctx, app.Scraper, bookmarks, batchSize)
}

func resolveBookmarks(ctx context.Context, cat Catalog, bookmarks []models.Bookmark, batchSize int) ([]BookmarkItem, error) {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	items := make([]BookmarkItem, 0, len(bookmarks))
	for start := 0; start < len(bookmarks); start += batchSize {
		if err := ctx.Err(); err != nil {
			return items, errors.WithStack(err)
		}
		batch := bookmarks[start:min(start+batchSize, len(bookmarks))]
		resolved, err := resolveBatch(ctx, cat, batch)
		if err != nil {
			return items, err
		}
		items = append(items, resolved...)
	}
	return items, nil
}

// resolveBatch issues one details and one folders bulk call per section
// and keeps the bookmark order
func resolveBatch(ctx context.Context, cat Catalog, batch []models.Bookmark) ([]BookmarkItem, error) {
	var (
		order     []enums.Section
		bySection = make(map[enums.Section][]int)
	)
	for _, b := range batch {
		if _, ok := bySection[b.Section]; !ok {
			order = append(order, b.Section)
		}
		bySection[b.Section] = append(bySection[b.Section], b.MediaID)
	}

	details := make(map[enums.Section]map[int]models.Details, len(order))
	folders := make(map[enums.Section]map[int][]models.Folder, len(order))
	for _, section := range order {
		d, err := cat.GetDetailsBulk(ctx, section, bySection[section])
		if err != nil {
			return nil, err
		}
		f, err := cat.GetFoldersBulk(ctx, section, bySection[section])
		if err != nil {
			return nil, err
		}
		details[section], folders[section] = d, f
	}

	items := make([]BookmarkItem, 0, len(batch))
	for _, b := range batch {
		items = append(items, BookmarkItem{
			Bookmark: b,
			Details:  details[b.Section][b.MediaID],
			Folders:  folders[b.Section][b.MediaID],
		})
	}
	return items, nil
}

// ToggleBookmark saves the title, or removes it when already saved.
// It returns true when the title is now bookmarked.
func ToggleBookmark(ctx context.Context, app *App, key models.MediaKey) (bool, error) {
	if app.Store == nil {
		return false, errors.WithStack(ErrNoStorage)
	}
	saved, err := app.Store.IsBookmarked(ctx, key)
	if err != nil {
		return false, err
	}
	if saved {
		return false, app.Store.RemoveBookmark(ctx, key)
	}
	return true, app.Store.AddBookmark(ctx, key)
}

// History returns the recently opened titles of section, newest first
func History(ctx context.Context, app *App, section enums.Section) ([]models.HistoryEntry, error) {
	if app.Store == nil {
		return nil, errors.WithStack(ErrNoStorage)
	}
	return app.Store.History(ctx, section)
}

// ClearHistory forgets every opened title
func ClearHistory(ctx context.Context, app *App) error {
	if app.Store == nil {
		return errors.WithStack(ErrNoStorage)
	}
	return app.Store.ClearHistory(ctx)
}
