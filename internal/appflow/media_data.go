package appflow

import (
	"context"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/alvarorichard/mediapoisk/internal/enums"
	"github.com/alvarorichard/mediapoisk/internal/models"
	"github.com/alvarorichard/mediapoisk/internal/scraper"
	"github.com/alvarorichard/mediapoisk/internal/stream"
	"github.com/alvarorichard/mediapoisk/internal/util"
)

// SearchMedia returns one page of results and whether more pages follow
func SearchMedia(ctx context.Context, app *App, filter *scraper.SearchFilter, skip int) ([]models.Media, bool, error) {
	timer := util.StartTimer(app.Logger, "SearchMedia")
	defer timer.StopAndLog()

	results, err := app.Scraper.SearchCached(ctx, filter, skip)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to search")
	}
	return results, app.Scraper.HasMore(), nil
}

// OpenDetails fetches a title and records it in the history
func OpenDetails(ctx context.Context, app *App, section enums.Section, mediaID int) (models.Details, error) {
	timer := util.StartTimer(app.Logger, "OpenDetails")
	defer timer.StopAndLog()

	d, err := app.Scraper.GetDetailsCached(ctx, section, mediaID)
	if err != nil {
		return models.Details{}, errors.Wrap(err, "failed to fetch details")
	}
	if app.Store != nil {
		entry := models.HistoryEntry{Section: section, MediaID: mediaID, Title: d.Title, Poster: d.Poster}
		if err := app.Store.AddHistory(ctx, entry); err != nil {
			app.Logger.Warn("could not update history", "error", err)
		}
	}
	return d, nil
}

// GetFolders returns the folders of a title with their files
func GetFolders(ctx context.Context, app *App, section enums.Section, mediaID int) ([]models.Folder, error) {
	timer := util.StartTimer(app.Logger, "GetFolders")
	defer timer.StopAndLog()

	folders, err := app.Scraper.GetFoldersCached(ctx, section, mediaID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch folders")
	}
	return folders, nil
}

// GetFiles returns the files of one folder, failing if the title has no
// such folder
func GetFiles(ctx context.Context, app *App, section enums.Section, mediaID, folderID int) ([]models.File, error) {
	folder, ok, err := app.Scraper.GetFolderCached(ctx, section, mediaID, folderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch files")
	}
	if !ok {
		return nil, errors.Errorf("title %d has no folder %d", mediaID, folderID)
	}
	return folder.Files, nil
}

// PlayFile streams one file through its own torrent and marks the title
// watched when playback ends without error. Series get a marker so that
// new episodes clear the mark.
func PlayFile(ctx context.Context, app *App, section enums.Section, mediaID, folderID, fileID int) error {
	return play(ctx, app, section, mediaID, folderID, fileID, false)
}

// PlayFolderFile streams one file out of the torrent of the whole folder.
// A zero fileID starts at the first file.
func PlayFolderFile(ctx context.Context, app *App, section enums.Section, mediaID, folderID, fileID int) error {
	return play(ctx, app, section, mediaID, folderID, fileID, true)
}

func play(ctx context.Context, app *App, section enums.Section, mediaID, folderID, fileID int, wholeFolder bool) error {
	folders, err := GetFolders(ctx, app, section, mediaID)
	if err != nil {
		return err
	}
	folder, ok := models.FindFolder(folders, folderID)
	if !ok {
		return errors.Errorf("title %d has no folder %d", mediaID, folderID)
	}
	if fileID == 0 && wholeFolder && len(folder.Files) > 0 {
		fileID = folder.Files[0].ID
	}
	var file *models.File
	for i := range folder.Files {
		if folder.Files[i].ID == fileID {
			file = &folder.Files[i]
			break
		}
	}
	if file == nil {
		return errors.Errorf("folder %d has no file %d", folderID, fileID)
	}

	if app.Downloader == nil || app.Player == nil {
		return errors.New("no torrent player configured")
	}
	if wholeFolder {
		err = stream.PlayFolder(ctx, app.Downloader, app.Player, folder, fileID)
	} else {
		err = stream.PlayFile(ctx, app.Downloader, app.Player, *file)
	}
	if err != nil {
		return errors.Wrap(err, "playback failed")
	}
	if app.Store == nil {
		return nil
	}

	// a catalog date later than this marks new episodes
	var marker models.WatchedMarker
	if section.IsSeries() {
		marker.TotalSize = models.TotalSize(folders)
		marker.DateAdded = time.Now()
	}
	return app.Store.MarkWatched(ctx, models.MediaKey{Section: section, ID: mediaID}, marker)
}

// SaveTorrent writes the torrent of a whole folder into the section's
// subdirectory of dir
func SaveTorrent(ctx context.Context, app *App, section enums.Section, mediaID, folderID int, dir string) (string, error) {
	folder, ok, err := app.Scraper.GetFolderCached(ctx, section, mediaID, folderID)
	if err != nil {
		return "", errors.Wrap(err, "failed to fetch folder")
	}
	if !ok {
		return "", errors.Errorf("title %d has no folder %d", mediaID, folderID)
	}
	if app.Downloader == nil {
		return "", errors.New("torrent downloads not supported by this client")
	}
	return stream.SaveTorrent(ctx, app.Downloader, folder.Link, filepath.Join(dir, section.FolderName()))
}

// WatchedMedia returns the ids of search rows already watched. Series rows
// compare the catalog date of the row with the stored marker.
func WatchedMedia(ctx context.Context, app *App, results []models.Media) (map[int]bool, error) {
	watched := make(map[int]bool)
	if app.Store == nil {
		return watched, nil
	}
	for _, m := range results {
		var current models.WatchedMarker
		if m.Section.IsSeries() {
			current.DateAdded = m.Date
		}
		ok, err := app.Store.IsWatched(ctx, m.Key(), current)
		if err != nil {
			return nil, err
		}
		if ok {
			watched[m.ID] = true
		}
	}
	return watched, nil
}

// IsWatched reports whether a title was watched with nothing new added
// since. Series compare the current size of their folders.
func IsWatched(ctx context.Context, app *App, section enums.Section, mediaID int) (bool, error) {
	if app.Store == nil {
		return false, nil
	}
	var current models.WatchedMarker
	if section.IsSeries() {
		folders, err := GetFolders(ctx, app, section, mediaID)
		if err != nil {
			return false, err
		}
		current.TotalSize = models.TotalSize(folders)
	}
	return app.Store.IsWatched(ctx, models.MediaKey{Section: section, ID: mediaID}, current)
}

// Unwatch clears the watched mark of a title
func Unwatch(ctx context.Context, app *App, key models.MediaKey) error {
	if app.Store == nil {
		return errors.WithStack(ErrNoStorage)
	}
	return app.Store.UnmarkWatched(ctx, key)
}

// RefreshTitle drops the cached pages of a title and fetches its details
// again
func RefreshTitle(ctx context.Context, app *App, section enums.Section, mediaID int) (models.Details, error) {
	app.Scraper.Refresh(section, mediaID)
	d, err := app.Scraper.GetDetailsCached(ctx, section, mediaID)
	if err != nil {
		return models.Details{}, errors.Wrap(err, "failed to refresh details")
	}
	return d, nil
}
