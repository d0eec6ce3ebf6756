// Package appflow wires the application together and implements the flows
// the CLI runs on top of the scraper and local storage.
package appflow

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/alvarorichard/mediapoisk/internal/cache"
	"github.com/alvarorichard/mediapoisk/internal/config"
	"github.com/alvarorichard/mediapoisk/internal/enums"
	"github.com/alvarorichard/mediapoisk/internal/models"
	"github.com/alvarorichard/mediapoisk/internal/scraper"
	"github.com/alvarorichard/mediapoisk/internal/storage"
	"github.com/alvarorichard/mediapoisk/internal/stream"
	"github.com/alvarorichard/mediapoisk/internal/titleformat"
	"github.com/alvarorichard/mediapoisk/internal/util"
)

// App holds every long-lived component. Store is nil when sqlite is not
// available; flows then skip persistence.
type App struct {
	Config  *config.Config
	Logger  *log.Logger
	Client  *scraper.HTTPClient
	Scraper *scraper.Scraper
	Store   *storage.Store
	Format  *titleformat.Formatter
	Player  stream.Provider

	// Downloader fetches torrents, the fetcher when it can download
	Downloader stream.Downloader
}

// NewApp builds the application from cfg and loads the protected titles
// from storage into the scraper.
func NewApp(ctx context.Context, cfg *config.Config, logger *log.Logger) (*App, error) {
	if logger == nil {
		logger = util.Discard()
	}

	client := scraper.NewHTTPClient(scraper.ClientOptions{
		Timeout:   cfg.Scraper.Timeout,
		Tries:     cfg.Scraper.Tries,
		RetryWait: cfg.Scraper.RetryWait,
		Transport: util.NewTransport(util.DefaultTransportConfig(cfg.Scraper.MaxWorkers)),
	}, logger)

	store, err := storage.Open(cfg.Storage.Path, cfg.Storage.HistorySize, logger)
	switch {
	case errors.Is(err, storage.ErrCgoDisabled):
		logger.Warn("Bookmarks and history disabled (CGO not available)")
		store = nil
	case err != nil:
		return nil, errors.Wrap(err, "opening storage")
	}

	app := NewAppWith(cfg, logger, client, store)
	app.Client = client
	if err := app.loadProtected(ctx); err != nil {
		_ = app.Close()
		return nil, err
	}
	return app, nil
}

// NewAppWith assembles an App around an existing fetcher and store
func NewAppWith(cfg *config.Config, logger *log.Logger, fetcher scraper.Fetcher, store *storage.Store) *App {
	if logger == nil {
		logger = util.Discard()
	}
	s := scraper.New(fetcher, scraper.Options{
		BaseURL:    cfg.Scraper.BaseURL,
		MaxWorkers: cfg.Scraper.MaxWorkers,
		Timeout:    cfg.Scraper.Timeout,
		Details:    cache.New[models.MediaKey, models.Details](cfg.Cache.DetailsTTL),
		Folders:    cache.New[models.MediaKey, []models.Folder](cfg.Cache.FoldersTTL),
		Searches:   cache.New[uint64, scraper.SearchPage](cfg.Cache.SearchTTL),
		Logger:     logger,
	})
	app := &App{
		Config:  cfg,
		Logger:  logger,
		Scraper: s,
		Store:   store,
		Format:  titleformat.New(titleformat.DefaultOptions()),
		Player:  stream.NewWebTorrentProvider(logger),
	}
	if d, ok := fetcher.(stream.Downloader); ok {
		app.Downloader = d
	}
	return app
}

func (a *App) loadProtected(ctx context.Context) error {
	if a.Store == nil {
		return nil
	}
	keys, err := a.Store.ProtectedIDs(ctx)
	if err != nil {
		return errors.Wrap(err, "loading protected titles")
	}
	a.Scraper.SetPersistent(keys...)
	a.Logger.Debug("loaded protected titles", "count", len(keys))
	return nil
}

// NewSearchFilter returns an empty filter for section carrying the
// configured page size
func (a *App) NewSearchFilter(section enums.Section) *scraper.SearchFilter {
	return &scraper.SearchFilter{Section: section, PageSize: a.Config.Scraper.PageSize}
}

// ToggleAutoRefresh flips whether a title's cache entries expire and
// persists the choice. It returns true when the title is now protected.
func (a *App) ToggleAutoRefresh(ctx context.Context, key models.MediaKey) (bool, error) {
	if a.Scraper.IsPersistent(key) {
		if a.Store != nil {
			if err := a.Store.Unprotect(ctx, key); err != nil {
				return true, err
			}
		}
		a.Scraper.UnsetPersistent(key)
		return false, nil
	}

	if a.Store != nil {
		if err := a.Store.Protect(ctx, key); err != nil {
			return false, err
		}
	}
	a.Scraper.SetPersistent(key)
	return true, nil
}

// Close releases the store
func (a *App) Close() error {
	if a.Store == nil {
		return nil
	}
	return a.Store.Close()
}
