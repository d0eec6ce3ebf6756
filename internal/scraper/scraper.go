// Package scraper fetches mediapoisk catalog pages, parses them into
// models and serves cached bulk lookups.
package scraper

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/log"
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/alvarorichard/mediapoisk/internal/cache"
	"github.com/alvarorichard/mediapoisk/internal/enums"
	"github.com/alvarorichard/mediapoisk/internal/models"
	"github.com/alvarorichard/mediapoisk/internal/util"
)

const (
	DefaultBaseURL    = "http://mediapoisk.info"
	DefaultMaxWorkers = 10
	DefaultTimeout    = 30 * time.Second
)

// SearchPage is one cached page of search results
type SearchPage struct {
	Results []models.Media
	HasMore bool
}

type (
	DetailsCache = cache.Cache[models.MediaKey, models.Details]
	FoldersCache = cache.Cache[models.MediaKey, []models.Folder]
	SearchCache  = cache.Cache[uint64, SearchPage]
)

// Options configures a Scraper. Nil caches are created with the
// default lifetimes.
type Options struct {
	BaseURL    string
	MaxWorkers int
	Timeout    time.Duration // bulk wait, per wave
	Details    *DetailsCache
	Folders    *FoldersCache
	Searches   *SearchCache
	Logger     *log.Logger
}

// Scraper is the catalog client. It is safe for concurrent use.
type Scraper struct {
	fetcher    Fetcher
	baseURL    string
	maxWorkers int
	timeout    time.Duration
	logger     *log.Logger

	details  *DetailsCache
	folders  *FoldersCache
	searches *SearchCache

	// ids whose cache entries never expire
	persistent mapset.Set[models.MediaKey]

	mu      sync.Mutex
	hasMore bool
}

// New creates a scraper over fetcher
func New(fetcher Fetcher, opts Options) *Scraper {
	s := &Scraper{
		fetcher:    fetcher,
		baseURL:    opts.BaseURL,
		maxWorkers: opts.MaxWorkers,
		timeout:    opts.Timeout,
		logger:     opts.Logger,
		details:    opts.Details,
		folders:    opts.Folders,
		searches:   opts.Searches,
		persistent: mapset.NewSet[models.MediaKey](),
	}
	if s.baseURL == "" {
		s.baseURL = DefaultBaseURL
	}
	if s.maxWorkers <= 0 {
		s.maxWorkers = DefaultMaxWorkers
	}
	if s.timeout <= 0 {
		s.timeout = DefaultTimeout
	}
	if s.logger == nil {
		s.logger = util.Discard()
	}
	if s.details == nil {
		s.details = cache.New[models.MediaKey, models.Details](72 * time.Hour)
	}
	if s.folders == nil {
		s.folders = cache.New[models.MediaKey, []models.Folder](12 * time.Hour)
	}
	if s.searches == nil {
		s.searches = cache.New[uint64, SearchPage](time.Hour)
	}
	return s
}

// BaseURL returns the site root the scraper talks to
func (s *Scraper) BaseURL() string { return s.baseURL }

// Search fetches one page of results. skip is the paging offset.
func (s *Scraper) Search(ctx context.Context, filter *SearchFilter, skip int) ([]models.Media, bool, error) {
	if filter == nil {
		filter = &SearchFilter{}
	}
	query := filter.Query()
	if skip > 0 {
		query.Set("skip", strconv.Itoa(skip))
	}
	pageURL := s.baseURL + "/media_page.php"
	if len(query) > 0 {
		pageURL += "?" + query.Encode()
	}
	s.logger.Info("Using search filter", "filter", filter)

	timer := util.StartTimer(s.logger, "Fetching URL")
	body, err := s.fetcher.Fetch(ctx, pageURL, filter.Cookies()...)
	timer.StopAndLog()
	if err != nil {
		return nil, false, err
	}

	doc, err := newDocument(body)
	if err != nil {
		return nil, false, err
	}
	timer = util.StartTimer(s.logger, "Parsing")
	p := newPageParser(s.logger, s.baseURL)
	results, hasMore := p.parseSearch(doc, filter.Section)
	timer.StopAndLog()

	s.setHasMore(hasMore)
	s.logger.Info(fmt.Sprintf("Found %d result(s), %d warning(s).", len(results), p.warnings))
	return results, hasMore, nil
}

// GetDetails fetches and parses the details of one title
func (s *Scraper) GetDetails(ctx context.Context, section enums.Section, mediaID int) (models.Details, error) {
	doc, err := s.fetchDocument(ctx, s.titleURL(section, mediaID))
	if err != nil {
		return models.Details{}, err
	}

	timer := util.StartTimer(s.logger, "Parsing")
	defer timer.StopAndLog()
	p := newPageParser(s.logger, s.baseURL)
	details, err := p.parseDetails(doc, section, mediaID)
	if err != nil {
		return models.Details{}, err
	}
	s.logger.Info(fmt.Sprintf("Got details successfully, %d warning(s).", p.warnings))
	return details, nil
}

// GetFolders fetches the folders of one title. Files are filled in only
// when the title has a single folder.
func (s *Scraper) GetFolders(ctx context.Context, section enums.Section, mediaID int) ([]models.Folder, error) {
	doc, err := s.fetchDocument(ctx, s.titleURL(section, mediaID))
	if err != nil {
		return nil, err
	}

	timer := util.StartTimer(s.logger, "Parsing folders")
	defer timer.StopAndLog()
	p := newPageParser(s.logger, s.baseURL)
	folders := p.parseFolders(doc, section, mediaID)
	s.logger.Info(fmt.Sprintf("Got %d folder(s) successfully, %d warning(s).", len(folders), p.warnings))
	return folders, nil
}

// GetFiles fetches the files of one folder
func (s *Scraper) GetFiles(ctx context.Context, section enums.Section, mediaID, folderID int) ([]models.File, error) {
	doc, err := s.fetchDocument(ctx, s.titleURL(section, mediaID)+"&cid="+strconv.Itoa(folderID))
	if err != nil {
		return nil, err
	}

	timer := util.StartTimer(s.logger, "Parsing files")
	defer timer.StopAndLog()
	p := newPageParser(s.logger, s.baseURL)
	files := p.parseFiles(doc.Selection, section, mediaID, folderID)
	s.logger.Info(fmt.Sprintf("Got %d file(s) successfully, %d warning(s).", len(files), p.warnings))
	return files, nil
}

func (s *Scraper) titleURL(section enums.Section, mediaID int) string {
	return fmt.Sprintf("%s/media_show_page.php?section=%s&id=%d", s.baseURL, url.QueryEscape(section.Token()), mediaID)
}

func (s *Scraper) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	timer := util.StartTimer(s.logger, "Fetching URL")
	body, err := s.fetcher.Fetch(ctx, pageURL)
	timer.StopAndLog()
	if err != nil {
		return nil, err
	}
	return newDocument(body)
}

func (s *Scraper) setHasMore(v bool) {
	s.mu.Lock()
	s.hasMore = v
	s.mu.Unlock()
}

// HasMore reports whether the last search had further pages
func (s *Scraper) HasMore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasMore
}
