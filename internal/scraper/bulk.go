package scraper

import (
	"context"
	"slices"
	"sync/atomic"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/pkg/errors"
	"github.com/sourcegraph/conc/panics"
	"github.com/sourcegraph/conc/pool"

	"github.com/alvarorichard/mediapoisk/internal/cache"
	"github.com/alvarorichard/mediapoisk/internal/enums"
	"github.com/alvarorichard/mediapoisk/internal/models"
	"github.com/alvarorichard/mediapoisk/internal/util"
)

// task is one fetch-and-parse unit of a wave. index is the folder
// position for file tasks.
type task[T any] struct {
	key   models.MediaKey
	index int
	run   func(context.Context) (T, error)
}

type outcome[T any] struct {
	task  task[T]
	value T
	err   error
}

// runWave executes tasks on a pool of at most workers goroutines and calls
// handle on the calling goroutine as each one completes. The first task
// error or the timeout ends the wave: no further tasks start, tasks already
// running finish in the background and their results are dropped.
func runWave[T any](ctx context.Context, workers int, timeout time.Duration, tasks []task[T], handle func(task[T], T)) error {
	if len(tasks) == 0 {
		return nil
	}

	results := make(chan outcome[T], len(tasks))
	var stopped atomic.Bool

	go func() {
		p := pool.New().WithMaxGoroutines(workers)
		for _, t := range tasks {
			t := t
			if stopped.Load() {
				break
			}
			p.Go(func() {
				if stopped.Load() {
					return
				}
				var (
					pc  panics.Catcher
					out = outcome[T]{task: t}
				)
				pc.Try(func() { out.value, out.err = t.run(ctx) })
				if r := pc.Recovered(); r != nil {
					out.err = r.AsError()
				}
				results <- out
			})
		}
		p.Wait()
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for range tasks {
		select {
		case out := <-results:
			if out.err != nil {
				stopped.Store(true)
				return out.err
			}
			handle(out.task, out.value)
		case <-timer.C:
			stopped.Store(true)
			return timeoutError(context.DeadlineExceeded, "Timeout while fetching URLs")
		case <-ctx.Done():
			stopped.Store(true)
			return errors.WithStack(ctx.Err())
		}
	}
	return nil
}

// store caches value under key and protects it when the id is persistent
func store[V any](s *Scraper, c *cache.Cache[models.MediaKey, V], key models.MediaKey, value V) {
	c.Set(key, value)
	if s.persistent.Contains(key) {
		c.Protect(key)
	}
}

// GetDetailsBulk returns the details of every id, fetching the ones not
// cached. Any fetch failure or the timeout fails the whole call.
func (s *Scraper) GetDetailsBulk(ctx context.Context, section enums.Section, ids []int) (map[int]models.Details, error) {
	results := make(map[int]models.Details, len(ids))
	if len(ids) == 0 {
		return results, nil
	}

	s.purge()
	cached := s.details.Keys()
	var tasks []task[models.Details]
	for _, id := range dedupe(ids) {
		id := id
		key := models.MediaKey{Section: section, ID: id}
		if cached.Contains(key) {
			if d, ok := s.details.Get(key); ok {
				results[id] = d
				continue
			}
		}
		tasks = append(tasks, task[models.Details]{key: key, run: func(ctx context.Context) (models.Details, error) {
			return s.GetDetails(ctx, section, id)
		}})
	}

	timer := util.StartTimer(s.logger, "Bulk fetching")
	defer timer.StopAndLog()
	err := runWave(ctx, s.maxWorkers, s.timeout, tasks, func(t task[models.Details], d models.Details) {
		results[t.key.ID] = d
		store(s, s.details, t.key, d)
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// GetFoldersBulk returns copies of the folders of every id. Titles with more than one
// folder need a second wave fetching each folder's files; their folder list
// is cached only once all of its files have arrived.
func (s *Scraper) GetFoldersBulk(ctx context.Context, section enums.Section, ids []int) (map[int][]models.Folder, error) {
	results := make(map[int][]models.Folder, len(ids))
	if len(ids) == 0 {
		return results, nil
	}

	s.purge()
	cached := s.folders.Keys()
	var folderTasks []task[[]models.Folder]
	for _, id := range dedupe(ids) {
		id := id
		key := models.MediaKey{Section: section, ID: id}
		if cached.Contains(key) {
			if f, ok := s.folders.Get(key); ok {
				results[id] = f
				continue
			}
		}
		folderTasks = append(folderTasks, task[[]models.Folder]{key: key, run: func(ctx context.Context) ([]models.Folder, error) {
			return s.GetFolders(ctx, section, id)
		}})
	}

	timer := util.StartTimer(s.logger, "Bulk fetching")
	defer timer.StopAndLog()

	var fileTasks []task[[]models.File]
	pending := make(map[int]int)
	err := runWave(ctx, s.maxWorkers, s.timeout, folderTasks, func(t task[[]models.Folder], folders []models.Folder) {
		results[t.key.ID] = folders
		if len(folders) <= 1 {
			store(s, s.folders, t.key, folders)
			return
		}
		for i, f := range folders {
			folderID := f.ID
			fileTasks = append(fileTasks, task[[]models.File]{key: t.key, index: i, run: func(ctx context.Context) ([]models.File, error) {
				return s.GetFiles(ctx, section, t.key.ID, folderID)
			}})
		}
		pending[t.key.ID] = len(folders)
	})
	if err != nil {
		return nil, err
	}

	err = runWave(ctx, s.maxWorkers, s.timeout, fileTasks, func(t task[[]models.File], files []models.File) {
		results[t.key.ID][t.index].Files = files
		if pending[t.key.ID]--; pending[t.key.ID] == 0 {
			store(s, s.folders, t.key, results[t.key.ID])
		}
	})
	if err != nil {
		return nil, err
	}

	// callers get their own copies; the cached lists stay untouched
	for id, folders := range results {
		results[id] = cloneFolders(folders)
	}
	return results, nil
}

func cloneFolders(folders []models.Folder) []models.Folder {
	if folders == nil {
		return nil
	}
	out := slices.Clone(folders)
	for i := range out {
		out[i].Files = slices.Clone(out[i].Files)
	}
	return out
}

// GetDetailsCached returns the details of one title through the bulk path
func (s *Scraper) GetDetailsCached(ctx context.Context, section enums.Section, mediaID int) (models.Details, error) {
	res, err := s.GetDetailsBulk(ctx, section, []int{mediaID})
	if err != nil {
		return models.Details{}, err
	}
	return res[mediaID], nil
}

// GetFoldersCached returns the folders of one title through the bulk path
func (s *Scraper) GetFoldersCached(ctx context.Context, section enums.Section, mediaID int) ([]models.Folder, error) {
	res, err := s.GetFoldersBulk(ctx, section, []int{mediaID})
	if err != nil {
		return nil, err
	}
	return res[mediaID], nil
}

// GetFolderCached returns one folder of a title, ok is false if the title has no such folder
func (s *Scraper) GetFolderCached(ctx context.Context, section enums.Section, mediaID, folderID int) (models.Folder, bool, error) {
	folders, err := s.GetFoldersCached(ctx, section, mediaID)
	if err != nil {
		return models.Folder{}, false, err
	}
	f, ok := models.FindFolder(folders, folderID)
	return f, ok, nil
}

// GetFilesCached returns the files of one folder, empty if the folder is unknown
func (s *Scraper) GetFilesCached(ctx context.Context, section enums.Section, mediaID, folderID int) ([]models.File, error) {
	f, _, err := s.GetFolderCached(ctx, section, mediaID, folderID)
	if err != nil {
		return nil, err
	}
	return f.Files, nil
}

// SearchCached runs Search once per (filter, skip) pair. The has-more
// flag of the page is available from HasMore afterwards.
func (s *Scraper) SearchCached(ctx context.Context, filter *SearchFilter, skip int) ([]models.Media, error) {
	if filter == nil {
		filter = &SearchFilter{}
	}
	key, err := filter.Key(skip)
	if err != nil {
		return nil, errors.Wrap(err, "hashing search filter")
	}
	if n := s.searches.Purge(); n > 0 {
		s.logger.Debug("dropped expired searches", "count", n)
	}

	if page, ok := s.searches.Get(key); ok {
		s.setHasMore(page.HasMore)
		return page.Results, nil
	}

	results, hasMore, err := s.Search(ctx, filter, skip)
	if err != nil {
		return nil, err
	}
	s.searches.Set(key, SearchPage{Results: results, HasMore: hasMore})
	return results, nil
}

// purge drops expired titles so long sessions do not grow the caches
func (s *Scraper) purge() {
	d, f := s.details.Purge(), s.folders.Purge()
	if d+f > 0 {
		s.logger.Debug("dropped expired titles", "details", d, "folders", f)
	}
}

// Refresh drops a title from the details and folders caches
func (s *Scraper) Refresh(section enums.Section, mediaID int) {
	key := models.MediaKey{Section: section, ID: mediaID}
	s.details.Delete(key)
	s.folders.Delete(key)
}

// SetPersistent marks titles whose cache entries never expire
func (s *Scraper) SetPersistent(keys ...models.MediaKey) {
	for _, key := range keys {
		s.persistent.Add(key)
		s.details.Protect(key)
		s.folders.Protect(key)
	}
}

// UnsetPersistent lets the titles' cache entries expire again
func (s *Scraper) UnsetPersistent(keys ...models.MediaKey) {
	for _, key := range keys {
		s.persistent.Remove(key)
		s.details.Unprotect(key)
		s.folders.Unprotect(key)
	}
}

// IsPersistent reports whether the title is exempt from expiry
func (s *Scraper) IsPersistent(key models.MediaKey) bool {
	return s.persistent.Contains(key)
}

func dedupe(ids []int) []int {
	seen := mapset.NewThreadUnsafeSetWithSize[int](len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if seen.Add(id) {
			out = append(out, id)
		}
	}
	return out
}
