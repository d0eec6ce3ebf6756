package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"

	"github.com/alvarorichard/mediapoisk/internal/enums"
	"github.com/alvarorichard/mediapoisk/internal/models"
)

const avgItemsPerUser = 64

// AddBookmark saves a title. Bookmarking twice keeps the first date.
func (s *Store) AddBookmark(ctx context.Context, key models.MediaKey) error {
	if err := s.ready(); err != nil {
		return err
	}
	_, err := s.stmts.addBookmark.ExecContext(ctx, int(key.Section), key.ID, s.now().UnixNano())
	return errors.Wrapf(err, "adding bookmark %s", key)
}

// RemoveBookmark forgets a title, it is not an error if it was not saved
func (s *Store) RemoveBookmark(ctx context.Context, key models.MediaKey) error {
	if err := s.ready(); err != nil {
		return err
	}
	_, err := s.stmts.removeBookmark.ExecContext(ctx, int(key.Section), key.ID)
	return errors.Wrapf(err, "removing bookmark %s", key)
}

// IsBookmarked reports whether the title is saved
func (s *Store) IsBookmarked(ctx context.Context, key models.MediaKey) (bool, error) {
	if err := s.ready(); err != nil {
		return false, err
	}
	var one int
	err := s.stmts.hasBookmark.QueryRowContext(ctx, int(key.Section), key.ID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "query failed")
	}
	return true, nil
}

// Bookmarks lists saved titles, newest first. A zero section lists all.
func (s *Store) Bookmarks(ctx context.Context, section enums.Section) ([]models.Bookmark, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	query := `SELECT section, media_id, added_at FROM bookmarks`
	var args []any
	if section != 0 {
		query += ` WHERE section = ?`
		args = append(args, int(section))
	}
	query += ` ORDER BY added_at DESC, media_id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query failed")
	}
	defer s.closeRows(rows)

	list := make([]models.Bookmark, 0, avgItemsPerUser)
	for rows.Next() {
		var (
			b       models.Bookmark
			section int
			ts      int64
		)
		if err := rows.Scan(&section, &b.MediaID, &ts); err != nil {
			return nil, errors.Wrap(err, "row scan failed")
		}
		b.Section = enums.Section(section)
		b.AddedAt = time.Unix(0, ts)
		list = append(list, b)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "rows iteration failed")
	}
	return list, nil
}

// Protect exempts titles from cache expiry across restarts
func (s *Store) Protect(ctx context.Context, keys ...models.MediaKey) error {
	if err := s.ready(); err != nil {
		return err
	}
	for _, key := range keys {
		if _, err := s.stmts.protect.ExecContext(ctx, int(key.Section), key.ID); err != nil {
			return errors.Wrapf(err, "protecting %s", key)
		}
	}
	return nil
}

// Unprotect lets the titles' cache entries expire again
func (s *Store) Unprotect(ctx context.Context, keys ...models.MediaKey) error {
	if err := s.ready(); err != nil {
		return err
	}
	for _, key := range keys {
		if _, err := s.stmts.unprotect.ExecContext(ctx, int(key.Section), key.ID); err != nil {
			return errors.Wrapf(err, "unprotecting %s", key)
		}
	}
	return nil
}

// ProtectedIDs returns every protected title
func (s *Store) ProtectedIDs(ctx context.Context) ([]models.MediaKey, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `SELECT section, media_id FROM protected ORDER BY section, media_id`)
	if err != nil {
		return nil, errors.Wrap(err, "query failed")
	}
	defer s.closeRows(rows)

	var keys []models.MediaKey
	for rows.Next() {
		var section, id int
		if err := rows.Scan(&section, &id); err != nil {
			return nil, errors.Wrap(err, "row scan failed")
		}
		keys = append(keys, models.MediaKey{Section: enums.Section(section), ID: id})
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "rows iteration failed")
	}
	return keys, nil
}

// MarkWatched records the title as watched together with its marker
func (s *Store) MarkWatched(ctx context.Context, key models.MediaKey, marker models.WatchedMarker) error {
	if err := s.ready(); err != nil {
		return err
	}
	if marker.TotalSize < 0 {
		marker.TotalSize = 0
	}
	_, err := s.stmts.markWatched.ExecContext(ctx, int(key.Section), key.ID, marker.TotalSize, unixOrZero(marker.DateAdded))
	return errors.Wrapf(err, "marking %s watched", key)
}

// UnmarkWatched clears the watched mark
func (s *Store) UnmarkWatched(ctx context.Context, key models.MediaKey) error {
	if err := s.ready(); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM watched WHERE section = ? AND media_id = ?`, int(key.Section), key.ID)
	return errors.Wrapf(err, "unmarking %s", key)
}

// IsWatched reports whether the title was marked watched and the current
// marker shows nothing new since. Zero fields on either side are not
// compared.
func (s *Store) IsWatched(ctx context.Context, key models.MediaKey, current models.WatchedMarker) (bool, error) {
	if err := s.ready(); err != nil {
		return false, err
	}
	var size, added int64
	err := s.stmts.getWatched.QueryRowContext(ctx, int(key.Section), key.ID).Scan(&size, &added)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "query failed")
	}

	if current.TotalSize > 0 && current.TotalSize > size {
		return false, nil
	}
	if added > 0 && !current.DateAdded.IsZero() && current.DateAdded.Unix() > added {
		return false, nil
	}
	return true, nil
}

// AddHistory remembers an opened title and drops the oldest entries
// beyond the configured history size
func (s *Store) AddHistory(ctx context.Context, entry models.HistoryEntry) error {
	if err := s.ready(); err != nil {
		return err
	}
	at := entry.At
	if at.IsZero() {
		at = s.now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.StmtContext(ctx, s.stmts.addHistory).ExecContext(ctx,
		int(entry.Section), entry.MediaID, entry.Title, entry.Poster, at.UnixNano()); err != nil {
		return errors.Wrapf(err, "adding history %s", entry.Key())
	}
	if _, err := tx.StmtContext(ctx, s.stmts.trimHistory).ExecContext(ctx, s.historySize); err != nil {
		return errors.Wrap(err, "trimming history")
	}
	return errors.Wrap(tx.Commit(), "commit history")
}

// History returns remembered titles, most recent first. A zero section
// lists all sections.
func (s *Store) History(ctx context.Context, section enums.Section) ([]models.HistoryEntry, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	query := `SELECT section, media_id, title, poster, at FROM history`
	var args []any
	if section != 0 {
		query += ` WHERE section = ?`
		args = append(args, int(section))
	}
	query += ` ORDER BY at DESC, rowid DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query failed")
	}
	defer s.closeRows(rows)

	list := make([]models.HistoryEntry, 0, s.historySize)
	for rows.Next() {
		var (
			h       models.HistoryEntry
			section int
			ts      int64
		)
		if err := rows.Scan(&section, &h.MediaID, &h.Title, &h.Poster, &ts); err != nil {
			return nil, errors.Wrap(err, "row scan failed")
		}
		h.Section = enums.Section(section)
		h.At = time.Unix(0, ts)
		list = append(list, h)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "rows iteration failed")
	}
	return list, nil
}

// ClearHistory forgets every remembered title
func (s *Store) ClearHistory(ctx context.Context) error {
	if err := s.ready(); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM history`)
	return errors.Wrap(err, "clearing history")
}

func (s *Store) closeRows(rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		s.logger.Warn("closing rows", "error", err)
	}
}

func unixOrZero(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}
