// Package storage persists user state in a local sqlite database:
// bookmarks, titles exempt from cache expiry, watched marks and the
// history of opened titles.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/alvarorichard/mediapoisk/internal/util"
)

var (
	ErrCgoDisabled = errors.New("CGO disabled: sqlite storage not available")
	ErrClosed      = errors.New("storage closed")
)

const (
	defaultCacheSize   = -8000 // 8MB
	mmapSize           = 67108864
	busyTimeout        = 5000 // ms
	walAutoCheckpoint  = 1000 // pages
	maxOpenConns       = 4
	maxIdleConns       = 2
	DefaultHistorySize = 10
)

// Store is the sqlite-backed user state. Safe for concurrent use.
type Store struct {
	db          *sql.DB
	historySize int
	logger      *log.Logger
	stmts       *statements
	now         func() time.Time
}

// Open creates or opens the database at path. historySize bounds the
// number of remembered titles, zero or less selects DefaultHistorySize.
func Open(path string, historySize int, logger *log.Logger) (*Store, error) {
	if !cgoEnabled {
		return nil, ErrCgoDisabled
	}
	if logger == nil {
		logger = util.Discard()
	}
	if historySize <= 0 {
		historySize = DefaultHistorySize
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, errors.Wrap(err, "creating data directory")
	}

	db, err := sql.Open("sqlite3", dsn(path))
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)

	if err := initializeDatabase(db); err != nil {
		closeQuietly(db, logger)
		return nil, err
	}
	stmts, err := prepareStatements(db)
	if err != nil {
		closeQuietly(db, logger)
		return nil, err
	}

	logger.Debug("storage opened", "path", path)
	return &Store{db: db, historySize: historySize, logger: logger, stmts: stmts, now: time.Now}, nil
}

func dsn(path string) string {
	// sqlite URIs want forward slashes on windows
	mode := ""
	if runtime.GOOS == "windows" {
		path = strings.ReplaceAll(path, "\\", "/")
		mode = "&_mode=rwc"
	}
	return fmt.Sprintf(
		"file:%s?_journal_mode=WAL&_synchronous=NORMAL&_wal_autocheckpoint=%d&"+
			"_busy_timeout=%d&_cache_size=%d&_mmap_size=%d%s",
		path, walAutoCheckpoint, busyTimeout, defaultCacheSize, mmapSize, mode,
	)
}

func closeQuietly(db *sql.DB, logger *log.Logger) {
	if err := db.Close(); err != nil {
		logger.Warn("closing database", "error", err)
	}
}

func initializeDatabase(db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS bookmarks (
			section  INTEGER NOT NULL,
			media_id INTEGER NOT NULL,
			added_at INTEGER NOT NULL,
			PRIMARY KEY (section, media_id)
		)`,
		`CREATE TABLE IF NOT EXISTS protected (
			section  INTEGER NOT NULL,
			media_id INTEGER NOT NULL,
			PRIMARY KEY (section, media_id)
		)`,
		`CREATE TABLE IF NOT EXISTS watched (
			section    INTEGER NOT NULL,
			media_id   INTEGER NOT NULL,
			total_size INTEGER NOT NULL DEFAULT 0 CHECK(total_size >= 0),
			date_added INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (section, media_id)
		)`,
		`CREATE TABLE IF NOT EXISTS history (
			section  INTEGER NOT NULL,
			media_id INTEGER NOT NULL,
			title    TEXT    NOT NULL DEFAULT '',
			poster   TEXT    NOT NULL DEFAULT '',
			at       INTEGER NOT NULL,
			PRIMARY KEY (section, media_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_bookmarks_added ON bookmarks(added_at)`,
		`CREATE INDEX IF NOT EXISTS idx_history_at ON history(at)`,
	}
	for _, q := range schema {
		if _, err := db.Exec(q); err != nil {
			return errors.Wrapf(err, "schema creation failed: %s", firstLine(q))
		}
	}
	if _, err := db.Exec(`PRAGMA optimize`); err != nil {
		return errors.Wrap(err, "initial optimization failed")
	}
	return nil
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSpace(line)
}

type statements struct {
	addBookmark    *sql.Stmt
	removeBookmark *sql.Stmt
	hasBookmark    *sql.Stmt
	protect        *sql.Stmt
	unprotect      *sql.Stmt
	markWatched    *sql.Stmt
	getWatched     *sql.Stmt
	addHistory     *sql.Stmt
	trimHistory    *sql.Stmt
}

func prepareStatements(db *sql.DB) (*statements, error) {
	var s statements
	queries := []struct {
		name  string
		dst   **sql.Stmt
		query string
	}{
		{"add bookmark", &s.addBookmark, `INSERT INTO bookmarks (section, media_id, added_at)
			VALUES (?,?,?) ON CONFLICT(section, media_id) DO NOTHING`},
		{"remove bookmark", &s.removeBookmark, `DELETE FROM bookmarks WHERE section = ? AND media_id = ?`},
		{"has bookmark", &s.hasBookmark, `SELECT 1 FROM bookmarks WHERE section = ? AND media_id = ?`},
		{"protect", &s.protect, `INSERT INTO protected (section, media_id)
			VALUES (?,?) ON CONFLICT(section, media_id) DO NOTHING`},
		{"unprotect", &s.unprotect, `DELETE FROM protected WHERE section = ? AND media_id = ?`},
		{"mark watched", &s.markWatched, `INSERT INTO watched (section, media_id, total_size, date_added)
			VALUES (?,?,?,?) ON CONFLICT(section, media_id) DO UPDATE SET
				total_size = excluded.total_size,
				date_added = excluded.date_added`},
		{"get watched", &s.getWatched, `SELECT total_size, date_added FROM watched
			WHERE section = ? AND media_id = ?`},
		{"add history", &s.addHistory, `INSERT INTO history (section, media_id, title, poster, at)
			VALUES (?,?,?,?,?) ON CONFLICT(section, media_id) DO UPDATE SET
				title = excluded.title,
				poster = excluded.poster,
				at = excluded.at`},
		{"trim history", &s.trimHistory, `DELETE FROM history WHERE rowid NOT IN (
			SELECT rowid FROM history ORDER BY at DESC, rowid DESC LIMIT ?)`},
	}
	for _, q := range queries {
		stmt, err := db.Prepare(q.query)
		if err != nil {
			_ = s.close()
			return nil, errors.Wrapf(err, "%s preparation failed", q.name)
		}
		*q.dst = stmt
	}
	return &s, nil
}

func (s *statements) all() []*sql.Stmt {
	return []*sql.Stmt{
		s.addBookmark, s.removeBookmark, s.hasBookmark,
		s.protect, s.unprotect,
		s.markWatched, s.getWatched,
		s.addHistory, s.trimHistory,
	}
}

func (s *statements) close() error {
	var finalErr error
	for _, stmt := range s.all() {
		if stmt == nil {
			continue
		}
		if err := stmt.Close(); err != nil {
			finalErr = errors.Wrap(err, "statement close error")
		}
	}
	return finalErr
}

func (s *Store) ready() error {
	if s == nil || s.db == nil || s.stmts == nil {
		return ErrClosed
	}
	return nil
}

// Close releases the prepared statements and the database
func (s *Store) Close() error {
	if err := s.ready(); err != nil {
		return err
	}
	finalErr := s.stmts.close()
	if err := s.db.Close(); err != nil {
		finalErr = errors.Wrap(err, "database close error")
	}
	s.stmts = nil
	s.db = nil
	return finalErr
}

// Available reports whether the sqlite driver is compiled in
func Available() bool { return cgoEnabled }
