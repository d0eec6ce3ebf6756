package models

import (
	"time"

	"github.com/alvarorichard/mediapoisk/internal/enums"
)

// Bookmark is a title saved by the user
type Bookmark struct {
	Section enums.Section
	MediaID int
	AddedAt time.Time
}

// Key returns the catalog key of the bookmarked title
func (b Bookmark) Key() MediaKey {
	return MediaKey{Section: b.Section, ID: b.MediaID}
}

// HistoryEntry is a recently opened title
type HistoryEntry struct {
	Section enums.Section
	MediaID int
	Title   string
	Poster  string
	At      time.Time
}

// Key returns the catalog key of the visited title
func (h HistoryEntry) Key() MediaKey {
	return MediaKey{Section: h.Section, ID: h.MediaID}
}

// WatchedMarker pins what a title looked like when it was marked watched.
// Series are re-marked unwatched once the catalog reports more data or a
// newer addition date than the marker.
type WatchedMarker struct {
	TotalSize int64
	DateAdded time.Time
}
