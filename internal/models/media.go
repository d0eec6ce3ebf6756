// Package models contains the catalog records produced by the scraper
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/alvarorichard/mediapoisk/internal/enums"
)

// MediaKey identifies a title inside the catalog
type MediaKey struct {
	Section enums.Section
	ID      int
}

func (k MediaKey) String() string {
	return fmt.Sprintf("%s/%d", k.Section.Token(), k.ID)
}

// Quality groups the format and the video/audio tiers of a release.
// Any of the three may be unset when the page did not carry it.
type Quality struct {
	Format enums.Label
	Video  enums.Label
	Audio  enums.Label
}

// Media is one row of a search results page
type Media struct {
	ID            int
	Title         string
	OriginalTitle []string
	Date          time.Time // date the title was added to the catalog
	Flag          enums.Flag
	Quality       Quality
	Genres        []enums.Label
	Languages     []enums.Label
	Countries     []enums.Label
	Year          string
	Rating        string // one decimal place, empty when unrated
	UserRating    string
	Section       enums.Section
}

// Key returns the catalog key of the row
func (m Media) Key() MediaKey {
	return MediaKey{Section: m.Section, ID: m.ID}
}

// Details is the full metadata of a title
type Details struct {
	Title             string
	OriginalTitle     []string
	Countries         []enums.Label
	Year              string
	ReleaseDate       string
	ReleaseDateRussia string
	Studios           []string
	Genres            []enums.Label
	Plot              string
	Creators          []string
	Actors            []string
	VoiceArtists      []string
	Rating            string
	UserRating        string
	Poster            string
	MediaID           int
	Section           enums.Section
	Screenshots       []string
}

// Key returns the catalog key of the title
func (d Details) Key() MediaKey {
	return MediaKey{Section: d.Section, ID: d.MediaID}
}

// Premiered prefers the Russian release date, like the site itself does
func (d Details) Premiered() string {
	if d.ReleaseDateRussia != "" {
		return d.ReleaseDateRussia
	}
	return d.ReleaseDate
}

// GenresDisplay returns genres joined for display
func (d Details) GenresDisplay() string {
	return JoinLabels(d.Genres, " / ")
}

// Folder is one release variant of a title. It owns its files.
type Folder struct {
	ID                int
	MediaID           int
	Title             string
	Flag              enums.Flag
	Link              string // torrent for the whole folder
	Quality           Quality
	Languages         []enums.Label
	Format            enums.Format
	EmbeddedSubtitles []enums.Label
	ExternalSubtitles []enums.Label
	Size              int64 // bytes, as reported by the page
	Files             []File
	Section           enums.Section
}

// File is one playable item of a folder
type File struct {
	ID         int
	MediaID    int
	FolderID   int
	Title      string
	Flag       enums.Flag
	Link       string
	FileFormat string
	Duration   int // seconds
	Resolution [2]int
	Section    enums.Section
}

// TotalSize sums the reported sizes of the folders
func TotalSize(folders []Folder) int64 {
	var total int64
	for _, f := range folders {
		total += f.Size
	}
	return total
}

// FindFolder returns the folder with the given id
func FindFolder(folders []Folder, id int) (Folder, bool) {
	for _, f := range folders {
		if f.ID == id {
			return f, true
		}
	}
	return Folder{}, false
}

// JoinLabels formats labels for display
func JoinLabels(labels []enums.Label, sep string) string {
	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		parts = append(parts, l.String())
	}
	return strings.Join(parts, sep)
}
