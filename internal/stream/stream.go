// Package stream hands catalog torrents to an external torrent player
package stream

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/alvarorichard/mediapoisk/internal/models"
)

var ErrNoLink = errors.New("no torrent link")

// Downloader fetches a binary payload, the scraper HTTP client is one
type Downloader interface {
	Download(ctx context.Context, url string) ([]byte, error)
}

// Torrent is a downloaded .torrent file
type Torrent struct {
	Name string
	Data []byte
}

// Provider plays one file of a torrent and blocks until playback ends
type Provider interface {
	Play(ctx context.Context, t Torrent, fileIndex int) error
}

// FetchTorrent downloads the torrent behind link
func FetchTorrent(ctx context.Context, d Downloader, link string) (Torrent, error) {
	if link == "" {
		return Torrent{}, errors.WithStack(ErrNoLink)
	}
	data, err := d.Download(ctx, link)
	if err != nil {
		return Torrent{}, errors.Wrap(err, "downloading torrent")
	}
	if len(data) == 0 {
		return Torrent{}, errors.Errorf("empty torrent at %s", link)
	}
	return Torrent{Name: torrentName(link), Data: data}, nil
}

// PlayFile streams a single file. Its link serves a torrent holding just
// that file.
func PlayFile(ctx context.Context, d Downloader, p Provider, file models.File) error {
	t, err := FetchTorrent(ctx, d, file.Link)
	if err != nil {
		return err
	}
	return p.Play(ctx, t, 0)
}

// PlayFolder streams one file out of the whole-folder torrent
func PlayFolder(ctx context.Context, d Downloader, p Provider, folder models.Folder, fileID int) error {
	index := -1
	for i, f := range folder.Files {
		if f.ID == fileID {
			index = i
			break
		}
	}
	if index < 0 {
		return errors.Errorf("folder %d has no file %d", folder.ID, fileID)
	}
	t, err := FetchTorrent(ctx, d, folder.Link)
	if err != nil {
		return err
	}
	return p.Play(ctx, t, index)
}

// SaveTorrent downloads the torrent behind link into dir and returns the
// written path
func SaveTorrent(ctx context.Context, d Downloader, link, dir string) (string, error) {
	t, err := FetchTorrent(ctx, d, link)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(err, "creating download directory")
	}
	dst := filepath.Join(dir, t.Name)
	if err := os.WriteFile(dst, t.Data, 0o644); err != nil {
		return "", errors.Wrap(err, "writing torrent")
	}
	return dst, nil
}

// torrentName derives a file name from the playlist link query,
// e.g. /playlist.php?cid=21&fid=501 gives 21_501.torrent
func torrentName(link string) string {
	base := path.Base(link)
	if _, query, ok := strings.Cut(base, "?"); ok {
		var parts []string
		for _, kv := range strings.Split(query, "&") {
			if _, v, ok := strings.Cut(kv, "="); ok && v != "" {
				parts = append(parts, v)
			}
		}
		if len(parts) > 0 {
			return sanitize(strings.Join(parts, "_")) + ".torrent"
		}
	}
	name := sanitize(strings.TrimSuffix(base, ".torrent"))
	if name == "" || name == "." || name == "/" {
		name = "mediapoisk"
	}
	return name + ".torrent"
}

func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, s)
}
