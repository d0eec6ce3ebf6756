package scraper

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"

	"github.com/alvarorichard/mediapoisk/internal/enums"
	"github.com/alvarorichard/mediapoisk/internal/models"
)

var fileIDRe = regexp.MustCompile(`fid=(\d+)`)

const playlistLink = `a[href^="/playlist.php"]`

// Folder property names, the part before the colon
const (
	propLanguage          = "Язык"
	propAudioQuality      = "Качество звука"
	propVideoQuality      = "Качество изображения"
	propEmbeddedSubtitles = "Встроенные субтитры"
	propExternalSubtitles = "Внешние или отключаемые субтитры"
	propFileSize          = "Размер файлов"
)

// parseFolders reads every "copy" block of a title page. The files table
// on the page belongs to the displayed folder, so it is only attached when
// the page has a single folder.
func (p *pageParser) parseFolders(doc *goquery.Document, section enums.Section, mediaID int) []models.Folder {
	copiesTable := doc.Find("table.copies").First()
	copies := copiesTable.Find("table.copy")
	if copies.Length() == 0 {
		p.logger.Warn("No folders found", "media", mediaID)
		return nil
	}
	inlineFiles := copies.Length() == 1

	var folders []models.Folder
	copies.Each(func(_ int, c *goquery.Selection) {
		p.guard("folder", func() error {
			folder, err := p.parseFolder(c, section, mediaID)
			if err != nil {
				return err
			}
			if inlineFiles {
				folder.Files = p.parseFiles(copiesTable, section, mediaID, folder.ID)
			}
			folders = append(folders, folder)
			return nil
		})
	})
	return folders
}

func (p *pageParser) parseFolder(c *goquery.Selection, section enums.Section, mediaID int) (models.Folder, error) {
	rawID, _ := c.Attr("id")
	id, err := strconv.Atoi(strings.TrimPrefix(rawID, "copy"))
	if err != nil {
		return models.Folder{}, errors.Errorf("invalid folder id %q", rawID)
	}

	f := models.Folder{ID: id, MediaID: mediaID, Section: section}

	titleTd := c.Find("td.copy_title").First()
	for _, alt := range attrs(titleTd.Find("img"), "alt") {
		if flag, ok := enums.FindFlag(alt); ok {
			f.Flag = flag
		}
		if format, ok := enums.FindFormat(alt); ok {
			f.Format = format
		}
	}
	f.Title = clean(titleTd.Text())

	if link, ok := c.Find("td.server " + playlistLink).First().Attr("href"); ok && link != "" {
		f.Link = p.baseURL + link
	} else {
		p.warn("torrent link is undefined", "folder", id)
	}

	c.Find("td.br p").Each(func(_ int, prop *goquery.Selection) {
		name, val, _ := strings.Cut(beforeText(prop), ":")
		name, val = clean(name), clean(val)
		p.guard("folder property "+name, func() error {
			p.applyFolderProperty(&f, prop, name, val)
			return nil
		})
	})

	if f.Format != 0 {
		f.Quality.Format = enums.Known(f.Format)
	}
	p.logger.Debug("parsed folder", "id", f.ID, "title", f.Title)
	return f, nil
}

func (p *pageParser) applyFolderProperty(f *models.Folder, prop *goquery.Selection, name, val string) {
	flags := func() []string { return attrs(prop.Find("img.flag"), "alt") }

	switch name {
	case propLanguage:
		f.Languages = resolveAll(p, "audio language", enums.FindLanguage, flags())
	case propAudioQuality:
		f.Quality.Audio = resolve(p, "audio quality", enums.FindAudioQuality, val)
	case propVideoQuality:
		f.Quality.Video = resolve(p, "video quality", enums.FindVideoQuality, val)
	case propEmbeddedSubtitles:
		f.EmbeddedSubtitles = resolveAll(p, "embedded subtitles language", enums.FindLanguage, flags())
	case propExternalSubtitles:
		f.ExternalSubtitles = resolveAll(p, "external subtitles language", enums.FindLanguage, flags())
	case propFileSize:
		size, err := parseSize(val)
		if err != nil {
			p.warn("can't parse size", "value", val, "err", err)
			return
		}
		f.Size = size
	default:
		p.warn("unknown folder property", "name", name)
	}
}

// parseFiles reads the files table under sel, skipping the header row
func (p *pageParser) parseFiles(sel *goquery.Selection, section enums.Section, mediaID, folderID int) []models.File {
	rows := sel.Find("tr.files tr")
	if rows.Length() < 2 {
		p.logger.Warn("No files found", "media", mediaID, "folder", folderID)
		return nil
	}

	var files []models.File
	rows.Slice(1, goquery.ToEnd).Each(func(_ int, row *goquery.Selection) {
		p.guard("file row", func() error {
			file, ok, err := p.parseFileRow(row, section, mediaID, folderID)
			if err != nil {
				return err
			}
			if ok {
				files = append(files, file)
			}
			return nil
		})
	})
	return files
}

func (p *pageParser) parseFileRow(row *goquery.Selection, section enums.Section, mediaID, folderID int) (models.File, bool, error) {
	cols := row.Find("td")

	link, ok := cols.Eq(1).Find(playlistLink).First().Attr("href")
	if !ok || link == "" {
		p.warn("no link to torrent file found, skipping")
		return models.File{}, false, nil
	}
	m := fileIDRe.FindStringSubmatch(link)
	if m == nil {
		p.warn("invalid torrent link", "link", link)
		return models.File{}, false, nil
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return models.File{}, false, errors.Wrapf(err, "invalid file id in %q", link)
	}

	file := models.File{
		ID:         id,
		MediaID:    mediaID,
		FolderID:   folderID,
		Title:      clean(cols.Eq(2).Text()),
		Link:       p.baseURL + link,
		FileFormat: clean(cols.Eq(5).Text()),
		Section:    section,
	}
	flagAlt, _ := cols.Eq(0).Find("img").First().Attr("alt")
	file.Flag, _ = enums.FindFlag(flagAlt)

	if d := clean(cols.Eq(4).Text()); d != "" {
		if file.Duration, err = parseDuration(d); err != nil {
			return models.File{}, false, err
		}
	}

	if r := clean(cols.Eq(6).Text()); r != "" {
		w, h, _ := strings.Cut(r, "x")
		width, errW := strconv.Atoi(clean(w))
		height, errH := strconv.Atoi(clean(h))
		if errW != nil || errH != nil {
			p.warn("invalid resolution", "value", r)
		} else {
			file.Resolution = [2]int{width, height}
		}
	}
	return file, true, nil
}
