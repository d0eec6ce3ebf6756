package scraper

import (
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"

	"github.com/alvarorichard/mediapoisk/internal/enums"
	"github.com/alvarorichard/mediapoisk/internal/models"
)

const (
	noResultsMarker = "Ничего не найдено"
	dateLayout      = "02.01.2006"
)

// parseSearch reads a media_page.php results table. hasMore is true when
// the pager does not end with the current page.
func (p *pageParser) parseSearch(doc *goquery.Document, section enums.Section) (results []models.Media, hasMore bool) {
	table := doc.Find("table.zebra").First()
	navbar := table.Find("tr.navbar").First()
	if navbar.Length() == 0 {
		p.warn("search results table not found")
		return nil, false
	}

	navText := clean(navbar.Text())
	if strings.Contains(navText, noResultsMarker) {
		p.logger.Info("No results found")
		return nil, false
	}
	current := clean(navbar.Find("b").First().Text())
	hasMore = !strings.HasSuffix(navText, current)

	table.Find("tr.even, tr.odd").Each(func(_ int, row *goquery.Selection) {
		p.guard("search row", func() error {
			media, err := p.parseSearchRow(row, section)
			if err != nil {
				return err
			}
			results = append(results, media)
			return nil
		})
	})
	return results, hasMore
}

func (p *pageParser) parseSearchRow(row *goquery.Selection, section enums.Section) (models.Media, error) {
	cols := row.ChildrenFiltered("td")
	n := cols.Length()
	if n < 9 {
		return models.Media{}, errors.Errorf("expected at least 9 columns, got %d", n)
	}

	titleTd := cols.Eq(2)
	link, _ := titleTd.Find("a").First().Attr("href")
	id, err := strconv.Atoi(link[strings.LastIndex(link, "=")+1:])
	if err != nil {
		return models.Media{}, errors.Errorf("no media id in link %q", link)
	}

	rating, err := formatRating(cols.Eq(n - 2).Text())
	if err != nil {
		return models.Media{}, err
	}
	userRating, err := formatRating(cols.Eq(n - 1).Text())
	if err != nil {
		return models.Media{}, err
	}

	added, _ := cols.Eq(1).Find("span").First().Attr("title")
	added, _, _ = strings.Cut(clean(added), " ")
	date, err := time.Parse(dateLayout, added)
	if err != nil {
		return models.Media{}, errors.Wrap(err, "invalid date")
	}

	flagAlt, _ := cols.Eq(0).Find("img").First().Attr("title")
	flag, _ := enums.FindFlag(flagAlt)

	quality, err := p.parseSearchQuality(cols.Eq(3))
	if err != nil {
		return models.Media{}, err
	}

	media := models.Media{
		ID:            id,
		Title:         clean(titleTd.Find("span.title").First().Text()),
		OriginalTitle: textNodes(titleTd.Find("span.subtitle").First()),
		Date:          date,
		Flag:          flag,
		Quality:       quality,
		Languages:     resolveAll(p, "language", enums.FindLanguage, attrs(cols.Eq(4).Find("img"), "alt")),
		Genres:        resolveAll(p, "genre", enums.FindGenre, texts(cols.Eq(5).Find("a"))),
		Countries:     resolveAll(p, "country", enums.FindCountry, texts(cols.Eq(6).Find("a"))),
		Year:          clean(cols.Eq(7).Text()),
		Rating:        rating,
		UserRating:    userRating,
		Section:       section,
	}
	p.logger.Debug("parsed media", "id", media.ID, "title", media.Title)
	return media, nil
}

// parseSearchQuality reads the format icon and the "Видео: X, Звук: Y" tooltip
func (p *pageParser) parseSearchQuality(td *goquery.Selection) (models.Quality, error) {
	fmtAlt, _ := td.Find("img").First().Attr("alt")
	tooltip, _ := td.Find("span").First().Attr("title")

	videoPart, audioPart, ok := strings.Cut(tooltip, ",")
	if !ok {
		return models.Quality{}, errors.Errorf("invalid quality tooltip %q", tooltip)
	}
	_, video, okVideo := strings.Cut(videoPart, ": ")
	_, audio, okAudio := strings.Cut(audioPart, ": ")
	if !okVideo || !okAudio {
		return models.Quality{}, errors.Errorf("invalid quality tooltip %q", tooltip)
	}

	return models.Quality{
		Format: resolve(p, "format", enums.FindFormat, clean(fmtAlt)),
		Video:  resolve(p, "video quality", enums.FindVideoQuality, clean(video)),
		Audio:  resolve(p, "audio quality", enums.FindAudioQuality, clean(audio)),
	}, nil
}
