package scraper

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"

	"github.com/alvarorichard/mediapoisk/internal/enums"
	"github.com/alvarorichard/mediapoisk/internal/models"
)

var ratingRe = regexp.MustCompile(`\d+\.\d+`)

// Labels of the description blocks under the info bar
const (
	propReleaseDate       = "Дата премьеры:"
	propReleaseDateRussia = "Дата российской премьеры:"
	propStudio            = "Студия:"
	propCreators          = "Создатели:"
	propActors            = "В ролях:"
	propVoiceArtists      = "Роли озвучивали:"
	propSeries            = "Серии:"
)

// parseDetails reads the info block of media_show_page.php. A page without
// the info bar is not a title page and yields ErrNotFound.
func (p *pageParser) parseDetails(doc *goquery.Document, section enums.Section, mediaID int) (models.Details, error) {
	contents := doc.Find("td.contents").First()
	infoBar := contents.Find("table.infobar").First()
	if infoBar.Length() == 0 {
		return models.Details{}, notFoundError("No media found with ID %d", mediaID)
	}
	infoCols := infoBar.Find("td")

	d := models.Details{
		Title:         clean(infoCols.Eq(0).Find("span.title").First().Text()),
		OriginalTitle: textNodes(infoCols.Eq(0).Find("span.subtitle").First()),
		Genres:        resolveAll(p, "genre", enums.FindGenre, splitList(beforeText(infoCols.Eq(1)), ", ")),
		MediaID:       mediaID,
		Section:       section,
	}

	if rest := splitList(afterText(infoCols.Eq(1)), ", "); len(rest) > 0 {
		d.Countries = resolveAll(p, "country", enums.FindCountry, rest[:len(rest)-1])
		d.Year = rest[len(rest)-1]
	}

	d.UserRating = ratingRe.FindString(beforeText(infoCols.Eq(2)))
	d.Rating = ratingRe.FindString(afterText(infoCols.Eq(2)))

	contents.Find("p.property").Each(func(_ int, prop *goquery.Selection) {
		label := beforeText(prop)
		p.guard("description block "+label, func() error {
			value := prop.Find("span").First()
			switch label {
			case propReleaseDate:
				d.ReleaseDate = clean(value.Text())
			case propReleaseDateRussia:
				d.ReleaseDateRussia = clean(value.Text())
			case propStudio:
				d.Studios = texts(value.Find("a"))
			case propCreators:
				d.Creators = texts(value.Find("a"))
			case propActors:
				d.Actors = texts(value.Find("a"))
			case propVoiceArtists:
				d.VoiceArtists = texts(value.Find("a"))
			case propSeries:
			default:
				p.warn("unknown description block", "label", label)
			}
			return nil
		})
	})

	d.Plot = clean(contents.Find(`div[style^="display:table-cell;"]`).First().Text())
	d.Poster, _ = contents.Find("div.media_pic a").First().Attr("href")
	d.Screenshots = attrs(contents.Find("div#imgsContainer a"), "href")

	p.logger.Debug("parsed details", "id", mediaID, "title", d.Title)
	return d, nil
}
