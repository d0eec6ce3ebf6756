package titleformat

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/alvarorichard/mediapoisk/internal/enums"
	"github.com/alvarorichard/mediapoisk/internal/models"
)

func plain(opts Options) *Formatter {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return NewWithRenderer(opts, r)
}

func TestDeclensionRu(t *testing.T) {
	t.Parallel()

	tests := map[int]string{
		0: "файлов", 1: "файл", 2: "файла", 4: "файла", 5: "файлов",
		11: "файлов", 12: "файлов", 19: "файлов", 21: "файл", 22: "файла",
		101: "файл", 111: "файлов", 114: "файлов", 1000: "файлов",
	}
	for n, want := range tests {
		assert.Equal(t, want, DeclensionRu(n, "файл", "файла", "файлов"), n)
	}
	assert.Equal(t, "3 файла", FileCount(3))
}

func TestHumanDuration(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "00:00", HumanDuration(0))
	assert.Equal(t, "01:30", HumanDuration(90))
	assert.Equal(t, "59:59", HumanDuration(3599))
	assert.Equal(t, "1:00:00", HumanDuration(3600))
	assert.Equal(t, "2:05:09", HumanDuration(7509))
}

func TestHumanSize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0 B", HumanSize(0))
	assert.Equal(t, "700 MiB", HumanSize(734003200))
	assert.Equal(t, "1.5 GiB", HumanSize(1610612736))
	assert.Equal(t, "0 B", HumanSize(-1))
}

func TestFlagLabel(t *testing.T) {
	t.Parallel()

	f := plain(Options{})
	assert.Equal(t, "+", f.FlagLabel(enums.FlagNewSeries))
	assert.Equal(t, "^", f.FlagLabel(enums.FlagQualityUpdated))
	assert.Equal(t, "*", f.FlagLabel(enums.FlagRecentlyAdded))
	assert.Equal(t, "  ", f.FlagLabel(0))
}

func TestMediaTitle(t *testing.T) {
	t.Parallel()

	m := models.Media{
		Title:         "Начало",
		OriginalTitle: []string{"Inception"},
		Flag:          enums.FlagRecentlyAdded,
		Year:          "2010",
		Rating:        "8.7",
		Genres:        enums.Labels(enums.GenreAction, enums.GenreFiction),
		Countries:     enums.Labels(enums.CountryUSA),
		Quality:       models.Quality{Format: enums.Known(enums.FormatHD)},
	}

	got := plain(DefaultOptions()).MediaTitle(m)
	assert.Equal(t, "* (8.7) Начало / 2010, "+enums.GenreAction.String()+"/"+enums.GenreFiction.String()+
		", "+enums.CountryUSA.String()+" ["+enums.FormatHD.String()+"]", got)

	bare := plain(Options{ShowOriginalTitle: true}).MediaTitle(m)
	assert.Equal(t, "* Начало / Inception / 2010", bare)
}

func TestFolderAndFileTitles(t *testing.T) {
	t.Parallel()

	folder := models.Folder{
		Title:   "Сезон 1",
		Flag:    enums.FlagNewSeries,
		Size:    1610612736,
		Quality: models.Quality{Video: enums.Raw("HD-рип"), Audio: enums.Raw("дубляж")},
		Files:   make([]models.File, 21),
	}
	f := plain(Options{ShowVideoQuality: true, ShowTotalSize: true, ShowDuration: true})
	assert.Equal(t, "+ Сезон 1 / 21 файл, HD-рип, 1.5 GiB", f.FolderTitle(folder))

	folder.Format = enums.FormatHD
	assert.Equal(t, "+ Сезон 1 / 21 файл, HD-рип, 1280x720, 1.5 GiB", f.FolderTitle(folder))
	folder.Format = 0

	file := models.File{Title: "Серия 1", FileFormat: "MKV", Duration: 2710}
	assert.Equal(t, "   Серия 1 / MKV [45:10]", f.FileTitle(file))
	assert.Equal(t, "+ Серия 1 / MKV, HD-рип [45:10]", f.FolderFileTitle(folder, file))
}

func TestBookmarkTitle(t *testing.T) {
	t.Parallel()

	d := models.Details{Title: "Доктор Кто", Year: "2005", Rating: "8.6", Section: enums.SectionSeries}
	folders := []models.Folder{
		{Format: enums.FormatHD},
		{Format: enums.FormatHD, Flag: enums.FlagQualityUpdated},
		{Format: enums.FormatAVI, Flag: enums.FlagNewSeries},
	}

	got := plain(Options{ShowRating: true, ShowVideoQuality: true}).BookmarkTitle(d, folders)
	assert.Equal(t, "^ (8.6) Доктор Кто / 2005 / Сериал ["+enums.FormatHD.String()+"/"+enums.FormatAVI.String()+"]", got)
}
