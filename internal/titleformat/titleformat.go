// Package titleformat renders catalog records as one-line terminal labels
package titleformat

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/alvarorichard/mediapoisk/internal/enums"
	"github.com/alvarorichard/mediapoisk/internal/models"
)

// Options selects the optional parts of a label
type Options struct {
	ShowRating        bool
	ShowOriginalTitle bool
	ShowGenre         bool
	ShowCountry       bool
	ShowLanguage      bool
	ShowVideoQuality  bool
	ShowAudioQuality  bool
	ShowTotalSize     bool
	ShowDuration      bool
}

// DefaultOptions mirrors what the catalog pages show
func DefaultOptions() Options {
	return Options{
		ShowRating:       true,
		ShowGenre:        true,
		ShowCountry:      true,
		ShowVideoQuality: true,
		ShowTotalSize:    true,
		ShowDuration:     true,
	}
}

// Formatter builds labels. The renderer decides whether colours are emitted.
type Formatter struct {
	opts Options

	title      lipgloss.Style
	newSeries  lipgloss.Style
	newQuality lipgloss.Style
	recent     lipgloss.Style
}

// New creates a formatter writing for stdout's terminal
func New(opts Options) *Formatter {
	return NewWithRenderer(opts, lipgloss.NewRenderer(os.Stdout))
}

// NewWithRenderer creates a formatter for the given renderer
func NewWithRenderer(opts Options, r *lipgloss.Renderer) *Formatter {
	return &Formatter{
		opts:       opts,
		title:      r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")),
		newSeries:  r.NewStyle().Foreground(lipgloss.Color("#FFA500")),
		newQuality: r.NewStyle().Foreground(lipgloss.Color("#FFFF00")),
		recent:     r.NewStyle().Foreground(lipgloss.Color("#00FF00")),
	}
}

// FlagLabel is the one-character badge of a flag, two spaces when unset
func (f *Formatter) FlagLabel(flag enums.Flag) string {
	switch flag {
	case enums.FlagNewSeries:
		return f.newSeries.Render("+")
	case enums.FlagQualityUpdated:
		return f.newQuality.Render("^")
	case enums.FlagRecentlyAdded:
		return f.recent.Render("*")
	default:
		return "  "
	}
}

// MediaTitle labels a search result row
func (f *Formatter) MediaTitle(m models.Media) string {
	var b strings.Builder
	b.WriteString(f.FlagLabel(m.Flag))
	if f.opts.ShowRating && m.Rating != "" {
		fmt.Fprintf(&b, " (%s)", m.Rating)
	}
	b.WriteString(" " + f.title.Render(m.Title))
	if f.opts.ShowOriginalTitle && len(m.OriginalTitle) > 0 {
		b.WriteString(" / " + strings.Join(m.OriginalTitle, "/"))
	}
	b.WriteString(" / " + m.Year)
	if f.opts.ShowGenre {
		b.WriteString(", " + models.JoinLabels(m.Genres, "/"))
	}
	if f.opts.ShowCountry {
		b.WriteString(", " + models.JoinLabels(m.Countries, "/"))
	}
	if f.opts.ShowLanguage {
		b.WriteString(", " + models.JoinLabels(m.Languages, "/"))
	}
	if f.opts.ShowVideoQuality {
		fmt.Fprintf(&b, " [%s]", m.Quality.Format)
	}
	return b.String()
}

// BookmarkTitle labels a saved title from its details and folders. The
// flag is the first one set on any folder; formats are listed once each.
func (f *Formatter) BookmarkTitle(d models.Details, folders []models.Folder) string {
	var (
		flag    enums.Flag
		formats []string
		seen    = make(map[enums.Format]bool)
	)
	for _, folder := range folders {
		if flag == 0 && folder.Flag != 0 {
			flag = folder.Flag
		}
		if !seen[folder.Format] {
			seen[folder.Format] = true
			formats = append(formats, folder.Format.String())
		}
	}

	var b strings.Builder
	b.WriteString(f.FlagLabel(flag))
	if f.opts.ShowRating && d.Rating != "" {
		fmt.Fprintf(&b, " (%s)", d.Rating)
	}
	b.WriteString(" " + f.title.Render(d.Title))
	if f.opts.ShowOriginalTitle && len(d.OriginalTitle) > 0 {
		b.WriteString(" / " + strings.Join(d.OriginalTitle, "/"))
	}
	b.WriteString(" / " + d.Year)
	b.WriteString(" / " + SectionSingular(d.Section))
	if f.opts.ShowGenre {
		b.WriteString(", " + models.JoinLabels(d.Genres, "/"))
	}
	if f.opts.ShowCountry {
		b.WriteString(", " + models.JoinLabels(d.Countries, "/"))
	}
	if f.opts.ShowVideoQuality && len(formats) > 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(formats, "/"))
	}
	return b.String()
}

// FolderTitle labels a folder with its file count
func (f *Formatter) FolderTitle(folder models.Folder) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s / %s", f.FlagLabel(folder.Flag), f.title.Render(folder.Title), FileCount(len(folder.Files)))
	f.writeQuality(&b, folder.Quality)
	if dim := folder.Format.Dimensions(); f.opts.ShowVideoQuality && !dim.IsZero() {
		b.WriteString(", " + dim.String())
	}
	if f.opts.ShowTotalSize {
		b.WriteString(", " + HumanSize(folder.Size))
	}
	return b.String()
}

// FileTitle labels a file
func (f *Formatter) FileTitle(file models.File) string {
	s := fmt.Sprintf("%s %s / %s", f.FlagLabel(file.Flag), f.title.Render(file.Title), file.FileFormat)
	if f.opts.ShowDuration {
		s += " [" + HumanDuration(file.Duration) + "]"
	}
	return s
}

// FolderFileTitle labels the only file of a folder, carrying the
// folder's flag and quality
func (f *Formatter) FolderFileTitle(folder models.Folder, file models.File) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s / %s", f.FlagLabel(folder.Flag), f.title.Render(file.Title), file.FileFormat)
	f.writeQuality(&b, folder.Quality)
	if f.opts.ShowDuration {
		b.WriteString(" [" + HumanDuration(file.Duration) + "]")
	}
	return b.String()
}

func (f *Formatter) writeQuality(b *strings.Builder, q models.Quality) {
	if f.opts.ShowVideoQuality && !q.Video.IsZero() {
		b.WriteString(", " + q.Video.String())
	}
	if f.opts.ShowAudioQuality && !q.Audio.IsZero() {
		b.WriteString(", " + q.Audio.String())
	}
}

// HumanSize formats bytes with binary units
func HumanSize(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.IBytes(uint64(n))
}

// HumanDuration formats seconds as H:MM:SS, or MM:SS under an hour
func HumanDuration(total int) string {
	if total < 0 {
		total = 0
	}
	hours, minutes, seconds := total/3600, total/60%60, total%60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// DeclensionRu picks the Russian word form agreeing with n:
// one for 1, 21, 31..., few for 2-4, 22-24..., many otherwise and for 11-19.
func DeclensionRu(n int, one, few, many string) string {
	if n < 0 {
		n = -n
	}
	if n2 := n % 100; n2 >= 10 && n2 <= 19 {
		return many
	}
	switch n1 := n % 10; {
	case n1 == 1:
		return one
	case n1 >= 2 && n1 <= 4:
		return few
	default:
		return many
	}
}

// FileCount renders "N файл/файла/файлов"
func FileCount(n int) string {
	return fmt.Sprintf("%d %s", n, DeclensionRu(n, "файл", "файла", "файлов"))
}

var sectionSingular = map[enums.Section]string{
	enums.SectionMovies: "Фильм",
	enums.SectionSeries: "Сериал",
	enums.SectionAnime:  "Аниме",
}

// SectionSingular names one title of the section
func SectionSingular(s enums.Section) string {
	if name, ok := sectionSingular[s]; ok {
		return name
	}
	return s.String()
}
