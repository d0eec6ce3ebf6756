package util

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const helpWidth = 78

type helpEntry struct {
	usage string
	text  string
}

type helpBlock struct {
	heading string
	entries []helpEntry
	example bool
}

// helpTheme renders the help page. Accent matches the logger prefix.
type helpTheme struct {
	banner  lipgloss.Style
	tagline lipgloss.Style
	rule    lipgloss.Style
	heading lipgloss.Style
	usage   lipgloss.Style
	example lipgloss.Style
	text    lipgloss.Style
}

func newHelpTheme() helpTheme {
	var (
		accent = lipgloss.Color("#6366F1")
		teal   = lipgloss.Color("#2DD4BF")
		amber  = lipgloss.Color("#FBBF24")
		muted  = lipgloss.AdaptiveColor{Light: "#52525B", Dark: "#A1A1AA"}
		faint  = lipgloss.AdaptiveColor{Light: "#A1A1AA", Dark: "#52525B"}
	)
	return helpTheme{
		banner:  lipgloss.NewStyle().Foreground(accent).Bold(true).MarginLeft(1),
		tagline: lipgloss.NewStyle().Foreground(muted).MarginLeft(1).MarginBottom(1),
		rule:    lipgloss.NewStyle().Foreground(faint),
		heading: lipgloss.NewStyle().Foreground(amber).Bold(true).MarginLeft(1),
		usage:   lipgloss.NewStyle().Foreground(teal).PaddingLeft(3),
		example: lipgloss.NewStyle().Foreground(teal).Italic(true).PaddingLeft(3),
		text:    lipgloss.NewStyle().Foreground(muted).PaddingLeft(7).Width(helpWidth),
	}
}

var helpBlocks = []helpBlock{
	{heading: "Usage", entries: []helpEntry{
		{"mediapoisk [options] <command> [arguments]", "Sections are video, series or anime."},
	}},
	{heading: "Commands", entries: []helpEntry{
		{"search <section> [flags] [name...]", "Search the catalog with filters and paging. Flags: -skip, -page, -genre, -country, -lang, -year-from, -year-to, -rating-from, -rating-to, -user-rating-from, -user-rating-to, -people, -studio, -order, -desc. Lists take comma separated values."},
		{"details <section> <id>", "Show the description of a title and add it to the history."},
		{"folders <section> <id>", "List the releases of a title."},
		{"files <section> <id> <folder>", "List the files of one release."},
		{"play <section> <id> <folder> <file>", "Stream a file through the torrent player."},
		{"playfolder <section> <id> <folder> [file]", "Load the torrent of the whole release and start at a file, the first one by default."},
		{"torrent <section> <id> <folder> [dir]", "Save the torrent of a whole release under the section's folder."},
		{"bookmarks [section]", "List saved titles."},
		{"bookmark <section> <id>", "Save a title, or remove it when already saved."},
		{"history [section|clear]", "List recently opened titles, or forget them."},
		{"unwatch <section> <id>", "Clear the watched mark of a title."},
		{"refresh <section> <id>", "Drop the cached pages of a title and fetch it again."},
		{"autorefresh <section> <id>", "Toggle whether the cached pages of a title expire."},
	}},
	{heading: "Options", entries: []helpEntry{
		{"-config <path>", "Config file, or a directory holding config.yaml."},
		{"-debug", "Enable debug logging and detailed error output."},
		{"-help, -h", "Display this help message."},
		{"-version", "Show version information."},
	}},
	{heading: "Examples", example: true, entries: []helpEntry{
		{`mediapoisk search anime -genre comedy -order rating -desc "cowboy bebop"`, "Best rated matches first"},
		{"mediapoisk search video -year-from 1990 -year-to 1999 -page 2", "Second page of nineties movies"},
		{"mediapoisk -debug playfolder series 88 501", "Stream a season from its first episode"},
		{"MEDIAPOISK_SCRAPER_TIMEOUT=30s mediapoisk bookmarks", "Override a setting from the environment"},
	}},
}

// WriteHelp renders the usage page to w
func WriteHelp(w io.Writer) error {
	th := newHelpTheme()
	rule := th.rule.Render(strings.Repeat("·", helpWidth))

	var b strings.Builder
	b.WriteString(th.banner.Render("mediapoisk: torrent catalog browser") + "\n")
	b.WriteString(th.tagline.Render("Search movies, series and anime, keep bookmarks and stream releases from the terminal.") + "\n")
	for _, block := range helpBlocks {
		b.WriteString(rule + "\n")
		b.WriteString(th.heading.Render(block.heading) + "\n")
		lead := th.usage
		if block.example {
			lead = th.example
		}
		for _, e := range block.entries {
			b.WriteString(lead.Render(e.usage) + "\n")
			b.WriteString(th.text.Render(e.text) + "\n")
		}
		b.WriteString("\n")
	}
	_, err := fmt.Fprint(w, b.String())
	return err
}

// ShowBeautifulHelp prints the usage page to stdout
func ShowBeautifulHelp() {
	_ = WriteHelp(os.Stdout)
}
