package util

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogOptions controls where and how much the logger writes
type LogOptions struct {
	Level      string // debug, info, warn, error
	File       string // optional rotating log file
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// getColoredPrefix returns a styled prefix with colors
func getColoredPrefix() string {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#C0392B")).
		Bold(true).
		Padding(0, 1).
		MarginRight(1)
	return style.Render("MediaPoisk")
}

// NewLogger builds a charmbracelet logger writing to stderr and, when
// configured, to a rotating log file.
func NewLogger(opts LogOptions) *log.Logger {
	var out io.Writer = os.Stderr
	if opts.File != "" {
		out = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    orDefault(opts.MaxSizeMB, 5),
			MaxBackups: orDefault(opts.MaxBackups, 3),
			MaxAge:     orDefault(opts.MaxAgeDays, 28),
		})
	}

	level, err := log.ParseLevel(opts.Level)
	if err != nil {
		level = log.InfoLevel
	}
	debug := IsDebug || level == log.DebugLevel
	if IsDebug {
		level = log.DebugLevel
	}

	l := log.NewWithOptions(out, log.Options{
		ReportCaller:    debug,
		ReportTimestamp: debug || opts.File != "",
		TimeFormat:      "15:04:05",
		Prefix:          getColoredPrefix(),
		Level:           level,
	})
	l.SetColorProfile(termenv.TrueColor)
	return l
}

// InitLogger builds the process logger and installs it as the
// charmbracelet default
func InitLogger(opts LogOptions) *log.Logger {
	l := NewLogger(opts)
	log.SetDefault(l)
	l.Debug("Debug logging enabled with charmbracelet/log")
	return l
}

// Discard returns a logger that drops everything, for tests and library use
func Discard() *log.Logger {
	return log.New(io.Discard)
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
