package scraper

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/sourcegraph/conc/panics"

	"github.com/alvarorichard/mediapoisk/internal/enums"
)

// pageParser holds the state of one page parse. Anomalies are logged and
// counted, never returned.
type pageParser struct {
	logger   *log.Logger
	baseURL  string
	warnings int
}

func newPageParser(logger *log.Logger, baseURL string) *pageParser {
	return &pageParser{logger: logger, baseURL: baseURL}
}

func (p *pageParser) warn(msg string, keyvals ...interface{}) {
	p.warnings++
	p.logger.Warn(msg, keyvals...)
}

// guard runs fn as one isolated unit. An error or a panic inside fn is
// logged and counted and guard reports false.
func (p *pageParser) guard(what string, fn func() error) bool {
	var (
		pc  panics.Catcher
		err error
	)
	pc.Try(func() { err = fn() })
	if r := pc.Recovered(); r != nil {
		err = r.AsError()
	}
	if err != nil {
		p.warn("failed to parse "+what, "err", err)
		return false
	}
	return true
}

// resolve looks raw up in a closed set, keeping the raw text on a miss
func resolve[T enums.Attribute](p *pageParser, kind string, find func(string) (T, bool), raw string) enums.Label {
	l, ok := enums.Resolve(find, raw)
	if !ok {
		p.warn("unknown "+kind, "value", raw)
	}
	return l
}

func resolveAll[T enums.Attribute](p *pageParser, kind string, find func(string) (T, bool), raws []string) []enums.Label {
	labels := make([]enums.Label, 0, len(raws))
	for _, raw := range raws {
		labels = append(labels, resolve(p, kind, find, raw))
	}
	return labels
}

func newDocument(body []byte) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse HTML")
	}
	return doc, nil
}

func clean(s string) string {
	return strings.TrimSpace(s)
}

// beforeText joins the direct text of the first node in s up to its first child element
func beforeText(s *goquery.Selection) string {
	var b strings.Builder
	s.First().Contents().EachWithBreak(func(_ int, n *goquery.Selection) bool {
		if goquery.NodeName(n) != "#text" {
			return false
		}
		b.WriteString(n.Text())
		return true
	})
	return clean(b.String())
}

// afterText joins the direct text of the first node in s after its last child element
func afterText(s *goquery.Selection) string {
	var parts []string
	s.First().Contents().Each(func(_ int, n *goquery.Selection) {
		if goquery.NodeName(n) != "#text" {
			parts = parts[:0]
			return
		}
		parts = append(parts, n.Text())
	})
	return clean(strings.Join(parts, ""))
}

// textNodes returns every non-blank text fragment under s
func textNodes(s *goquery.Selection) []string {
	var out []string
	var walk func(*goquery.Selection)
	walk = func(sel *goquery.Selection) {
		sel.Contents().Each(func(_ int, n *goquery.Selection) {
			if goquery.NodeName(n) == "#text" {
				if t := clean(n.Text()); t != "" {
					out = append(out, t)
				}
				return
			}
			walk(n)
		})
	}
	walk(s)
	return out
}

// texts returns the trimmed text of each element in s
func texts(s *goquery.Selection) []string {
	out := make([]string, 0, s.Length())
	s.Each(func(_ int, e *goquery.Selection) {
		if t := clean(e.Text()); t != "" {
			out = append(out, t)
		}
	})
	return out
}

// attrs returns attribute name of each element in s that carries it
func attrs(s *goquery.Selection, name string) []string {
	out := make([]string, 0, s.Length())
	s.Each(func(_ int, e *goquery.Selection) {
		if v, ok := e.Attr(name); ok {
			out = append(out, clean(v))
		}
	})
	return out
}

func splitList(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if part = clean(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

var sizeUnits = map[string]float64{
	"mb": 1 << 20, "мб": 1 << 20,
	"gb": 1 << 30, "гб": 1 << 30,
	"tb": 1 << 40, "тб": 1 << 40,
}

// parseSize reads "734003200", "700 MB" or "1.5 ГБ" as a byte count
func parseSize(s string) (int64, error) {
	s = clean(s)
	if s != "" && strings.Trim(s, "0123456789") == "" {
		return strconv.ParseInt(s, 10, 64)
	}

	runes := []rune(s)
	if len(runes) < 3 {
		return 0, errors.Errorf("invalid size %q", s)
	}
	unit := strings.ToLower(string(runes[len(runes)-2:]))
	mult, ok := sizeUnits[unit]
	if !ok {
		return 0, errors.Errorf("unknown size unit in %q", s)
	}
	num := strings.ReplaceAll(clean(string(runes[:len(runes)-2])), ",", ".")
	n, err := strconv.ParseFloat(num, 64)
	if err != nil || n < 0 {
		return 0, errors.Errorf("invalid size %q", s)
	}
	return int64(math.Floor(n * mult)), nil
}

var durationWeights = []int{1, 60, 3600, 86400}

// parseDuration reads [[[days:]hours:]minutes:]seconds as seconds
func parseDuration(s string) (int, error) {
	parts := strings.Split(clean(s), ":")
	if len(parts) > len(durationWeights) {
		return 0, errors.Errorf("invalid duration %q", s)
	}
	total := 0
	for i, part := range parts {
		n, err := strconv.Atoi(clean(part))
		if err != nil || n < 0 {
			return 0, errors.Errorf("invalid duration %q", s)
		}
		total += n * durationWeights[len(parts)-1-i]
	}
	return total, nil
}

// formatRating normalizes a rating to one decimal, "" when unrated
func formatRating(s string) (string, error) {
	s = clean(s)
	if s == "" {
		return "", nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return "", errors.Errorf("invalid rating %q", s)
	}
	r := strconv.FormatFloat(v, 'f', 1, 64)
	if r == "0.0" {
		return "", nil
	}
	return r, nil
}
