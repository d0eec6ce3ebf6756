// Package enums contains the closed attribute sets used by the catalog:
// sections, formats, qualities, genres, countries, languages, flags and
// ordering keys.
package enums

import (
	"sort"
	"strconv"
	"strings"
)

// Attribute is one variant of a closed set.
type Attribute interface {
	ID() int
	Token() string
	LangID() int
	String() string
}

// variant describes a single member of a set.
// token is the value the site uses both in markup and in filter queries.
type variant struct {
	id    int
	name  string
	token string
	label string
}

type table[T ~int] struct {
	langBase int
	variants []variant
	byID     map[int]int
}

func newTable[T ~int](langBase int, vs ...variant) *table[T] {
	t := &table[T]{langBase: langBase, variants: vs, byID: make(map[int]int, len(vs))}
	for i, v := range vs {
		if _, dup := t.byID[v.id]; dup {
			panic("enums: duplicate id " + strconv.Itoa(v.id) + " for " + v.name)
		}
		t.byID[v.id] = i
	}
	return t
}

func (t *table[T]) get(v T) (variant, bool) {
	i, ok := t.byID[int(v)]
	if !ok {
		return variant{}, false
	}
	return t.variants[i], true
}

func (t *table[T]) token(v T) string {
	if vr, ok := t.get(v); ok {
		return vr.token
	}
	return ""
}

func (t *table[T]) label(v T) string {
	if vr, ok := t.get(v); ok {
		return vr.label
	}
	return ""
}

func (t *table[T]) langID(v T) int {
	return t.langBase + int(v)
}

// find resolves an id, a token or a label. Ids and tokens win over labels.
func (t *table[T]) find(what string) (T, bool) {
	what = strings.TrimSpace(what)
	if what == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(what); err == nil {
		if _, ok := t.byID[n]; ok {
			return T(n), true
		}
	}
	for _, v := range t.variants {
		if v.token == what {
			return T(v.id), true
		}
	}
	for _, v := range t.variants {
		if v.name == what || v.label == what {
			return T(v.id), true
		}
	}
	return 0, false
}

// all returns variants with a positive id in definition order.
func (t *table[T]) all() []T {
	out := make([]T, 0, len(t.variants))
	for _, v := range t.variants {
		if v.id > 0 {
			out = append(out, T(v.id))
		}
	}
	return out
}

// SortByID orders attributes by their id, the display order of every set.
func SortByID[T Attribute](attrs []T) {
	sort.SliceStable(attrs, func(i, j int) bool { return attrs[i].ID() < attrs[j].ID() })
}
