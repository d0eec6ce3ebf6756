package enums

// Label is either a known attribute or the raw text the site used when no
// variant matched. Display code treats both the same way through String.
type Label struct {
	attr Attribute
	raw  string
}

// Known wraps a resolved attribute.
func Known(a Attribute) Label { return Label{attr: a} }

// Raw wraps unrecognised text.
func Raw(s string) Label { return Label{raw: s} }

// Resolve looks raw up with find. On a miss the raw text is kept and ok is false.
func Resolve[T Attribute](find func(string) (T, bool), raw string) (l Label, ok bool) {
	if v, found := find(raw); found {
		return Known(v), true
	}
	return Raw(raw), false
}

// Attribute returns the resolved variant, if any.
func (l Label) Attribute() (Attribute, bool) { return l.attr, l.attr != nil }

// Known reports whether the label resolved to a variant.
func (l Label) Known() bool { return l.attr != nil }

// IsZero reports an unset label.
func (l Label) IsZero() bool { return l.attr == nil && l.raw == "" }

// Token is the value used in filter queries.
func (l Label) Token() string {
	if l.attr != nil {
		return l.attr.Token()
	}
	return l.raw
}

func (l Label) String() string {
	if l.attr != nil {
		return l.attr.String()
	}
	return l.raw
}

// Labels converts a list of attributes into labels.
func Labels[T Attribute](attrs ...T) []Label {
	out := make([]Label, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, Known(a))
	}
	return out
}
