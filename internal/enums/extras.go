package enums

import "fmt"

// singularLangBase is the string-table base for singular section names.
const singularLangBase = 31040

// FolderName is the library directory used for the section.
func (s Section) FolderName() string { return sectionTable.label(s) }

// SingularLangID is the localized string id of the singular section name.
func (s Section) SingularLangID() int { return singularLangBase + int(s) }

// IsSeries reports whether titles in the section are episodic.
func (s Section) IsSeries() bool { return s == SectionSeries || s == SectionAnime }

// Dimensions is a nominal frame size.
type Dimensions struct {
	Width  int
	Height int
}

var formatDimensions = map[Format]Dimensions{
	FormatAVI:    {Width: 720, Height: 480},
	FormatHD:     {Width: 1280, Height: 720},
	FormatHD1080: {Width: 1920, Height: 1080},
}

// Dimensions returns the nominal frame size of the format; unset formats report zero.
func (f Format) Dimensions() Dimensions { return formatDimensions[f] }

// IsZero reports an unknown frame size.
func (d Dimensions) IsZero() bool { return d.Width == 0 || d.Height == 0 }

func (d Dimensions) String() string { return fmt.Sprintf("%dx%d", d.Width, d.Height) }
