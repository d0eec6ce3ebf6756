package enums

// Section is a top-level catalog category.
type Section int

const (
	SectionMovies Section = 10
	SectionSeries Section = 20
	SectionAnime  Section = 30
)

var sectionTable = newTable[Section](31000,
	variant{id: int(SectionMovies), name: "MOVIES", token: "video", label: "Movies"},
	variant{id: int(SectionSeries), name: "SERIES", token: "series", label: "Series"},
	variant{id: int(SectionAnime), name: "ANIME", token: "anime", label: "Anime"},
)

func (s Section) ID() int        { return int(s) }
func (s Section) Token() string  { return sectionTable.token(s) }
func (s Section) LangID() int    { return sectionTable.langID(s) }
func (s Section) String() string { return sectionTable.label(s) }

// FindSection resolves an id, site token or label.
func FindSection(what string) (Section, bool) { return sectionTable.find(what) }

func AllSections() []Section { return sectionTable.all() }
