package enums

type Genre int

const (
	GenreBiography     Genre = 1
	GenreAction        Genre = 2
	GenreWestern       Genre = 3
	GenreMilitary      Genre = 4
	GenreDetective     Genre = 5
	GenreChildren      Genre = 6
	GenreDocumentary   Genre = 7
	GenreDrama         Genre = 8
	GenreHistorical    Genre = 9
	GenreCatastrophe   Genre = 10
	GenreStory         Genre = 11
	GenreComedy        Genre = 12
	GenreShort         Genre = 13
	GenreCriminal      Genre = 14
	GenreRomance       Genre = 15
	GenreMystic        Genre = 16
	GenreMusic         Genre = 17
	GenreCartoon       Genre = 18
	GenreAdultCartoon  Genre = 19
	GenreOpera         Genre = 20
	GenreAdventures    Genre = 21
	GenreProgram       Genre = 22
	GenrePsychological Genre = 23
	GenreFamily        Genre = 24
	GenreTale          Genre = 25
	GenrePlay          Genre = 26
	GenreSport         Genre = 27
	GenreThriller      Genre = 28
	GenreHorror        Genre = 29
	GenreEducational   Genre = 30
	GenreFiction       Genre = 31
	GenreFantasy       Genre = 32
	GenreErotic        Genre = 33
	GenreHumor         Genre = 34
)

var genreTable = newTable[Genre](30700,
	variant{id: int(GenreBiography), name: "BIOGRAPHY", token: "Биографический", label: "Biography"},
	variant{id: int(GenreAction), name: "ACTION", token: "Боевик", label: "Action"},
	variant{id: int(GenreWestern), name: "WESTERN", token: "Вестерн", label: "Western"},
	variant{id: int(GenreMilitary), name: "MILITARY", token: "Военный", label: "Military"},
	variant{id: int(GenreDetective), name: "DETECTIVE", token: "Детектив", label: "Detective"},
	variant{id: int(GenreChildren), name: "CHILDREN", token: "Детский", label: "Children"},
	variant{id: int(GenreDocumentary), name: "DOCUMENTARY", token: "Документальный", label: "Documentary"},
	variant{id: int(GenreDrama), name: "DRAMA", token: "Драма", label: "Drama"},
	variant{id: int(GenreHistorical), name: "HISTORICAL", token: "Исторический", label: "Historical"},
	variant{id: int(GenreCatastrophe), name: "CATASTROPHE", token: "Катастрофа", label: "Catastrophe"},
	variant{id: int(GenreStory), name: "STORY", token: "Киноповесть", label: "Story"},
	variant{id: int(GenreComedy), name: "COMEDY", token: "Комедия", label: "Comedy"},
	variant{id: int(GenreShort), name: "SHORT", token: "Короткометражный", label: "Short"},
	variant{id: int(GenreCriminal), name: "CRIMINAL", token: "Криминал", label: "Criminal"},
	variant{id: int(GenreRomance), name: "ROMANCE", token: "Мелодрама", label: "Romance"},
	variant{id: int(GenreMystic), name: "MYSTIC", token: "Мистика", label: "Mystic"},
	variant{id: int(GenreMusic), name: "MUSIC", token: "Музыкальный", label: "Music"},
	variant{id: int(GenreCartoon), name: "CARTOON", token: "Мультфильм", label: "Cartoon"},
	variant{id: int(GenreAdultCartoon), name: "ADULT_CARTOON", token: "Мультфильм для взрослых", label: "Adult cartoon"},
	variant{id: int(GenreOpera), name: "OPERA", token: "Опера", label: "Opera"},
	variant{id: int(GenreAdventures), name: "ADVENTURES", token: "Приключения", label: "Adventures"},
	variant{id: int(GenreProgram), name: "PROGRAM", token: "Программа", label: "Program"},
	variant{id: int(GenrePsychological), name: "PSYCHOLOGICAL", token: "Психологический", label: "Psychological"},
	variant{id: int(GenreFamily), name: "FAMILY", token: "Семейный", label: "Family"},
	variant{id: int(GenreTale), name: "TALE", token: "Сказка", label: "Tale"},
	variant{id: int(GenrePlay), name: "PLAY", token: "Спектакль", label: "Play"},
	variant{id: int(GenreSport), name: "SPORT", token: "Спорт", label: "Sport"},
	variant{id: int(GenreThriller), name: "THRILLER", token: "Триллер", label: "Thriller"},
	variant{id: int(GenreHorror), name: "HORROR", token: "Ужасы", label: "Horror"},
	variant{id: int(GenreEducational), name: "EDUCATIONAL", token: "Учебное пособие", label: "Educational"},
	variant{id: int(GenreFiction), name: "FICTION", token: "Фантастика", label: "Fiction"},
	variant{id: int(GenreFantasy), name: "FANTASY", token: "Фэнтази", label: "Fantasy"},
	variant{id: int(GenreErotic), name: "EROTIC", token: "Эротика", label: "Erotic"},
	variant{id: int(GenreHumor), name: "HUMOR", token: "Юмор", label: "Humor"},
)

func (g Genre) ID() int        { return int(g) }
func (g Genre) Token() string  { return genreTable.token(g) }
func (g Genre) LangID() int    { return genreTable.langID(g) }
func (g Genre) String() string { return genreTable.label(g) }

// FindGenre resolves an id, site token or label.
func FindGenre(what string) (Genre, bool) { return genreTable.find(what) }

func AllGenres() []Genre { return genreTable.all() }
