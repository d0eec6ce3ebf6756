package enums

// Language is an audio or subtitle language.
type Language int

const (
	LanguageRussian       Language = 10
	LanguageEnglish       Language = 11
	LanguageJapanese      Language = 12
	LanguageChinese       Language = 13
	LanguageGerman        Language = 14
	LanguageFrench        Language = 15
	LanguageItalian       Language = 16
	LanguageSpanish       Language = 17
	LanguageKorean        Language = 18
	LanguageGoblin        Language = 19
	LanguageHungarian     Language = 20
	LanguageSwedish       Language = 21
	LanguageEuropean      Language = 22
	LanguageWithoutSpeech Language = 23
	LanguageGeorgian      Language = 24
	LanguageEstonian      Language = 25
	LanguageDanish        Language = 26
	LanguageNorwegian     Language = 27
	LanguageIndonesian    Language = 28
	LanguageThai          Language = 29
	LanguageHindi         Language = 30
	LanguageSerbian       Language = 31
	LanguagePolish        Language = 32
	LanguageHebrew        Language = 33
	LanguageUkrainian     Language = 34
	LanguageDutch         Language = 35
	LanguageTurkish       Language = 36
	LanguageMalayalam     Language = 37
	LanguageLithuanian    Language = 38
	LanguageBengali       Language = 39
	LanguagePortuguese    Language = 40
	LanguageBengal        Language = 41
	LanguageLatvian       Language = 42
	LanguageBulgarian     Language = 43
	LanguageTelugu        Language = 44
	LanguageIcelandic     Language = 45
	LanguageMacedonian    Language = 46
	LanguageFarsi         Language = 47
	LanguageMongolian     Language = 48
	LanguageCzech         Language = 49
	LanguageTaiwanese     Language = 50
)

var languageTable = newTable[Language](30400,
	variant{id: int(LanguageRussian), name: "RUSSIAN", token: "Русский", label: "Russian"},
	variant{id: int(LanguageEnglish), name: "ENGLISH", token: "Английский", label: "English"},
	variant{id: int(LanguageJapanese), name: "JAPANESE", token: "Японский", label: "Japanese"},
	variant{id: int(LanguageChinese), name: "CHINESE", token: "Китайский", label: "Chinese"},
	variant{id: int(LanguageGerman), name: "GERMAN", token: "Немецкий", label: "German"},
	variant{id: int(LanguageFrench), name: "FRENCH", token: "Французский", label: "French"},
	variant{id: int(LanguageItalian), name: "ITALIAN", token: "Итальянский", label: "Italian"},
	variant{id: int(LanguageSpanish), name: "SPANISH", token: "Испанский", label: "Spanish"},
	variant{id: int(LanguageKorean), name: "KOREAN", token: "Корейский", label: "Korean"},
	variant{id: int(LanguageGoblin), name: "GOBLIN", token: "Перевод Гоблина", label: "Goblin"},
	variant{id: int(LanguageHungarian), name: "HUNGARIAN", token: "Венгерский", label: "Hungarian"},
	variant{id: int(LanguageSwedish), name: "SWEDISH", token: "Шведский", label: "Swedish"},
	variant{id: int(LanguageEuropean), name: "EUROPEAN", token: "Европейские языки", label: "European"},
	variant{id: int(LanguageWithoutSpeech), name: "WITHOUT_SPEECH", token: "Без речи", label: "Without speech"},
	variant{id: int(LanguageGeorgian), name: "GEORGIAN", token: "Грузинский", label: "Georgian"},
	variant{id: int(LanguageEstonian), name: "ESTONIAN", token: "Эстонский", label: "Estonian"},
	variant{id: int(LanguageDanish), name: "DANISH", token: "Датский", label: "Danish"},
	variant{id: int(LanguageNorwegian), name: "NORWEGIAN", token: "Норвежский", label: "Norwegian"},
	variant{id: int(LanguageIndonesian), name: "INDONESIAN", token: "Индонезийский", label: "Indonesian"},
	variant{id: int(LanguageThai), name: "THAI", token: "Тайский", label: "Thai"},
	variant{id: int(LanguageHindi), name: "HINDI", token: "Хинди", label: "Hindi"},
	variant{id: int(LanguageSerbian), name: "SERBIAN", token: "Сербский", label: "Serbian"},
	variant{id: int(LanguagePolish), name: "POLISH", token: "Польский", label: "Polish"},
	variant{id: int(LanguageHebrew), name: "HEBREW", token: "Иврит", label: "Hebrew"},
	variant{id: int(LanguageUkrainian), name: "UKRAINIAN", token: "Украинский", label: "Ukrainian"},
	variant{id: int(LanguageDutch), name: "DUTCH", token: "Нидерландский", label: "Dutch"},
	variant{id: int(LanguageTurkish), name: "TURKISH", token: "Турецкий", label: "Turkish"},
	variant{id: int(LanguageMalayalam), name: "MALAYALAM", token: "Малаялам", label: "Malayalam"},
	variant{id: int(LanguageLithuanian), name: "LITHUANIAN", token: "Литовский", label: "Lithuanian"},
	variant{id: int(LanguageBengali), name: "BENGALI", token: "Бенгали", label: "Bengali"},
	variant{id: int(LanguagePortuguese), name: "PORTUGUESE", token: "Португальский", label: "Portuguese"},
	variant{id: int(LanguageBengal), name: "BENGAL", token: "Бенгальский", label: "Bengal"},
	variant{id: int(LanguageLatvian), name: "LATVIAN", token: "Латышский", label: "Latvian"},
	variant{id: int(LanguageBulgarian), name: "BULGARIAN", token: "Болгарский", label: "Bulgarian"},
	variant{id: int(LanguageTelugu), name: "TELUGU", token: "Телугу", label: "Telugu"},
	variant{id: int(LanguageIcelandic), name: "ICELANDIC", token: "Исландский", label: "Icelandic"},
	variant{id: int(LanguageMacedonian), name: "MACEDONIAN", token: "Македонский", label: "Macedonian"},
	variant{id: int(LanguageFarsi), name: "FARSI", token: "Фарси", label: "Farsi"},
	variant{id: int(LanguageMongolian), name: "MONGOLIAN", token: "Монгольский", label: "Mongolian"},
	variant{id: int(LanguageCzech), name: "CZECH", token: "Чешский", label: "Czech"},
	variant{id: int(LanguageTaiwanese), name: "TAIWANESE", token: "Тайваньский", label: "Taiwanese"},
)

func (l Language) ID() int        { return int(l) }
func (l Language) Token() string  { return languageTable.token(l) }
func (l Language) LangID() int    { return languageTable.langID(l) }
func (l Language) String() string { return languageTable.label(l) }

func FindLanguage(what string) (Language, bool) { return languageTable.find(what) }

func AllLanguages() []Language { return languageTable.all() }
