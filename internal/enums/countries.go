package enums

type Country int

const (
	CountryAustralia      Country = 1
	CountryGreatBritain   Country = 2
	CountryGermany        Country = 3
	CountryHongkong       Country = 4
	CountryWesternGermany Country = 5
	CountryIndia          Country = 6
	CountrySpain          Country = 7
	CountryItaly          Country = 8
	CountryCanada         Country = 9
	CountryChina          Country = 10
	CountryMexico         Country = 11
	CountryNetherlands    Country = 12
	CountryPoland         Country = 13
	CountryRussia         Country = 14
	CountryUSSR           Country = 15
	CountryUSA            Country = 16
	CountryFrance         Country = 17
	CountrySweden         Country = 18
	CountrySouthKorea     Country = 19
	CountryJapan          Country = 20
	CountryGeorgia        Country = 21
	CountryEstonia        Country = 22
	CountryDenmark        Country = 23
	CountryBrazil         Country = 24
	CountryNorway         Country = 25
	CountryIreland        Country = 26
	CountryIndonesia      Country = 27
	CountryThailand       Country = 28
	CountryYugoslavia     Country = 29
	CountryIsrael         Country = 30
	CountryFinland        Country = 31
	CountryUkraine        Country = 32
	CountryBulgaria       Country = 33
	CountrySwitzerland    Country = 34
	CountryNewZealand     Country = 35
	CountryAzerbaijan     Country = 36
	CountryCzechRepublic  Country = 37
	CountryUAE            Country = 38
	CountrySouthAfrica    Country = 39
	CountryAustria        Country = 40
	CountryBelarus        Country = 41
	CountryEgypt          Country = 42
	CountryLuxembourg     Country = 43
	CountryBelgium        Country = 44
	CountryTurkey         Country = 45
	CountryGreece         Country = 46
	CountryAruba          Country = 47
	CountrySingapore      Country = 48
	CountryTaiwan         Country = 49
	CountryMalta          Country = 50
	CountryArgentina      Country = 51
	CountryRomania        Country = 52
	CountryPeru           Country = 53
	CountryLatvia         Country = 54
	CountryBahamas        Country = 55
	CountryKazakhstan     Country = 56
	CountryVenezuela      Country = 57
	CountryIceland        Country = 58
	CountryMacedonia      Country = 59
	CountrySlovenia       Country = 60
	CountrySerbia         Country = 61
	CountryCroatia        Country = 62
	CountryMontenegro     Country = 63
	CountryFiji           Country = 64
	CountryEasternGermany Country = 65
	CountryPhilippines    Country = 66
	CountryChile          Country = 67
	CountryMongolia       Country = 68
	CountryCzechoslovakia Country = 69
	CountryHungary        Country = 70
)

var countryTable = newTable[Country](30500,
	variant{id: int(CountryAustralia), name: "AUSTRALIA", token: "Австралия", label: "Australia"},
	variant{id: int(CountryGreatBritain), name: "GREAT_BRITAIN", token: "Великобритания", label: "Great britain"},
	variant{id: int(CountryGermany), name: "GERMANY", token: "Германия", label: "Germany"},
	variant{id: int(CountryHongkong), name: "HONGKONG", token: "Гонконг", label: "Hongkong"},
	variant{id: int(CountryWesternGermany), name: "WESTERN_GERMANY", token: "Западная Германия", label: "Western germany"},
	variant{id: int(CountryIndia), name: "INDIA", token: "Индия", label: "India"},
	variant{id: int(CountrySpain), name: "SPAIN", token: "Испания", label: "Spain"},
	variant{id: int(CountryItaly), name: "ITALY", token: "Италия", label: "Italy"},
	variant{id: int(CountryCanada), name: "CANADA", token: "Канада", label: "Canada"},
	variant{id: int(CountryChina), name: "CHINA", token: "Китай", label: "China"},
	variant{id: int(CountryMexico), name: "MEXICO", token: "Мексика", label: "Mexico"},
	variant{id: int(CountryNetherlands), name: "NETHERLANDS", token: "Нидерланды", label: "Netherlands"},
	variant{id: int(CountryPoland), name: "POLAND", token: "Польша", label: "Poland"},
	variant{id: int(CountryRussia), name: "RUSSIA", token: "Россия", label: "Russia"},
	variant{id: int(CountryUSSR), name: "USSR", token: "СССР", label: "USSR"},
	variant{id: int(CountryUSA), name: "USA", token: "США", label: "USA"},
	variant{id: int(CountryFrance), name: "FRANCE", token: "Франция", label: "France"},
	variant{id: int(CountrySweden), name: "SWEDEN", token: "Швеция", label: "Sweden"},
	variant{id: int(CountrySouthKorea), name: "SOUTH_KOREA", token: "Южная Корея", label: "South korea"},
	variant{id: int(CountryJapan), name: "JAPAN", token: "Япония", label: "Japan"},
	variant{id: int(CountryGeorgia), name: "GEORGIA", token: "Грузия", label: "Georgia"},
	variant{id: int(CountryEstonia), name: "ESTONIA", token: "Эстония", label: "Estonia"},
	variant{id: int(CountryDenmark), name: "DENMARK", token: "Дания", label: "Denmark"},
	variant{id: int(CountryBrazil), name: "BRAZIL", token: "Бразилия", label: "Brazil"},
	variant{id: int(CountryNorway), name: "NORWAY", token: "Норвегия", label: "Norway"},
	variant{id: int(CountryIreland), name: "IRELAND", token: "Ирландия", label: "Ireland"},
	variant{id: int(CountryIndonesia), name: "INDONESIA", token: "Индонезия", label: "Indonesia"},
	variant{id: int(CountryThailand), name: "THAILAND", token: "Тайланд", label: "Thailand"},
	variant{id: int(CountryYugoslavia), name: "YUGOSLAVIA", token: "Югославия", label: "Yugoslavia"},
	variant{id: int(CountryIsrael), name: "ISRAEL", token: "Израиль", label: "Israel"},
	variant{id: int(CountryFinland), name: "FINLAND", token: "Финляндия", label: "Finland"},
	variant{id: int(CountryUkraine), name: "UKRAINE", token: "Украина", label: "Ukraine"},
	variant{id: int(CountryBulgaria), name: "BULGARIA", token: "Болгария", label: "Bulgaria"},
	variant{id: int(CountrySwitzerland), name: "SWITZERLAND", token: "Швейцария", label: "Switzerland"},
	variant{id: int(CountryNewZealand), name: "NEW_ZEALAND", token: "Новая Зеландия", label: "New zealand"},
	variant{id: int(CountryAzerbaijan), name: "AZERBAIJAN", token: "Азербайджан", label: "Azerbaijan"},
	variant{id: int(CountryCzechRepublic), name: "CZECH_REPUBLIC", token: "Чехия", label: "Czech republic"},
	variant{id: int(CountryUAE), name: "UAE", token: "Объединенные Арабские Эмираты", label: "UAE"},
	variant{id: int(CountrySouthAfrica), name: "SOUTH_AFRICA", token: "Южная Африка", label: "South africa"},
	variant{id: int(CountryAustria), name: "AUSTRIA", token: "Австрия", label: "Austria"},
	variant{id: int(CountryBelarus), name: "BELARUS", token: "Беларусь", label: "Belarus"},
	variant{id: int(CountryEgypt), name: "EGYPT", token: "Египет", label: "Egypt"},
	variant{id: int(CountryLuxembourg), name: "LUXEMBOURG", token: "Люксембург", label: "Luxembourg"},
	variant{id: int(CountryBelgium), name: "BELGIUM", token: "Бельгия", label: "Belgium"},
	variant{id: int(CountryTurkey), name: "TURKEY", token: "Турция", label: "Turkey"},
	variant{id: int(CountryGreece), name: "GREECE", token: "Греция", label: "Greece"},
	variant{id: int(CountryAruba), name: "ARUBA", token: "Аруба", label: "Aruba"},
	variant{id: int(CountrySingapore), name: "SINGAPORE", token: "Сингапур", label: "Singapore"},
	variant{id: int(CountryTaiwan), name: "TAIWAN", token: "Тайвань", label: "Taiwan"},
	variant{id: int(CountryMalta), name: "MALTA", token: "Мальта", label: "Malta"},
	variant{id: int(CountryArgentina), name: "ARGENTINA", token: "Аргентина", label: "Argentina"},
	variant{id: int(CountryRomania), name: "ROMANIA", token: "Румыния", label: "Romania"},
	variant{id: int(CountryPeru), name: "PERU", token: "Перу", label: "Peru"},
	variant{id: int(CountryLatvia), name: "LATVIA", token: "Латвия", label: "Latvia"},
	variant{id: int(CountryBahamas), name: "BAHAMAS", token: "Багамы", label: "Bahamas"},
	variant{id: int(CountryKazakhstan), name: "KAZAKHSTAN", token: "Казахстан", label: "Kazakhstan"},
	variant{id: int(CountryVenezuela), name: "VENEZUELA", token: "Венесуэла", label: "Venezuela"},
	variant{id: int(CountryIceland), name: "ICELAND", token: "Исландия", label: "Iceland"},
	variant{id: int(CountryMacedonia), name: "MACEDONIA", token: "Республика Македония", label: "Macedonia"},
	variant{id: int(CountrySlovenia), name: "SLOVENIA", token: "Словения", label: "Slovenia"},
	variant{id: int(CountrySerbia), name: "SERBIA", token: "Сербия", label: "Serbia"},
	variant{id: int(CountryCroatia), name: "CROATIA", token: "Хорватия", label: "Croatia"},
	variant{id: int(CountryMontenegro), name: "MONTENEGRO", token: "Черногория", label: "Montenegro"},
	variant{id: int(CountryFiji), name: "FIJI", token: "Фиджи", label: "Fiji"},
	variant{id: int(CountryEasternGermany), name: "EASTERN_GERMANY", token: "Восточная Германия", label: "Eastern germany"},
	variant{id: int(CountryPhilippines), name: "PHILIPPINES", token: "Филиппины", label: "Philippines"},
	variant{id: int(CountryChile), name: "CHILE", token: "Чили", label: "Chile"},
	variant{id: int(CountryMongolia), name: "MONGOLIA", token: "Монголия", label: "Mongolia"},
	variant{id: int(CountryCzechoslovakia), name: "CZECHOSLOVAKIA", token: "Чехословакия", label: "Czechoslovakia"},
	variant{id: int(CountryHungary), name: "HUNGARY", token: "Венгрия", label: "Hungary"},
)

func (c Country) ID() int        { return int(c) }
func (c Country) Token() string  { return countryTable.token(c) }
func (c Country) LangID() int    { return countryTable.langID(c) }
func (c Country) String() string { return countryTable.label(c) }

func FindCountry(what string) (Country, bool) { return countryTable.find(what) }

func AllCountries() []Country { return countryTable.all() }
