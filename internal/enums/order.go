package enums

// Order is a search result ordering key.
type Order int

const (
	OrderRating     Order = 1
	OrderUserRating Order = 2
	OrderYear       Order = 3
	OrderName       Order = 4
	OrderDate       Order = 5
	OrderGenre      Order = 6
	OrderCountry    Order = 7
)

var orderTable = newTable[Order](30280,
	variant{id: int(OrderRating), name: "RATING", token: "rating", label: "Rating"},
	variant{id: int(OrderUserRating), name: "USER_RATING", token: "user_rating", label: "User rating"},
	variant{id: int(OrderYear), name: "YEAR", token: "year", label: "Year"},
	variant{id: int(OrderName), name: "NAME", token: "title", label: "Name"},
	variant{id: int(OrderDate), name: "DATE", token: "entry_date", label: "Date"},
	variant{id: int(OrderGenre), name: "GENRE", token: "genre", label: "Genre"},
	variant{id: int(OrderCountry), name: "COUNTRY", token: "country", label: "Country"},
)

func (o Order) ID() int        { return int(o) }
func (o Order) Token() string  { return orderTable.token(o) }
func (o Order) LangID() int    { return orderTable.langID(o) }
func (o Order) String() string { return orderTable.label(o) }

func FindOrder(what string) (Order, bool) { return orderTable.find(what) }

func AllOrders() []Order { return orderTable.all() }

// OrderDirection is the ordering direction.
type OrderDirection int

const (
	Asc  OrderDirection = 1
	Desc OrderDirection = 2
)

var orderDirectionTable = newTable[OrderDirection](30290,
	variant{id: int(Asc), name: "ASC", token: "asc", label: "Asc"},
	variant{id: int(Desc), name: "DESC", token: "desc", label: "Desc"},
)

func (o OrderDirection) ID() int        { return int(o) }
func (o OrderDirection) Token() string  { return orderDirectionTable.token(o) }
func (o OrderDirection) LangID() int    { return orderDirectionTable.langID(o) }
func (o OrderDirection) String() string { return orderDirectionTable.label(o) }

func FindOrderDirection(what string) (OrderDirection, bool) { return orderDirectionTable.find(what) }

func AllOrderDirections() []OrderDirection { return orderDirectionTable.all() }
