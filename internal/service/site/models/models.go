package models

// NavItem пункт меню навигации
type NavItem struct {
	Name   string `json:"name"`
	NameEn string `json:"nameEn"`
	Href   string `json:"href"`
}

// Hero первый экран страницы
type Hero struct {
	Badges      []string `json:"badges"`
	Title       string   `json:"title"`
	Highlight   string   `json:"highlight"`
	Subtitle    string   `json:"subtitle"`
	TrustPoints []string `json:"trustPoints"`
	ContactLink string   `json:"contactLink"`
}

// TimelineEvent событие истории отеля
type TimelineEvent struct {
	Year        string `json:"year"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// HistoryCard карточка исторического факта
type HistoryCard struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags,omitempty"`
	ContactLink string   `json:"contactLink,omitempty"`
}

// History раздел истории
type History struct {
	Badge      string          `json:"badge"`
	Title      string          `json:"title"`
	Intro      string          `json:"intro"`
	Timeline   []TimelineEvent `json:"timeline"`
	Highlights []HistoryCard   `json:"highlights"`
}

// ServiceItem услуга отеля
type ServiceItem struct {
	Title       string   `json:"title"`
	TitleEn     string   `json:"titleEn"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Highlight   bool     `json:"highlight"`
}

// ServiceHours строка расписания услуг
type ServiceHours struct {
	Name  string `json:"name"`
	Hours string `json:"hours"`
	Note  string `json:"note"`
}

// Services раздел услуг: выделенные услуги идут отдельным списком
type Services struct {
	Featured []ServiceItem  `json:"featured"`
	Regular  []ServiceItem  `json:"regular"`
	Hours    []ServiceHours `json:"hours"`
}

// RoomCard карточка комнаты в сетке
type RoomCard struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Occupancy     int      `json:"occupancy"`
	Beds          string   `json:"beds"`
	Size          string   `json:"size"`
	NightlyPrice  int64    `json:"nightlyPrice"`
	PriceBadge    string   `json:"priceBadge"` // "desde $1,500/noche"
	Amenities     []string `json:"amenities"`  // первые три
	MoreAmenities string   `json:"moreAmenities,omitempty"`
}

// Page содержимое главной страницы
type Page struct {
	HotelName   string     `json:"hotelName"`
	Tagline     string     `json:"tagline"`
	Navigation  []NavItem  `json:"navigation"`
	Hero        Hero       `json:"hero"`
	Rooms       []RoomCard `json:"rooms"`
	History     History    `json:"history"`
	Services    Services   `json:"services"`
	ContactLink string     `json:"contactLink"`
}
