package get_quote

import (
	"strings"
	"time"

	"github.com/m04kA/HotelPrincipal-Site/internal/domain"
	getQuote "github.com/m04kA/HotelPrincipal-Site/internal/usecase/get_quote"
)

// QuoteResponse HTTP response model
type QuoteResponse struct {
	RoomID         string       `json:"roomId,omitempty"`
	RoomName       string       `json:"roomName"`
	CheckIn        string       `json:"checkIn"`
	CheckOut       string       `json:"checkOut"`
	Nights         int          `json:"nights"`
	NightlyPrice   int64        `json:"nightlyPrice"`
	Rooms          int          `json:"rooms"`
	BaseTotal      int64        `json:"baseTotal"`
	ExtrasTotal    int64        `json:"extrasTotal"`
	GrandTotal     int64        `json:"grandTotal"`
	SelectedExtras []QuoteExtra `json:"selectedExtras"`
}

// QuoteExtra выбранная дополнительная услуга в расчете
type QuoteExtra struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// ToUseCaseRequest создает запрос use case из query параметров
// extras - список через запятую
func ToUseCaseRequest(roomID, checkInStr, checkOutStr string, rooms int, extrasStr string) (*getQuote.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, checkInStr)
	if err != nil {
		return nil, err
	}
	checkOut, err := time.Parse(domain.DateFormat, checkOutStr)
	if err != nil {
		return nil, err
	}

	var extras []domain.ExtraID
	for _, id := range strings.Split(extrasStr, ",") {
		if id = strings.TrimSpace(id); id != "" {
			extras = append(extras, domain.ExtraID(id))
		}
	}

	return &getQuote.Request{
		RoomID:   roomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Rooms:    rooms,
		Extras:   extras,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getQuote.Response) *QuoteResponse {
	extras := make([]QuoteExtra, 0, len(resp.Quote.SelectedExtras))
	for _, extra := range resp.Quote.SelectedExtras {
		extras = append(extras, QuoteExtra{
			ID:    string(extra.ID),
			Name:  extra.Name,
			Price: extra.Price,
		})
	}

	return &QuoteResponse{
		RoomID:         resp.Room.ID,
		RoomName:       resp.Room.Name,
		CheckIn:        resp.CheckIn.Format(domain.DateFormat),
		CheckOut:       resp.CheckOut.Format(domain.DateFormat),
		Nights:         resp.Quote.Nights,
		NightlyPrice:   resp.Quote.NightlyPrice,
		Rooms:          resp.Quote.Rooms,
		BaseTotal:      resp.Quote.BaseTotal,
		ExtrasTotal:    resp.Quote.ExtrasTotal,
		GrandTotal:     resp.Quote.GrandTotal,
		SelectedExtras: extras,
	}
}
