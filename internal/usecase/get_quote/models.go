package get_quote

import (
	"time"

	"github.com/m04kA/HotelPrincipal-Site/internal/domain"
)

// Request модель запроса расчета стоимости без открытия мастера
type Request struct {
	RoomID   string           // ID комнаты, пустой - комната по умолчанию
	CheckIn  time.Time        // Дата заезда
	CheckOut time.Time        // Дата выезда
	Rooms    int              // Количество комнат, 0 - значение по умолчанию
	Extras   []domain.ExtraID // Выбранные дополнительные услуги
}

// Response модель ответа с расчетом стоимости
type Response struct {
	Room     domain.RoomRef
	CheckIn  time.Time
	CheckOut time.Time
	Quote    domain.Quote
}
