package get_quote

import (
	"fmt"
	"time"

	"github.com/m04kA/HotelPrincipal-Site/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}

	if req.Rooms < 0 || req.Rooms > domain.MaxRooms {
		return fmt.Errorf("%w: rooms must be between 0 and %d", ErrInvalidInput, domain.MaxRooms)
	}

	for _, id := range req.Extras {
		if _, ok := domain.FindExtra(id); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownExtra, id)
		}
	}

	return nil
}

// validateDates применяет правила выбора дат мастера бронирования
func validateDates(checkIn, checkOut, now time.Time) error {
	if checkIn.Before(domain.DateOnly(now)) {
		return fmt.Errorf("%w: check-in is in the past", ErrInvalidDates)
	}

	if !checkOut.After(checkIn) {
		return fmt.Errorf("%w: check-out must be after check-in", ErrInvalidDates)
	}

	if domain.Nights(domain.DateRange{CheckIn: &checkIn, CheckOut: &checkOut}) > domain.MaxNights {
		return fmt.Errorf("%w: stay is longer than %d nights", ErrInvalidDates, domain.MaxNights)
	}

	return nil
}
