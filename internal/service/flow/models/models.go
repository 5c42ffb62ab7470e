package models

import (
	"github.com/m04kA/HotelPrincipal-Site/internal/domain"
	"github.com/m04kA/HotelPrincipal-Site/pkg/ptr"
)

// ExtraView дополнительная услуга с отметкой выбора
type ExtraView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Selected bool   `json:"selected"`
}

// QuoteLine строка сводки стоимости по выбранной услуге
type QuoteLine struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// QuoteView расчет стоимости текущего состояния
type QuoteView struct {
	Nights         int         `json:"nights"`
	NightlyPrice   int64       `json:"nightlyPrice"`
	Rooms          int         `json:"rooms"`
	BaseTotal      int64       `json:"baseTotal"`
	ExtrasTotal    int64       `json:"extrasTotal"`
	GrandTotal     int64       `json:"grandTotal"`
	SelectedExtras []QuoteLine `json:"selectedExtras"`
}

// FlowView состояние мастера бронирования для клиента
type FlowView struct {
	ID            string                `json:"id,omitempty"`
	Open          bool                  `json:"open"`
	Step          int                   `json:"step"`
	StepName      string                `json:"stepName"`
	StepTitle     string                `json:"stepTitle"`
	Room          domain.RoomRef        `json:"room"`
	CheckIn       *string               `json:"checkIn"`  // "2025-10-15"
	CheckOut      *string               `json:"checkOut"` // "2025-10-18"
	Party         domain.PartySelection `json:"party"`
	Extras        []ExtraView           `json:"extras"`
	Guest         domain.GuestInfo      `json:"guest"`
	Submitted     bool                  `json:"submitted"`
	CanContinue   bool                  `json:"canContinue"`
	Quote         QuoteView             `json:"quote"`
	Notifications []domain.Notification `json:"notifications"`
}

// FromDomainState строит представление состояния вместе с расчетом стоимости
func FromDomainState(state domain.FlowState) *FlowView {
	view := &FlowView{
		ID:            state.ID,
		Open:          state.Open,
		Step:          int(state.Step),
		StepName:      state.Step.String(),
		StepTitle:     state.Step.Title(),
		Room:          state.Room,
		Party:         state.Party,
		Guest:         state.Guest,
		Submitted:     state.Submitted,
		CanContinue:   state.CanContinue(),
		Quote:         FromDomainQuote(domain.ComputeQuote(state)),
		Notifications: []domain.Notification{},
	}

	if state.Dates.CheckIn != nil {
		view.CheckIn = ptr.Ptr(state.Dates.CheckIn.Format(domain.DateFormat))
	}
	if state.Dates.CheckOut != nil {
		view.CheckOut = ptr.Ptr(state.Dates.CheckOut.Format(domain.DateFormat))
	}

	view.Extras = make([]ExtraView, 0, len(domain.ExtrasCatalog))
	for _, e := range domain.ExtrasCatalog {
		view.Extras = append(view.Extras, ExtraView{
			ID:       string(e.ID),
			Name:     e.Name,
			Price:    e.Price,
			Selected: state.Extras[e.ID],
		})
	}

	return view
}

// FromDomainQuote конвертирует расчет стоимости
func FromDomainQuote(q domain.Quote) QuoteView {
	view := QuoteView{
		Nights:         q.Nights,
		NightlyPrice:   q.NightlyPrice,
		Rooms:          q.Rooms,
		BaseTotal:      q.BaseTotal,
		ExtrasTotal:    q.ExtrasTotal,
		GrandTotal:     q.GrandTotal,
		SelectedExtras: make([]QuoteLine, 0, len(q.SelectedExtras)),
	}
	for _, e := range q.SelectedExtras {
		view.SelectedExtras = append(view.SelectedExtras, QuoteLine{Name: e.Name, Price: e.Price})
	}
	return view
}
