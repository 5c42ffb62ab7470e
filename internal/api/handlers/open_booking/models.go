package open_booking

// OpenBookingRequest HTTP request model
// Пустой roomId открывает мастер для комнаты по умолчанию
type OpenBookingRequest struct {
	RoomID string `json:"roomId"`
}
