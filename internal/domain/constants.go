package domain

import "time"

// Default values used when the flow is opened without a room or with partial data
const (
	DefaultNightlyPrice int64 = 1500
	DefaultRoomName           = "Habitación seleccionada"

	DefaultAdults   = 2
	DefaultChildren = 0
	DefaultRooms    = 1

	DefaultResetDelay = 2 * time.Second
)

// Floors of the party counters
const (
	MinAdults   = 1
	MinChildren = 0
	MinRooms    = 1
	MinNights   = 1
)

// Ceilings of the party counters and of the stay length
const (
	MaxAdults   = 10
	MaxChildren = 10
	MaxRooms    = 10
	MaxNights   = 365
)

const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	day        = 24 * time.Hour
)

// Notification texts shown by the host after a submit attempt
const (
	MsgSubmitFailedTitle    = "Información faltante"
	MsgSubmitFailedBody     = "Por favor completa todos los campos requeridos."
	MsgSubmitSucceededTitle = "¡Reserva enviada!"
	MsgSubmitSucceededBody  = "Te contactaremos pronto para confirmar tu reserva."
)
