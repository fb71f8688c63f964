package notifyservice

// EventType тип события бронирования
type EventType string

const (
	EventReservationCreated     EventType = "reservation.created"
	EventReservationApproved    EventType = "reservation.approved"
	EventReservationRejected    EventType = "reservation.rejected"
	EventReservationCancelled   EventType = "reservation.cancelled"
	EventReservationRescheduled EventType = "reservation.rescheduled"
)

// ReservationEvent событие об изменении бронирования, отправляемое в
// NotifyService после успешной мутации
type ReservationEvent struct {
	Type          EventType `json:"type"`
	ReservationID int64     `json:"reservationId"`
	FieldID       int64     `json:"fieldId"`
	UserID        int64     `json:"userId"`
	Date          string    `json:"date"`      // YYYY-MM-DD
	StartTime     string    `json:"startTime"` // HH:MM
	EndTime       string    `json:"endTime"`   // HH:MM
	Status        string    `json:"status"`
}
