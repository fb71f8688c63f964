package update_reservation_time

import "time"

// Request модель запроса на перенос бронирования. Передаются только новые
// дата и время: остальные атрибуты заявки перенос не меняет.
type Request struct {
	ReservationID int64     // ID бронирования
	UserID        int64     // ID пользователя (владелец заявки или менеджер клуба)
	Date          time.Time // Новая дата (без времени)
	StartTime     string    // Новое время начала, "HH:MM"
	EndTime       string    // Новое время окончания, "HH:MM"
}

// Response модель ответа с перенесённым бронированием
type Response struct {
	ID        int64
	UserID    int64
	FieldID   int64
	Date      time.Time
	StartTime string
	EndTime   string
	Status    string  // Всегда pending: перенос требует повторного подтверждения
	Price     float64 // Пересчитанная стоимость
}
