package validate_reservation_time

import "time"

// Request модель запроса проверки произвольного интервала
type Request struct {
	FieldID   int64     // ID поля
	Date      time.Time // Дата (без времени)
	StartTime string    // Время начала, "HH:MM"
	EndTime   string    // Время окончания, "HH:MM"; раньше начала = переход через полночь
}

// Response модель ответа проверки интервала
type Response struct {
	Valid bool // true, если интервал можно забронировать прямо сейчас
}
