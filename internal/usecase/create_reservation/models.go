package create_reservation

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	UserID    int64     // ID пользователя
	FieldID   int64     // ID поля
	Date      time.Time // Дата бронирования (без времени)
	StartTime string    // Время начала, "HH:MM"
	EndTime   string    // Время окончания, "HH:MM"; раньше начала = переход через полночь
	Notes     *string   // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64
	UserID    int64
	FieldID   int64
	Date      time.Time
	StartTime string
	EndTime   string
	Status    string  // Всегда pending: подтверждает менеджер клуба
	Price     float64 // Стоимость, зафиксированная на момент создания
	Notes     *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
