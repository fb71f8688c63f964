package approve_reservation

import "time"

// Request модель запроса на подтверждение бронирования
type Request struct {
	ReservationID int64 // ID бронирования
	UserID        int64 // ID менеджера клуба, выполняющего подтверждение
}

// Response модель ответа с подтверждённым бронированием
type Response struct {
	ID        int64
	UserID    int64
	FieldID   int64
	Date      time.Time
	StartTime string
	EndTime   string
	Status    string
	TerrainID int64 // Назначенная площадка
	Price     float64
}
