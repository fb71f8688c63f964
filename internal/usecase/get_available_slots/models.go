package get_available_slots

import (
	"time"

	"github.com/avolkhov/SFP-FieldService/internal/domain"
)

// Request модель запроса доступных слотов
type Request struct {
	FieldID int64     // ID поля
	Date    time.Time // Дата (без времени)
}

// Response модель ответа со слотами на дату
type Response struct {
	FieldID      int64                // ID поля
	Date         time.Time            // Запрошенная дата
	FreeSlots    []domain.TimeSlot    // Свободные слоты фиксированной длительности
	PendingSlots []domain.PendingSlot // Спорные окна, ожидающие подтверждения заявок
}
