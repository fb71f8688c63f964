package get_available_slots

import (
	"context"
	"time"

	"github.com/avolkhov/SFP-FieldService/internal/domain"
)

// FieldRepository интерфейс репозитория полей
type FieldRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Field, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByFieldAndDates(ctx context.Context, fieldID int64, from, to time.Time) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
