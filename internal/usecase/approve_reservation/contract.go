package approve_reservation

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
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByFieldAndDates(ctx context.Context, fieldID int64, from, to time.Time) ([]*domain.Reservation, error)
	Approve(ctx context.Context, id int64, terrainID int64) error
}

// ClubServiceClient интерфейс клиента для ClubService
type ClubServiceClient interface {
	IsManager(ctx context.Context, clubID, userID int64) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
