package fields

import (
	"context"

	"github.com/avolkhov/SFP-FieldService/internal/domain"
)

// FieldRepository интерфейс репозитория полей
type FieldRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Field, error)
	GetByClub(ctx context.Context, clubID int64) ([]*domain.Field, error)
	UpdateConfig(ctx context.Context, id int64, update domain.FieldConfigUpdate) error
}

// ClubServiceClient интерфейс клиента для ClubService
type ClubServiceClient interface {
	IsManager(ctx context.Context, clubID, userID int64) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
