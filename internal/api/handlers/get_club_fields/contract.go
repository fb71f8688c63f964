package get_club_fields

import (
	"context"

	"github.com/avolkhov/SFP-FieldService/internal/service/fields/models"
)

type FieldsService interface {
	GetByClub(ctx context.Context, clubID int64) (*models.FieldListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
