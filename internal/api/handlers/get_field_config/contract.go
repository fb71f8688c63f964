package get_field_config

import (
	"context"

	"github.com/avolkhov/SFP-FieldService/internal/service/fields/models"
)

type FieldsService interface {
	GetByID(ctx context.Context, id int64) (*models.FieldResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
