package update_field_config

import (
	"context"

	"github.com/avolkhov/SFP-FieldService/internal/service/fields/models"
)

type FieldsService interface {
	UpdateConfig(ctx context.Context, fieldID int64, req *models.UpdateFieldConfigRequest) (*models.FieldResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
