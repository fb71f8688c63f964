package get_field_reservations

import (
	"context"

	"github.com/avolkhov/SFP-FieldService/internal/service/reservations/models"
)

type ReservationsService interface {
	GetFieldReservations(ctx context.Context, req *models.GetFieldReservationsRequest) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
