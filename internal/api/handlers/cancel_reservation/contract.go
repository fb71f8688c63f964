package cancel_reservation

import (
	"context"

	"github.com/avolkhov/SFP-FieldService/internal/integrations/notifyservice"
	"github.com/avolkhov/SFP-FieldService/internal/service/reservations/models"
)

type ReservationsService interface {
	Cancel(ctx context.Context, reservationID int64, req *models.CancelReservationRequest) (*models.ReservationResponse, error)
}

type NotifyServiceClient interface {
	SendReservationEventAsync(event notifyservice.ReservationEvent)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
