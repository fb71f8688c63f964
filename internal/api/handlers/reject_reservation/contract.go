package reject_reservation

import (
	"context"

	"github.com/avolkhov/SFP-FieldService/internal/integrations/notifyservice"
	"github.com/avolkhov/SFP-FieldService/internal/service/reservations/models"
)

type ReservationsService interface {
	Reject(ctx context.Context, reservationID int64, req *models.RejectReservationRequest) (*models.ReservationResponse, error)
}

type NotifyServiceClient interface {
	SendReservationEventAsync(event notifyservice.ReservationEvent)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
