package create_reservation

import (
	"context"

	"github.com/avolkhov/SFP-FieldService/internal/integrations/notifyservice"
	createReservation "github.com/avolkhov/SFP-FieldService/internal/usecase/create_reservation"
)

type CreateReservationUseCase interface {
	Execute(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error)
}

type NotifyServiceClient interface {
	SendReservationEventAsync(event notifyservice.ReservationEvent)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
