package approve_reservation

import (
	"context"

	"github.com/avolkhov/SFP-FieldService/internal/integrations/notifyservice"
	approveReservation "github.com/avolkhov/SFP-FieldService/internal/usecase/approve_reservation"
)

type ApproveReservationUseCase interface {
	Execute(ctx context.Context, req *approveReservation.Request) (*approveReservation.Response, error)
}

type NotifyServiceClient interface {
	SendReservationEventAsync(event notifyservice.ReservationEvent)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
