package update_reservation_time

import (
	"context"

	"github.com/avolkhov/SFP-FieldService/internal/integrations/notifyservice"
	updateReservationTime "github.com/avolkhov/SFP-FieldService/internal/usecase/update_reservation_time"
)

type UpdateReservationTimeUseCase interface {
	Execute(ctx context.Context, req *updateReservationTime.Request) (*updateReservationTime.Response, error)
}

type NotifyServiceClient interface {
	SendReservationEventAsync(event notifyservice.ReservationEvent)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
