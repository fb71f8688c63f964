package validate_reservation_time

import (
	"context"

	validateReservationTime "github.com/avolkhov/SFP-FieldService/internal/usecase/validate_reservation_time"
)

type ValidateReservationTimeUseCase interface {
	Execute(ctx context.Context, req *validateReservationTime.Request) (*validateReservationTime.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
