package update_reservation_time

import (
	"errors"
	"fmt"

	"github.com/avolkhov/SFP-FieldService/pkg/simpletxmanager"
	"github.com/avolkhov/SFP-FieldService/pkg/timeutil"
	"github.com/avolkhov/SFP-FieldService/pkg/txmanager"
)

// validateRequest валидирует входные данные и возвращает интервал в минутах
// от начала суток
func validateRequest(req *Request) (start, end int, err error) {
	if req.ReservationID <= 0 {
		return 0, 0, fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return 0, 0, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return 0, 0, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	start, err = timeutil.ToMinutes(req.StartTime)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	end, err = timeutil.ToMinutes(req.EndTime)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	return start, end, nil
}

// isSerializationConflict проверяет, что транзакция упала из-за конфликта
// сериализации, а не из-за инфраструктурной ошибки
func isSerializationConflict(err error) bool {
	return errors.Is(err, txmanager.ErrSerialization) || errors.Is(err, simpletxmanager.ErrSerialization)
}
