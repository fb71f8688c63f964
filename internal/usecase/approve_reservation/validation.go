package approve_reservation

import (
	"errors"
	"fmt"

	"github.com/avolkhov/SFP-FieldService/pkg/simpletxmanager"
	"github.com/avolkhov/SFP-FieldService/pkg/txmanager"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ReservationID <= 0 {
		return fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	return nil
}

// isSerializationConflict проверяет, что транзакция упала из-за конфликта
// сериализации, а не из-за инфраструктурной ошибки
func isSerializationConflict(err error) bool {
	return errors.Is(err, txmanager.ErrSerialization) || errors.Is(err, simpletxmanager.ErrSerialization)
}
