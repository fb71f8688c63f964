package create_reservation

import (
	"errors"
	"fmt"

	"github.com/avolkhov/SFP-FieldService/internal/domain"
	"github.com/avolkhov/SFP-FieldService/pkg/simpletxmanager"
	"github.com/avolkhov/SFP-FieldService/pkg/timeutil"
	"github.com/avolkhov/SFP-FieldService/pkg/txmanager"
)

// validateRequest валидирует входные данные и возвращает интервал в минутах
// от начала суток
func validateRequest(req *Request) (start, end int, err error) {
	if req.UserID <= 0 {
		return 0, 0, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.FieldID <= 0 {
		return 0, 0, fmt.Errorf("%w: fieldID must be positive", ErrInvalidInput)
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

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return 0, 0, fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return start, end, nil
}

// isSerializationConflict проверяет, что транзакция упала из-за конфликта
// сериализации, а не из-за инфраструктурной ошибки
func isSerializationConflict(err error) bool {
	return errors.Is(err, txmanager.ErrSerialization) || errors.Is(err, simpletxmanager.ErrSerialization)
}
