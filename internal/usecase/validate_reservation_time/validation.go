package validate_reservation_time

import (
	"fmt"

	"github.com/avolkhov/SFP-FieldService/pkg/timeutil"
)

// validateRequest валидирует входные данные и возвращает интервал в минутах
// от начала суток. Некорректный формат времени - ошибка входных данных, а не
// Valid=false: клиент прислал мусор, а не неудачное время.
func validateRequest(req *Request) (start, end int, err error) {
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

	return start, end, nil
}
