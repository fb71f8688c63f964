package calculate_price

import "errors"

var (
	// ErrFieldNotFound возвращается, когда поле не найдено
	ErrFieldNotFound = errors.New("calculate_price: field not found")

	// ErrDurationOutOfRange возвращается, когда длительность вне диапазона поля
	ErrDurationOutOfRange = errors.New("calculate_price: duration is out of allowed range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("calculate_price: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("calculate_price: internal error")
)
