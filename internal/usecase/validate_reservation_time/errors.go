package validate_reservation_time

import "errors"

var (
	// ErrFieldNotFound возвращается, когда поле не найдено
	ErrFieldNotFound = errors.New("validate_reservation_time: field not found")

	// ErrFieldMisconfigured возвращается, когда конфигурация поля не позволяет
	// построить таймлайн занятости
	ErrFieldMisconfigured = errors.New("validate_reservation_time: field is misconfigured")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("validate_reservation_time: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("validate_reservation_time: internal error")
)
