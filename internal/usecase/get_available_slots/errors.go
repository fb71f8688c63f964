package get_available_slots

import "errors"

var (
	// ErrFieldNotFound возвращается, когда поле не найдено
	ErrFieldNotFound = errors.New("get_available_slots: field not found")

	// ErrFieldMisconfigured возвращается, когда конфигурация поля не позволяет
	// построить таймлайн занятости
	ErrFieldMisconfigured = errors.New("get_available_slots: field is misconfigured")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
