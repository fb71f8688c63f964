package create_reservation

import "errors"

var (
	// ErrFieldNotFound возвращается, когда поле не найдено
	ErrFieldNotFound = errors.New("create_reservation: field not found")

	// ErrFieldMisconfigured возвращается, когда конфигурация поля не позволяет
	// построить таймлайн занятости
	ErrFieldMisconfigured = errors.New("create_reservation: field is misconfigured")

	// ErrDurationOutOfRange возвращается, когда длительность вне диапазона поля
	ErrDurationOutOfRange = errors.New("create_reservation: duration is out of allowed range")

	// ErrSlotUnavailable возвращается, когда запрошенный интервал не помещается
	// ни в одно свободное окно
	ErrSlotUnavailable = errors.New("create_reservation: slot is not available")

	// ErrConcurrencyConflict возвращается, когда сериализуемая транзакция
	// не смогла завершиться из-за конкурирующих бронирований
	ErrConcurrencyConflict = errors.New("create_reservation: concurrent reservation conflict")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
