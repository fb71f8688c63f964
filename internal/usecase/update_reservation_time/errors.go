package update_reservation_time

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("update_reservation_time: reservation not found")

	// ErrFieldNotFound возвращается, когда поле бронирования не найдено
	ErrFieldNotFound = errors.New("update_reservation_time: field not found")

	// ErrFieldMisconfigured возвращается, когда конфигурация поля не позволяет
	// построить таймлайн занятости
	ErrFieldMisconfigured = errors.New("update_reservation_time: field is misconfigured")

	// ErrAccessDenied возвращается, когда пользователь не владелец заявки
	// и не менеджер клуба
	ErrAccessDenied = errors.New("update_reservation_time: access denied")

	// ErrCannotReschedule возвращается, когда бронирование не в статусе,
	// допускающем перенос
	ErrCannotReschedule = errors.New("update_reservation_time: reservation cannot be rescheduled")

	// ErrDurationOutOfRange возвращается, когда длительность вне диапазона поля
	ErrDurationOutOfRange = errors.New("update_reservation_time: duration is out of allowed range")

	// ErrSlotUnavailable возвращается, когда новый интервал не помещается
	// ни в одно свободное окно
	ErrSlotUnavailable = errors.New("update_reservation_time: slot is not available")

	// ErrConcurrencyConflict возвращается, когда сериализуемая транзакция
	// не смогла завершиться из-за конкурирующих бронирований
	ErrConcurrencyConflict = errors.New("update_reservation_time: concurrent reservation conflict")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_reservation_time: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_reservation_time: internal error")
)
