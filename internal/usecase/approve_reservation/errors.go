package approve_reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("approve_reservation: reservation not found")

	// ErrFieldNotFound возвращается, когда поле бронирования не найдено
	ErrFieldNotFound = errors.New("approve_reservation: field not found")

	// ErrAccessDenied возвращается, когда пользователь не является менеджером клуба
	ErrAccessDenied = errors.New("approve_reservation: access denied")

	// ErrCannotApprove возвращается, когда бронирование не в статусе,
	// допускающем подтверждение
	ErrCannotApprove = errors.New("approve_reservation: reservation cannot be approved")

	// ErrNoFreeTerrain возвращается, когда все площадки на интервале уже
	// заняты подтверждёнными бронированиями
	ErrNoFreeTerrain = errors.New("approve_reservation: no free terrain for this interval")

	// ErrConcurrencyConflict возвращается, когда сериализуемая транзакция
	// не смогла завершиться из-за конкурирующих подтверждений
	ErrConcurrencyConflict = errors.New("approve_reservation: concurrent approval conflict")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("approve_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("approve_reservation: internal error")
)
