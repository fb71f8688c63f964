package fields

import "errors"

var (
	// ErrFieldNotFound возвращается, когда поле не найдено
	ErrFieldNotFound = errors.New("field not found")

	// ErrAccessDenied возвращается, когда пользователь не является менеджером клуба
	ErrAccessDenied = errors.New("access denied")

	// ErrEmptyUpdate возвращается, когда запрос на обновление не меняет ничего
	ErrEmptyUpdate = errors.New("empty config update")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
