package field

import "errors"

var (
	// ErrFieldNotFound возвращается, когда поле не найдено
	ErrFieldNotFound = errors.New("field.repository: field not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("field.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("field.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("field.repository: failed to scan row")

	// ErrInvalidTime возвращается при некорректном времени работы в БД
	ErrInvalidTime = errors.New("field.repository: invalid stored operating hours")

	// ErrEmptyUpdate возвращается, когда команда обновления не меняет ничего
	ErrEmptyUpdate = errors.New("field.repository: empty update")
)
