package reservationstore

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("reservationstore client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от хранилища
	ErrInvalidResponse = errors.New("reservationstore client: invalid response")

	// ErrUnavailable хранилище недоступно, команда не была принята
	ErrUnavailable = errors.New("reservationstore client: service unavailable")

	// ErrOutcomeUnknown изменяющая команда не получила ответа за отведенное время
	// Результат неизвестен, вызывающий должен перечитать состояние
	ErrOutcomeUnknown = errors.New("reservationstore client: command outcome unknown")
)
