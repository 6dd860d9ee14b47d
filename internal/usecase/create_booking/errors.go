package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDate возвращается, когда дата выезда в прошлом
	ErrInvalidDate = errors.New("create_booking: departure date is in the past")

	// ErrTourInactive возвращается, когда тур снят с продажи
	ErrTourInactive = errors.New("create_booking: tour is not active")
)
