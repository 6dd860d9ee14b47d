package get_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInvalidDate возвращается, когда начало диапазона в прошлом
	ErrInvalidDate = errors.New("get_availability: range starts in the past")

	// ErrRangeTooLong возвращается, когда диапазон длиннее допустимого
	ErrRangeTooLong = errors.New("get_availability: date range is too long")

	// ErrTourInactive возвращается, когда тур снят с продажи
	ErrTourInactive = errors.New("get_availability: tour is not active")
)
