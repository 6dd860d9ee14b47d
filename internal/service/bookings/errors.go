package bookings

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrDepartureClosed возвращается при увеличении pax в выезде, который не принимает бронирования
	ErrDepartureClosed = errors.New("bookings: departure is not open")

	// ErrNothingToChange возвращается, когда новое значение совпадает с текущим
	ErrNothingToChange = errors.New("bookings: value is unchanged")
)
