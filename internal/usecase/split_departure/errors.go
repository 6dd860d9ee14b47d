package split_departure

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("split_departure: invalid input data")

	// ErrBookingNotInDeparture возвращается, когда бронирование не является активным в выезде
	ErrBookingNotInDeparture = errors.New("split_departure: booking is not active in the departure")

	// ErrNothingToSplit возвращается, когда бронирование единственное в выезде
	ErrNothingToSplit = errors.New("split_departure: departure has no other active bookings")
)
