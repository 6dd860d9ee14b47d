package join_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("join_booking: invalid input data")

	// ErrDepartureClosed возвращается, когда выезд не принимает новые бронирования
	ErrDepartureClosed = errors.New("join_booking: departure is not open")

	// ErrDepartureNotJoinable возвращается для частного выезда, уже занятого другой группой
	ErrDepartureNotJoinable = errors.New("join_booking: private departure already has bookings")
)
