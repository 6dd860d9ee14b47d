package move_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("move_booking: invalid input data")

	// ErrInvalidDate возвращается, когда новая дата в прошлом
	ErrInvalidDate = errors.New("move_booking: new date is in the past")

	// ErrNothingToChange возвращается, когда тур и дата совпадают с текущими
	ErrNothingToChange = errors.New("move_booking: tour and date are unchanged")

	// ErrBookingNotEditable возвращается для бронирования в общем выезде с другими клиентами
	ErrBookingNotEditable = errors.New("move_booking: booking shares a public departure, split or transfer it first")

	// ErrTourInactive возвращается, когда новый тур снят с продажи
	ErrTourInactive = errors.New("move_booking: tour is not active")
)
