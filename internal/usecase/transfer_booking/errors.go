package transfer_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("transfer_booking: invalid input data")

	// ErrSameDeparture возвращается, когда целевой выезд совпадает с текущим
	ErrSameDeparture = errors.New("transfer_booking: target departure is the current departure")

	// ErrTourMismatch возвращается, когда целевой выезд относится к другому туру
	ErrTourMismatch = errors.New("transfer_booking: target departure belongs to another tour")

	// ErrTargetNotPublic возвращается, когда целевой выезд частный
	ErrTargetNotPublic = errors.New("transfer_booking: target departure is not public")

	// ErrTargetClosed возвращается, когда целевой выезд не принимает бронирования
	ErrTargetClosed = errors.New("transfer_booking: target departure is not open")
)
