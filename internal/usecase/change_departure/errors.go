package change_departure

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("change_departure: invalid input data")

	// ErrInvalidDate возвращается, когда новая дата в прошлом
	ErrInvalidDate = errors.New("change_departure: new date is in the past")

	// ErrNothingToChange возвращается, когда новое значение совпадает с текущим
	ErrNothingToChange = errors.New("change_departure: value is unchanged")

	// ErrDepartureFinished возвращается для завершенного или отмененного выезда
	ErrDepartureFinished = errors.New("change_departure: departure is completed or cancelled")

	// ErrTourInactive возвращается, когда новый тур снят с продажи
	ErrTourInactive = errors.New("change_departure: tour is not active")
)
