package convert_booking_type

import "errors"

// ErrInvalidInput возвращается при некорректных входных данных
var ErrInvalidInput = errors.New("convert_booking_type: invalid input data")
