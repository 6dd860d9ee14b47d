package convert_booking_type

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingId must be positive", ErrInvalidInput)
	}

	if !req.TargetType.IsValid() {
		return fmt.Errorf("%w: targetType must be private or public", ErrInvalidInput)
	}

	return nil
}
