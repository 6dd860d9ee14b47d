package transfer_booking

import (
	"fmt"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingId must be positive", ErrInvalidInput)
	}

	if req.TargetDepartureID <= 0 {
		return fmt.Errorf("%w: targetDepartureId must be positive", ErrInvalidInput)
	}

	if !req.Confirmed {
		return fmt.Errorf("%w: transfer must be confirmed", domain.ErrConfirmationRequired)
	}

	return nil
}

// validateTarget проверяет, что целевой выезд может принять бронирование
func validateTarget(source, target *domain.Departure) error {
	if target.ID == source.ID {
		return ErrSameDeparture
	}

	if target.TourID != source.TourID {
		return fmt.Errorf("%w: tour %d, expected %d", ErrTourMismatch, target.TourID, source.TourID)
	}

	if !target.IsPublic() {
		return fmt.Errorf("%w: departure %d", ErrTargetNotPublic, target.ID)
	}

	if !target.IsOpen() {
		return fmt.Errorf("%w: departure %d is %s", ErrTargetClosed, target.ID, target.Status)
	}

	return nil
}
