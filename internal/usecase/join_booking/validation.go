package join_booking

import (
	"fmt"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.DepartureID <= 0 {
		return fmt.Errorf("%w: departureId must be positive", ErrInvalidInput)
	}

	if req.Pax < domain.MinPax {
		return fmt.Errorf("%w: pax must be at least %d", ErrInvalidInput, domain.MinPax)
	}

	if req.Currency != "" && !req.Currency.IsValid() {
		return fmt.Errorf("%w: unsupported currency %q", ErrInvalidInput, req.Currency)
	}

	if err := req.Customer.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateJoinable проверяет, что выезд принимает новое бронирование
// Частный выезд без активных бронирований еще не закреплен за группой и открыт для присоединения
func validateJoinable(departure *domain.Departure, active []*domain.Booking) error {
	if !departure.IsOpen() {
		return fmt.Errorf("%w: departure %d is %s", ErrDepartureClosed, departure.ID, departure.Status)
	}

	if !departure.IsPublic() && len(active) > 0 {
		return fmt.Errorf("%w: departure %d", ErrDepartureNotJoinable, departure.ID)
	}

	return nil
}
