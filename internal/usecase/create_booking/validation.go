package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TourID <= 0 {
		return fmt.Errorf("%w: tourId must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !req.Type.IsValid() {
		return fmt.Errorf("%w: type must be private or public", ErrInvalidInput)
	}

	if req.Pax < domain.MinPax {
		return fmt.Errorf("%w: pax must be at least %d", ErrInvalidInput, domain.MinPax)
	}

	if req.MaxPax < 0 {
		return fmt.Errorf("%w: maxPax must not be negative", ErrInvalidInput)
	}

	if req.Currency != "" && !req.Currency.IsValid() {
		return fmt.Errorf("%w: unsupported currency %q", ErrInvalidInput, req.Currency)
	}

	if err := req.Customer.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}
