package change_departure

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.DepartureID <= 0 {
		return fmt.Errorf("%w: departureId must be positive", ErrInvalidInput)
	}

	if (req.NewDate == nil) == (req.NewTourID == nil) {
		return fmt.Errorf("%w: exactly one of date or tourId is required", ErrInvalidInput)
	}

	if req.NewDate != nil && req.NewDate.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.NewTourID != nil && *req.NewTourID <= 0 {
		return fmt.Errorf("%w: tourId must be positive", ErrInvalidInput)
	}

	return nil
}

// validateChangeable проверяет, что выезд еще можно перепланировать
func validateChangeable(d *domain.Departure) error {
	if d.Status == domain.DepartureStatusCompleted || d.Status == domain.DepartureStatusCancelled {
		return fmt.Errorf("%w: departure %d is %s", ErrDepartureFinished, d.ID, d.Status)
	}
	return nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}

// expectedPrices пересчитывает цену каждого активного бронирования по тарифам тура с нуля
// Первое бронирование без подходящего тарифа прерывает расчет
func expectedPrices(tiers []domain.PricingTier, bookings []*domain.Booking) (map[int64]int64, error) {
	prices := make(map[int64]int64, len(bookings))
	for _, b := range bookings {
		price, err := domain.ComputePrice(tiers, b.Pax, b.Currency)
		if err != nil {
			return nil, fmt.Errorf("booking %d: %w", b.ID, err)
		}
		prices[b.ID] = price
	}
	return prices, nil
}

// driftedBookings возвращает ID бронирований, цена которых отличается от ожидаемой
func driftedBookings(expected map[int64]int64, bookings []*domain.Booking) []int64 {
	var drifted []int64
	for _, b := range bookings {
		if b == nil || !b.IsActive() {
			continue
		}
		price, ok := expected[b.ID]
		if ok && b.OriginalPrice != price {
			drifted = append(drifted, b.ID)
		}
	}
	return drifted
}
