package domain

// AvailableSpace возвращает количество мест, доступных конкретному бронированию
// excludingBookingPax - текущий вклад этого бронирования в CurrentPax (0 для нового)
func AvailableSpace(d *Departure, excludingBookingPax int) int {
	return d.MaxPax - (d.CurrentPax - excludingBookingPax)
}

// ValidatePaxChange проверяет, что бронирование может занять requestedPax мест
// booking == nil означает новое бронирование (присоединение к выезду)
// Проверка рекомендательная: окончательное решение принимает хранилище в момент записи
func ValidatePaxChange(d *Departure, booking *Booking, requestedPax int) error {
	current := 0
	if booking != nil && booking.IsActive() && booking.DepartureID == d.ID {
		current = booking.Pax
	}

	available := AvailableSpace(d, current)
	if requestedPax > available {
		if available < 0 {
			available = 0
		}
		return &CapacityExceededError{Requested: requestedPax, Available: available}
	}

	return nil
}
