package domain

import "fmt"

// RelatedBookings возвращает другие активные бронирования того же выезда
func RelatedBookings(booking *Booking, bookings []*Booking) []*Booking {
	related := make([]*Booking, 0)
	for _, b := range ActiveBookingsOf(booking.DepartureID, bookings) {
		if b.ID != booking.ID {
			related = append(related, b)
		}
	}
	return related
}

// IsDirectlyEditable определяет, можно ли менять дату или тур бронирования напрямую
// Разрешено для частного выезда или если бронирование единственное в выезде ("solo public")
// Иначе бронирование нужно сначала выделить (split) или перенести (transfer)
func IsDirectlyEditable(d *Departure, related []*Booking) bool {
	return d.Type == DepartureTypePrivate || len(related) == 0
}

// CanConvertToPublic проверяет перевод private -> public
func CanConvertToPublic(d *Departure) error {
	if d.Type != DepartureTypePrivate {
		return fmt.Errorf("%w: departure %d is already %s", ErrConversionBlocked, d.ID, d.Type)
	}
	return nil
}

// CanConvertToPrivate проверяет перевод public -> private
// Разрешено только если бронирование единственное активное в выезде
func CanConvertToPrivate(d *Departure, related []*Booking) error {
	if d.Type != DepartureTypePublic {
		return fmt.Errorf("%w: departure %d is already %s", ErrConversionBlocked, d.ID, d.Type)
	}
	if len(related) > 0 {
		return fmt.Errorf("%w: departure %d has %d other active bookings", ErrConversionBlocked, d.ID, len(related))
	}
	return nil
}

// ValidateConversion проверяет перевод бронирования в целевой тип
func ValidateConversion(d *Departure, related []*Booking, target DepartureType) error {
	switch target {
	case DepartureTypePublic:
		return CanConvertToPublic(d)
	case DepartureTypePrivate:
		return CanConvertToPrivate(d, related)
	default:
		return fmt.Errorf("%w: unknown target type %q", ErrConversionBlocked, target)
	}
}
