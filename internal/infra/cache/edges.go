package cache

import "github.com/m04kA/SMC-TourBookingService/internal/domain"

// Ребра инвалидации: какие ключи сбрасывает каждая изменяющая команда
// Кэш никогда не патчится, только сбрасывается и перечитывается из хранилища
//
//	create_booking, join_booking          departure(+bookings, +list)
//	status, pax, details, discount,
//	convert_booking_type                  booking, departure(+bookings, +list)
//	move_booking                          booking, old and new departure(+bookings, +list)
//	transfer_booking                      booking, source and target departure(+bookings, +list)
//	split_departure                       booking, source and created departure(+bookings, +list)
//	update_departure_date / tour          departure(+bookings), old and new list, every booking
//	delete_departure                      departure(+bookings, +list)
//	update_tour_pricing                   tour

func departureKeys(d *domain.Departure) []string {
	if d == nil {
		return nil
	}
	return []string{
		DepartureKey(d.ID),
		DepartureBookingsKey(d.ID),
		DeparturesKey(d.TourID, d.Date),
	}
}

func unique(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	result := make([]string, 0, len(keys))
	for _, key := range keys {
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, key)
	}
	return result
}

// DepartureKeys ключи выезда, его бронирований и списка выездов тура на дату
func DepartureKeys(d *domain.Departure) []string {
	return departureKeys(d)
}

// BookingKeys ключи команды над одним бронированием без смены выезда
func BookingKeys(bookingID int64, d *domain.Departure) []string {
	return unique(append([]string{BookingKey(bookingID)}, departureKeys(d)...))
}

// RelocationKeys ключи команды, перемещающей бронирование между выездами
// Используется для move_booking, transfer_booking и split_departure
func RelocationKeys(bookingID int64, from, to *domain.Departure) []string {
	keys := []string{BookingKey(bookingID)}
	keys = append(keys, departureKeys(from)...)
	keys = append(keys, departureKeys(to)...)
	return unique(keys)
}

// DepartureChangeKeys ключи смены даты или тура выезда
// before - состояние до команды, after - авторитетное состояние после
func DepartureChangeKeys(before, after *domain.Departure, bookings []*domain.Booking) []string {
	keys := departureKeys(before)
	keys = append(keys, departureKeys(after)...)
	for _, b := range bookings {
		if b != nil {
			keys = append(keys, BookingKey(b.ID))
		}
	}
	return unique(keys)
}

// TourKeys ключи команды изменения тура
func TourKeys(tourID int64) []string {
	return []string{TourKey(tourID)}
}
