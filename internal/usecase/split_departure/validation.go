package split_departure

import (
	"fmt"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/internal/integrations/reservationstore"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.DepartureID <= 0 {
		return fmt.Errorf("%w: departureId must be positive", ErrInvalidInput)
	}

	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingId must be positive", ErrInvalidInput)
	}

	return nil
}

// findActiveBooking ищет активное бронирование выезда по ID
func findActiveBooking(departureID, bookingID int64, bookings []*domain.Booking) *domain.Booking {
	for _, b := range domain.ActiveBookingsOf(departureID, bookings) {
		if b.ID == bookingID {
			return b
		}
	}
	return nil
}

// verifySplit сверяет результат хранилища с ожидаемым состоянием
// Новый выезд - копия исходного (тур, дата, вместимость, тип), бронирование перенесено в него,
// а заполненность исходного выезда уменьшилась на pax бронирования
func verifySplit(source *domain.Departure, booking *domain.Booking, sourcePaxBefore int, result *reservationstore.SplitResult) []string {
	var mismatches []string

	created := result.Created
	if created.TourID != source.TourID {
		mismatches = append(mismatches, fmt.Sprintf("created tourId %d, expected %d", created.TourID, source.TourID))
	}
	if !created.Date.Equal(source.Date) {
		mismatches = append(mismatches, fmt.Sprintf("created date %s, expected %s",
			created.Date.Format(domain.DateFormat), source.Date.Format(domain.DateFormat)))
	}
	if created.MaxPax != source.MaxPax {
		mismatches = append(mismatches, fmt.Sprintf("created maxPax %d, expected %d", created.MaxPax, source.MaxPax))
	}
	if created.Type != source.Type {
		mismatches = append(mismatches, fmt.Sprintf("created type %s, expected %s", created.Type, source.Type))
	}

	if result.Booking.DepartureID != created.ID {
		mismatches = append(mismatches, fmt.Sprintf("booking points to departure %d, expected %d", result.Booking.DepartureID, created.ID))
	}

	expectedPax := sourcePaxBefore - booking.Pax
	if result.Source.CurrentPax != expectedPax {
		mismatches = append(mismatches, fmt.Sprintf("source currentPax %d, expected %d", result.Source.CurrentPax, expectedPax))
	}

	return mismatches
}
