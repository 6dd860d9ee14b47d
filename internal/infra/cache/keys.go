package cache

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
)

func TourKey(tourID int64) string {
	return fmt.Sprintf("tour:%d", tourID)
}

func DepartureKey(departureID int64) string {
	return fmt.Sprintf("departure:%d", departureID)
}

func DepartureBookingsKey(departureID int64) string {
	return fmt.Sprintf("departure:%d:bookings", departureID)
}

func BookingKey(bookingID int64) string {
	return fmt.Sprintf("booking:%d", bookingID)
}

// DeparturesKey ключ списка выездов тура на дату
func DeparturesKey(tourID int64, date time.Time) string {
	return fmt.Sprintf("departures:tour:%d:%s", tourID, date.Format(domain.DateFormat))
}
