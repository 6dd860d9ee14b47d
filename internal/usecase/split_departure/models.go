package split_departure

import "github.com/m04kA/SMC-TourBookingService/internal/domain"

// Request модель запроса на выделение бронирования в собственный выезд
type Request struct {
	DepartureID int64
	BookingID   int64
}

// Response авторитетное состояние после выделения
type Response struct {
	Source  *domain.Departure
	Created *domain.Departure
	Booking *domain.Booking

	// Verified false, если состояние хранилища не совпало с ожидаемым
	Verified   bool
	Mismatches []string
}

type commandPayload struct {
	BookingID int64 `json:"bookingId"`
}
