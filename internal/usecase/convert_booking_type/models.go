package convert_booking_type

import "github.com/m04kA/SMC-TourBookingService/internal/domain"

// Request модель запроса на смену типа бронирования
type Request struct {
	BookingID  int64
	TargetType domain.DepartureType
}

// Response авторитетное состояние после смены типа
type Response struct {
	Booking   *domain.Booking
	Departure *domain.Departure

	// Verified false, если тип выезда после команды не равен целевому
	Verified bool
}

type commandPayload struct {
	TargetType string `json:"targetType"`
}
