package transfer_booking

import "github.com/m04kA/SMC-TourBookingService/internal/domain"

// Request модель запроса на перевод бронирования в другой общий выезд
type Request struct {
	BookingID         int64
	TargetDepartureID int64
	Confirmed         bool // Перевод нельзя отменить автоматически
}

// Response авторитетное состояние обоих выездов после перевода
type Response struct {
	Booking *domain.Booking
	Source  *domain.Departure
	Target  *domain.Departure
}

type commandPayload struct {
	TargetDepartureID int64 `json:"targetDepartureId"`
}
