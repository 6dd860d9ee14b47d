package move_booking

import (
	"time"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
)

// Request модель запроса на перенос бронирования на другой тур и/или дату
type Request struct {
	BookingID int64
	NewTourID int64     // 0 - тур не меняется
	NewDate   time.Time // Нулевое значение - дата не меняется
}

// Response авторитетное состояние после переноса
type Response struct {
	Booking           *domain.Booking
	Departure         *domain.Departure
	PreviousDeparture *domain.Departure

	// ExpectedPrice цена тарифа нового тура * pax, никогда не выводится из старой цены
	ExpectedPrice int64
	PriceDrift    bool
}

// commandPayload тело команды для журнала
type commandPayload struct {
	NewTourID int64  `json:"newTourId"`
	NewDate   string `json:"newDate"`
}
