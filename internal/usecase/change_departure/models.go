package change_departure

import (
	"time"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
)

// Request модель запроса на смену даты или тура выезда
// Должно быть задано ровно одно из NewDate и NewTourID
type Request struct {
	DepartureID int64
	NewDate     *time.Time
	NewTourID   *int64
}

// Response авторитетное состояние выезда и его бронирований после команды
type Response struct {
	Departure *domain.Departure
	Bookings  []*domain.Booking

	// ExpectedPrices цена каждого активного бронирования по тарифам нового тура
	// Заполняется только при смене тура
	ExpectedPrices map[int64]int64
	// DriftedBookings бронирования, цена которых в хранилище отличается от ожидаемой
	DriftedBookings []int64
}

type datePayload struct {
	Date string `json:"date"`
}

type tourPayload struct {
	TourID int64 `json:"tourId"`
}
