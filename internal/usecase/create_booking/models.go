package create_booking

import (
	"time"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
)

// Request модель запроса на создание бронирования с новым выездом
type Request struct {
	TourID   int64
	Date     time.Time            // Дата выезда (без времени)
	Type     domain.DepartureType // private или public
	MaxPax   int                  // Вместимость нового выезда (0 - значение по умолчанию)
	Customer domain.Customer
	Pax      int
	Currency domain.Currency // Пусто - валюта по умолчанию
}

// Response авторитетное состояние после создания
type Response struct {
	Booking   *domain.Booking
	Departure *domain.Departure

	// ExpectedPrice цена, рассчитанная локально по тарифам тура
	ExpectedPrice int64
	PriceDrift    bool
}
