package join_booking

import "github.com/m04kA/SMC-TourBookingService/internal/domain"

// Request модель запроса на присоединение к существующему выезду
type Request struct {
	DepartureID int64
	Customer    domain.Customer
	Pax         int
	Currency    domain.Currency // Пусто - валюта по умолчанию
}

// Response авторитетное состояние после присоединения
type Response struct {
	Booking   *domain.Booking
	Departure *domain.Departure

	ExpectedPrice int64
	PriceDrift    bool
}
