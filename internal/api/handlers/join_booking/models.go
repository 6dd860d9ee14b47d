package join_booking

import (
	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/internal/service/bookings/models"
	joinBooking "github.com/m04kA/SMC-TourBookingService/internal/usecase/join_booking"
)

// JoinBookingRequest HTTP request model
type JoinBookingRequest struct {
	Customer models.CustomerRequest `json:"customer"`
	Pax      int                    `json:"pax"`
	Currency string                 `json:"currency,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *JoinBookingRequest) ToUseCaseRequest(departureID int64) *joinBooking.Request {
	return &joinBooking.Request{
		DepartureID: departureID,
		Customer:    r.Customer.ToDomain(),
		Pax:         r.Pax,
		Currency:    domain.Currency(r.Currency),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *joinBooking.Response) *models.BookingStateResponse {
	state := models.FromDomainState(resp.Booking, resp.Departure)
	expected := resp.ExpectedPrice
	state.ExpectedPrice = &expected
	state.PriceDrift = resp.PriceDrift
	return state
}
