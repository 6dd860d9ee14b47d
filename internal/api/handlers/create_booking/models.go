package create_booking

import (
	"time"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-TourBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	TourID   int64                  `json:"tourId"`
	Date     string                 `json:"date"` // "2026-11-20"
	Type     string                 `json:"type"` // "private" или "public"
	MaxPax   int                    `json:"maxPax,omitempty"`
	Customer models.CustomerRequest `json:"customer"`
	Pax      int                    `json:"pax"`
	Currency string                 `json:"currency,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		TourID:   r.TourID,
		Date:     date,
		Type:     domain.DepartureType(r.Type),
		MaxPax:   r.MaxPax,
		Customer: r.Customer.ToDomain(),
		Pax:      r.Pax,
		Currency: domain.Currency(r.Currency),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *models.BookingStateResponse {
	state := models.FromDomainState(resp.Booking, resp.Departure)
	expected := resp.ExpectedPrice
	state.ExpectedPrice = &expected
	state.PriceDrift = resp.PriceDrift
	return state
}
