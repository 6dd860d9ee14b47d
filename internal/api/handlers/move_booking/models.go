package move_booking

import (
	"time"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/internal/service/bookings/models"
	moveBooking "github.com/m04kA/SMC-TourBookingService/internal/usecase/move_booking"
)

// MoveBookingRequest HTTP request model
// Пустое поле означает, что значение не меняется
type MoveBookingRequest struct {
	NewTourID int64  `json:"newTourId,omitempty"`
	NewDate   string `json:"newDate,omitempty"` // "2026-11-20"
}

// MoveBookingResponse HTTP response model
type MoveBookingResponse struct {
	models.BookingStateResponse
	PreviousDeparture models.DepartureSummary `json:"previousDeparture"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *MoveBookingRequest) ToUseCaseRequest(bookingID int64) (*moveBooking.Request, error) {
	req := &moveBooking.Request{
		BookingID: bookingID,
		NewTourID: r.NewTourID,
	}

	if r.NewDate != "" {
		date, err := time.Parse(domain.DateFormat, r.NewDate)
		if err != nil {
			return nil, err
		}
		req.NewDate = date
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *moveBooking.Response) *MoveBookingResponse {
	state := models.FromDomainState(resp.Booking, resp.Departure)
	expected := resp.ExpectedPrice
	state.ExpectedPrice = &expected
	state.PriceDrift = resp.PriceDrift

	return &MoveBookingResponse{
		BookingStateResponse: *state,
		PreviousDeparture:    models.FromDomainDeparture(resp.PreviousDeparture),
	}
}
