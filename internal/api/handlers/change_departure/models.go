package change_departure

import (
	bookingModels "github.com/m04kA/SMC-TourBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-TourBookingService/internal/service/departures/models"
	changeDeparture "github.com/m04kA/SMC-TourBookingService/internal/usecase/change_departure"
)

// ChangeDateRequest HTTP request model для смены даты
type ChangeDateRequest struct {
	Date string `json:"date"` // "2026-11-20"
}

// ChangeTourRequest HTTP request model для смены тура
type ChangeTourRequest struct {
	TourID int64 `json:"tourId"`
}

// ChangeDepartureResponse HTTP response model
type ChangeDepartureResponse struct {
	Departure       *models.DepartureResponse       `json:"departure"`
	Bookings        []bookingModels.BookingResponse `json:"bookings"`
	ExpectedPrices  map[int64]int64                 `json:"expectedPrices,omitempty"`
	DriftedBookings []int64                         `json:"driftedBookings,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *changeDeparture.Response) *ChangeDepartureResponse {
	return &ChangeDepartureResponse{
		Departure:       models.FromDomainDeparture(resp.Departure),
		Bookings:        bookingModels.FromDomainBookingList(resp.Bookings),
		ExpectedPrices:  resp.ExpectedPrices,
		DriftedBookings: resp.DriftedBookings,
	}
}
