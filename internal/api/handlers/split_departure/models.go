package split_departure

import (
	bookingModels "github.com/m04kA/SMC-TourBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-TourBookingService/internal/service/departures/models"
	splitDeparture "github.com/m04kA/SMC-TourBookingService/internal/usecase/split_departure"
)

// SplitDepartureRequest HTTP request model
type SplitDepartureRequest struct {
	BookingID int64 `json:"bookingId"`
}

// SplitDepartureResponse HTTP response model
type SplitDepartureResponse struct {
	Source     *models.DepartureResponse      `json:"source"`
	Created    *models.DepartureResponse      `json:"created"`
	Booking    *bookingModels.BookingResponse `json:"booking"`
	Verified   bool                           `json:"verified"`
	Mismatches []string                       `json:"mismatches,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SplitDepartureRequest) ToUseCaseRequest(departureID int64) *splitDeparture.Request {
	return &splitDeparture.Request{
		DepartureID: departureID,
		BookingID:   r.BookingID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *splitDeparture.Response) *SplitDepartureResponse {
	return &SplitDepartureResponse{
		Source:     models.FromDomainDeparture(resp.Source),
		Created:    models.FromDomainDeparture(resp.Created),
		Booking:    bookingModels.FromDomainBooking(resp.Booking),
		Verified:   resp.Verified,
		Mismatches: resp.Mismatches,
	}
}
