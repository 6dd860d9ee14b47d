package transfer_booking

import (
	"github.com/m04kA/SMC-TourBookingService/internal/service/bookings/models"
	transferBooking "github.com/m04kA/SMC-TourBookingService/internal/usecase/transfer_booking"
)

// TransferBookingRequest HTTP request model
type TransferBookingRequest struct {
	TargetDepartureID int64 `json:"targetDepartureId"`
	Confirmed         bool  `json:"confirmed"`
}

// TransferBookingResponse HTTP response model
type TransferBookingResponse struct {
	Booking models.BookingResponse  `json:"booking"`
	Source  models.DepartureSummary `json:"source"`
	Target  models.DepartureSummary `json:"target"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *TransferBookingRequest) ToUseCaseRequest(bookingID int64) *transferBooking.Request {
	return &transferBooking.Request{
		BookingID:         bookingID,
		TargetDepartureID: r.TargetDepartureID,
		Confirmed:         r.Confirmed,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *transferBooking.Response) *TransferBookingResponse {
	return &TransferBookingResponse{
		Booking: *models.FromDomainBooking(resp.Booking),
		Source:  models.FromDomainDeparture(resp.Source),
		Target:  models.FromDomainDeparture(resp.Target),
	}
}
