package convert_booking_type

import (
	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/internal/service/bookings/models"
	convertBookingType "github.com/m04kA/SMC-TourBookingService/internal/usecase/convert_booking_type"
)

// ConvertBookingTypeRequest HTTP request model
type ConvertBookingTypeRequest struct {
	TargetType string `json:"targetType"` // "private" или "public"
}

// ConvertBookingTypeResponse HTTP response model
type ConvertBookingTypeResponse struct {
	Booking   models.BookingResponse  `json:"booking"`
	Departure models.DepartureSummary `json:"departure"`
	Verified  bool                    `json:"verified"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ConvertBookingTypeRequest) ToUseCaseRequest(bookingID int64) *convertBookingType.Request {
	return &convertBookingType.Request{
		BookingID:  bookingID,
		TargetType: domain.DepartureType(r.TargetType),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *convertBookingType.Response) *ConvertBookingTypeResponse {
	return &ConvertBookingTypeResponse{
		Booking:   *models.FromDomainBooking(resp.Booking),
		Departure: models.FromDomainDeparture(resp.Departure),
		Verified:  resp.Verified,
	}
}
