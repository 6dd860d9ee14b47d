package move_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TourBookingService/internal/api/handlers"
	moveBooking "github.com/m04kA/SMC-TourBookingService/internal/usecase/move_booking"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные переноса"
	msgDateInPast         = "новая дата в прошлом"
	msgNothingToChange    = "тур и дата не изменились"
	msgNotEditable        = "бронирование в общем выезде, сначала выделите его или переведите"
	msgTourInactive       = "тур снят с продажи"
)

type Handler struct {
	useCase MoveBookingUseCase
	logger  Logger
}

func NewHandler(useCase MoveBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/move
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathID(r, "bookingId")
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/move - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req MoveBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/move - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/move - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, moveBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/move - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, moveBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings/{id}/move - Date in the past: booking_id=%d, date=%s", bookingID, req.NewDate)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, moveBooking.ErrNothingToChange):
			h.logger.Warn("POST /bookings/{id}/move - Nothing to change: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgNothingToChange)

		case errors.Is(err, moveBooking.ErrBookingNotEditable):
			h.logger.Warn("POST /bookings/{id}/move - Booking not editable: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgNotEditable)

		case errors.Is(err, moveBooking.ErrTourInactive):
			h.logger.Warn("POST /bookings/{id}/move - Tour inactive: booking_id=%d, tour_id=%d", bookingID, req.NewTourID)
			handlers.RespondConflict(w, msgTourInactive)

		default:
			if status := handlers.RespondDomainError(w, err); status >= http.StatusInternalServerError {
				h.logger.Error("POST /bookings/{id}/move - Failed to move booking: booking_id=%d, error=%v", bookingID, err)
			} else {
				h.logger.Warn("POST /bookings/{id}/move - Rejected: booking_id=%d, status=%d, error=%v", bookingID, status, err)
			}
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/move - Booking moved successfully: booking_id=%d, from_departure=%d, to_departure=%d",
		bookingID, result.PreviousDeparture.ID, result.Departure.ID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
