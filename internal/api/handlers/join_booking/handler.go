package join_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TourBookingService/internal/api/handlers"
	joinBooking "github.com/m04kA/SMC-TourBookingService/internal/usecase/join_booking"
)

const (
	msgInvalidDepartureID = "некорректный ID выезда"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные бронирования"
	msgDepartureClosed    = "выезд не принимает бронирования"
	msgNotJoinable        = "частный выезд уже занят"
)

type Handler struct {
	useCase JoinBookingUseCase
	logger  Logger
}

func NewHandler(useCase JoinBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/departures/{departureId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	departureID, err := handlers.PathID(r, "departureId")
	if err != nil {
		h.logger.Warn("POST /departures/{id}/bookings - Invalid departure ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDepartureID)
		return
	}

	var req JoinBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /departures/{id}/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(departureID))
	if err != nil {
		switch {
		case errors.Is(err, joinBooking.ErrInvalidInput):
			h.logger.Warn("POST /departures/{id}/bookings - Invalid input: departure_id=%d, error=%v", departureID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, joinBooking.ErrDepartureClosed):
			h.logger.Warn("POST /departures/{id}/bookings - Departure closed: departure_id=%d", departureID)
			handlers.RespondConflict(w, msgDepartureClosed)

		case errors.Is(err, joinBooking.ErrDepartureNotJoinable):
			h.logger.Warn("POST /departures/{id}/bookings - Departure not joinable: departure_id=%d", departureID)
			handlers.RespondConflict(w, msgNotJoinable)

		default:
			if status := handlers.RespondDomainError(w, err); status >= http.StatusInternalServerError {
				h.logger.Error("POST /departures/{id}/bookings - Failed to join: departure_id=%d, error=%v", departureID, err)
			} else {
				h.logger.Warn("POST /departures/{id}/bookings - Rejected: departure_id=%d, status=%d, error=%v",
					departureID, status, err)
			}
		}
		return
	}

	h.logger.Info("POST /departures/{id}/bookings - Booking joined successfully: booking_id=%d, departure_id=%d, pax=%d",
		result.Booking.ID, departureID, result.Booking.Pax)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
