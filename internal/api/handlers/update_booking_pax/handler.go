package update_booking_pax

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TourBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-TourBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-TourBookingService/internal/service/bookings/models"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidPax         = "количество человек должно быть положительным"
	msgDepartureClosed    = "выезд не принимает новых участников"
	msgNothingToChange    = "количество человек не изменилось"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/pax
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathID(r, "bookingId")
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/pax - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req models.UpdatePaxRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/pax - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	state, err := h.service.UpdatePax(r.Context(), bookingID, &req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/pax - Invalid pax: booking_id=%d, pax=%d", bookingID, req.Pax)
			handlers.RespondBadRequest(w, msgInvalidPax)

		case errors.Is(err, bookings.ErrDepartureClosed):
			h.logger.Warn("PATCH /bookings/{id}/pax - Departure closed: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgDepartureClosed)

		case errors.Is(err, bookings.ErrNothingToChange):
			h.logger.Warn("PATCH /bookings/{id}/pax - Nothing to change: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgNothingToChange)

		default:
			if status := handlers.RespondDomainError(w, err); status >= http.StatusInternalServerError {
				h.logger.Error("PATCH /bookings/{id}/pax - Failed to update pax: booking_id=%d, error=%v", bookingID, err)
			} else {
				h.logger.Warn("PATCH /bookings/{id}/pax - Rejected: booking_id=%d, pax=%d, status=%d, error=%v",
					bookingID, req.Pax, status, err)
			}
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/pax - Pax updated successfully: booking_id=%d, pax=%d, final_price=%d",
		bookingID, state.Booking.Pax, state.Booking.FinalPrice)
	handlers.RespondJSON(w, http.StatusOK, state)
}
