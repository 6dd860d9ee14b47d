package update_booking_details

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
	msgInvalidCustomer    = "некорректные данные клиента"
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

// Handle PUT /api/v1/bookings/{bookingId}/details
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathID(r, "bookingId")
	if err != nil {
		h.logger.Warn("PUT /bookings/{id}/details - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req models.UpdateDetailsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id}/details - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	state, err := h.service.UpdateDetails(r.Context(), bookingID, &req)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("PUT /bookings/{id}/details - Invalid customer: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidCustomer)
			return
		}

		if status := handlers.RespondDomainError(w, err); status >= http.StatusInternalServerError {
			h.logger.Error("PUT /bookings/{id}/details - Failed to update details: booking_id=%d, error=%v", bookingID, err)
		} else {
			h.logger.Warn("PUT /bookings/{id}/details - Rejected: booking_id=%d, status=%d, error=%v", bookingID, status, err)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id}/details - Details updated successfully: booking_id=%d", bookingID)
	handlers.RespondJSON(w, http.StatusOK, state)
}
