package convert_booking_type

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TourBookingService/internal/api/handlers"
	convertBookingType "github.com/m04kA/SMC-TourBookingService/internal/usecase/convert_booking_type"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTargetType  = "некорректный тип, ожидается private или public"
)

type Handler struct {
	useCase ConvertBookingTypeUseCase
	logger  Logger
}

func NewHandler(useCase ConvertBookingTypeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/convert
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathID(r, "bookingId")
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/convert - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req ConvertBookingTypeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/convert - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(bookingID))
	if err != nil {
		if errors.Is(err, convertBookingType.ErrInvalidInput) {
			h.logger.Warn("POST /bookings/{id}/convert - Invalid target type: booking_id=%d, type=%s", bookingID, req.TargetType)
			handlers.RespondBadRequest(w, msgInvalidTargetType)
			return
		}

		if status := handlers.RespondDomainError(w, err); status >= http.StatusInternalServerError {
			h.logger.Error("POST /bookings/{id}/convert - Failed to convert booking: booking_id=%d, error=%v", bookingID, err)
		} else {
			h.logger.Warn("POST /bookings/{id}/convert - Rejected: booking_id=%d, status=%d, error=%v", bookingID, status, err)
		}
		return
	}

	if !result.Verified {
		h.logger.Error("POST /bookings/{id}/convert - Store state does not match requested type: booking_id=%d, type=%s",
			bookingID, req.TargetType)
	}

	h.logger.Info("POST /bookings/{id}/convert - Booking type converted: booking_id=%d, type=%s", bookingID, req.TargetType)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
