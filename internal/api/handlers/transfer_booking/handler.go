package transfer_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TourBookingService/internal/api/handlers"
	transferBooking "github.com/m04kA/SMC-TourBookingService/internal/usecase/transfer_booking"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные перевода"
	msgSameDeparture      = "бронирование уже в этом выезде"
	msgTourMismatch       = "выезд принадлежит другому туру"
	msgTargetNotPublic    = "перевод возможен только в общий выезд"
	msgTargetClosed       = "целевой выезд не принимает бронирования"
)

type Handler struct {
	useCase TransferBookingUseCase
	logger  Logger
}

func NewHandler(useCase TransferBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/transfer
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathID(r, "bookingId")
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/transfer - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req TransferBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/transfer - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(bookingID))
	if err != nil {
		switch {
		case errors.Is(err, transferBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/transfer - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, transferBooking.ErrSameDeparture):
			h.logger.Warn("POST /bookings/{id}/transfer - Same departure: booking_id=%d, target=%d",
				bookingID, req.TargetDepartureID)
			handlers.RespondBadRequest(w, msgSameDeparture)

		case errors.Is(err, transferBooking.ErrTourMismatch):
			h.logger.Warn("POST /bookings/{id}/transfer - Tour mismatch: booking_id=%d, target=%d",
				bookingID, req.TargetDepartureID)
			handlers.RespondConflict(w, msgTourMismatch)

		case errors.Is(err, transferBooking.ErrTargetNotPublic):
			h.logger.Warn("POST /bookings/{id}/transfer - Target not public: booking_id=%d, target=%d",
				bookingID, req.TargetDepartureID)
			handlers.RespondConflict(w, msgTargetNotPublic)

		case errors.Is(err, transferBooking.ErrTargetClosed):
			h.logger.Warn("POST /bookings/{id}/transfer - Target closed: booking_id=%d, target=%d",
				bookingID, req.TargetDepartureID)
			handlers.RespondConflict(w, msgTargetClosed)

		default:
			if status := handlers.RespondDomainError(w, err); status >= http.StatusInternalServerError {
				h.logger.Error("POST /bookings/{id}/transfer - Failed to transfer booking: booking_id=%d, error=%v",
					bookingID, err)
			} else {
				h.logger.Warn("POST /bookings/{id}/transfer - Rejected: booking_id=%d, status=%d, error=%v",
					bookingID, status, err)
			}
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/transfer - Booking transferred successfully: booking_id=%d, from=%d, to=%d",
		bookingID, result.Source.ID, result.Target.ID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
