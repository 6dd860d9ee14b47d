package split_departure

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TourBookingService/internal/api/handlers"
	splitDeparture "github.com/m04kA/SMC-TourBookingService/internal/usecase/split_departure"
)

const (
	msgInvalidDepartureID = "некорректный ID выезда"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные выделения"
	msgBookingNotInDep    = "бронирование не относится к выезду"
	msgNothingToSplit     = "в выезде нет других активных бронирований"
)

type Handler struct {
	useCase SplitDepartureUseCase
	logger  Logger
}

func NewHandler(useCase SplitDepartureUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/departures/{departureId}/split
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	departureID, err := handlers.PathID(r, "departureId")
	if err != nil {
		h.logger.Warn("POST /departures/{id}/split - Invalid departure ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDepartureID)
		return
	}

	var req SplitDepartureRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /departures/{id}/split - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(departureID))
	if err != nil {
		switch {
		case errors.Is(err, splitDeparture.ErrInvalidInput):
			h.logger.Warn("POST /departures/{id}/split - Invalid input: departure_id=%d, error=%v", departureID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, splitDeparture.ErrBookingNotInDeparture):
			h.logger.Warn("POST /departures/{id}/split - Booking not in departure: departure_id=%d, booking_id=%d",
				departureID, req.BookingID)
			handlers.RespondConflict(w, msgBookingNotInDep)

		case errors.Is(err, splitDeparture.ErrNothingToSplit):
			h.logger.Warn("POST /departures/{id}/split - Nothing to split: departure_id=%d", departureID)
			handlers.RespondConflict(w, msgNothingToSplit)

		default:
			if status := handlers.RespondDomainError(w, err); status >= http.StatusInternalServerError {
				h.logger.Error("POST /departures/{id}/split - Failed to split departure: departure_id=%d, error=%v",
					departureID, err)
			} else {
				h.logger.Warn("POST /departures/{id}/split - Rejected: departure_id=%d, status=%d, error=%v",
					departureID, status, err)
			}
		}
		return
	}

	h.logger.Info("POST /departures/{id}/split - Departure split: source=%d, created=%d, booking_id=%d, verified=%t",
		departureID, result.Created.ID, req.BookingID, result.Verified)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
