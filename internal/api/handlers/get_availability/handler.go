package get_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TourBookingService/internal/api/handlers"
	getAvailability "github.com/m04kA/SMC-TourBookingService/internal/usecase/get_availability"
)

const (
	msgInvalidTourID = "некорректный ID тура"
	msgMissingParams = "параметры from и pax обязательны"
	msgInvalidParams = "некорректные параметры, ожидается from/to в формате YYYY-MM-DD и целое pax"
	msgInvalidInput  = "некорректные параметры поиска"
	msgDateInPast    = "диапазон дат начинается в прошлом"
	msgRangeTooLong  = "слишком длинный диапазон дат"
	msgTourInactive  = "тур снят с продажи"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tours/{tourId}/availability
// Query params: from (required), to, pax (required), currency
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tourID, err := handlers.PathID(r, "tourId")
	if err != nil {
		h.logger.Warn("GET /tours/{id}/availability - Invalid tour ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTourID)
		return
	}

	query := r.URL.Query()
	if query.Get("from") == "" || query.Get("pax") == "" {
		h.logger.Warn("GET /tours/{id}/availability - Missing params: tour_id=%d", tourID)
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	useCaseReq, err := ToUseCaseRequest(tourID, query.Get("from"), query.Get("to"), query.Get("pax"), query.Get("currency"))
	if err != nil {
		h.logger.Warn("GET /tours/{id}/availability - Invalid params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /tours/{id}/availability - Invalid input: tour_id=%d, error=%v", tourID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getAvailability.ErrInvalidDate):
			h.logger.Warn("GET /tours/{id}/availability - Range in the past: tour_id=%d", tourID)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailability.ErrRangeTooLong):
			h.logger.Warn("GET /tours/{id}/availability - Range too long: tour_id=%d, error=%v", tourID, err)
			handlers.RespondBadRequest(w, msgRangeTooLong)

		case errors.Is(err, getAvailability.ErrTourInactive):
			h.logger.Warn("GET /tours/{id}/availability - Tour inactive: tour_id=%d", tourID)
			handlers.RespondConflict(w, msgTourInactive)

		default:
			if status := handlers.RespondDomainError(w, err); status >= http.StatusInternalServerError {
				h.logger.Error("GET /tours/{id}/availability - Failed to get availability: tour_id=%d, error=%v", tourID, err)
			} else {
				h.logger.Warn("GET /tours/{id}/availability - Rejected: tour_id=%d, status=%d", tourID, status)
			}
		}
		return
	}

	h.logger.Info("GET /tours/{id}/availability - Availability retrieved: tour_id=%d, days=%d", tourID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
