package get_tour

import (
	"net/http"

	"github.com/m04kA/SMC-TourBookingService/internal/api/handlers"
)

const msgInvalidTourID = "некорректный ID тура"

type Handler struct {
	service TourService
	logger  Logger
}

func NewHandler(service TourService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/tours/{tourId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tourID, err := handlers.PathID(r, "tourId")
	if err != nil {
		h.logger.Warn("GET /tours/{id} - Invalid tour ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTourID)
		return
	}

	tour, err := h.service.GetByID(r.Context(), tourID)
	if err != nil {
		if status := handlers.RespondDomainError(w, err); status >= http.StatusInternalServerError {
			h.logger.Error("GET /tours/{id} - Failed to get tour: tour_id=%d, error=%v", tourID, err)
		} else {
			h.logger.Warn("GET /tours/{id} - Tour not available: tour_id=%d, status=%d", tourID, status)
		}
		return
	}

	h.logger.Info("GET /tours/{id} - Tour retrieved successfully: tour_id=%d", tourID)
	handlers.RespondJSON(w, http.StatusOK, tour)
}
