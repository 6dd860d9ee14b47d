package list_tours

import (
	"net/http"

	"github.com/m04kA/SMC-TourBookingService/internal/api/handlers"
)

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

// Handle GET /api/v1/tours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tours, err := h.service.List(r.Context())
	if err != nil {
		if status := handlers.RespondDomainError(w, err); status >= http.StatusInternalServerError {
			h.logger.Error("GET /tours - Failed to list tours: %v", err)
		} else {
			h.logger.Warn("GET /tours - Rejected: status=%d, error=%v", status, err)
		}
		return
	}

	h.logger.Info("GET /tours - Tours retrieved successfully: count=%d", len(tours.Tours))
	handlers.RespondJSON(w, http.StatusOK, tours)
}
