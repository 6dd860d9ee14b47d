package update_tour_pricing

import (
	"net/http"

	"github.com/m04kA/SMC-TourBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-TourBookingService/internal/service/tours/models"
)

const (
	msgInvalidTourID      = "некорректный ID тура"
	msgInvalidRequestBody = "некорректное тело запроса"
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

// Handle PUT /api/v1/tours/{tourId}/pricing
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tourID, err := handlers.PathID(r, "tourId")
	if err != nil {
		h.logger.Warn("PUT /tours/{id}/pricing - Invalid tour ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTourID)
		return
	}

	var req models.UpdatePricingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /tours/{id}/pricing - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	tour, err := h.service.UpdatePricing(r.Context(), tourID, &req)
	if err != nil {
		if status := handlers.RespondDomainError(w, err); status >= http.StatusInternalServerError {
			h.logger.Error("PUT /tours/{id}/pricing - Failed to update pricing: tour_id=%d, error=%v", tourID, err)
		} else {
			h.logger.Warn("PUT /tours/{id}/pricing - Rejected: tour_id=%d, status=%d, error=%v", tourID, status, err)
		}
		return
	}

	h.logger.Info("PUT /tours/{id}/pricing - Pricing updated: tour_id=%d, tiers=%d", tourID, len(tour.PricingTiers))
	handlers.RespondJSON(w, http.StatusOK, tour)
}
