package get_departure

import (
	"net/http"

	"github.com/m04kA/SMC-TourBookingService/internal/api/handlers"
)

const msgInvalidDepartureID = "некорректный ID выезда"

type Handler struct {
	service DepartureService
	logger  Logger
}

func NewHandler(service DepartureService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/departures/{departureId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	departureID, err := handlers.PathID(r, "departureId")
	if err != nil {
		h.logger.Warn("GET /departures/{id} - Invalid departure ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDepartureID)
		return
	}

	departure, err := h.service.GetByID(r.Context(), departureID)
	if err != nil {
		if status := handlers.RespondDomainError(w, err); status >= http.StatusInternalServerError {
			h.logger.Error("GET /departures/{id} - Failed to get departure: departure_id=%d, error=%v", departureID, err)
		} else {
			h.logger.Warn("GET /departures/{id} - Departure not available: departure_id=%d, status=%d", departureID, status)
		}
		return
	}

	h.logger.Info("GET /departures/{id} - Departure retrieved successfully: departure_id=%d, bookings=%d",
		departureID, len(departure.Bookings))
	handlers.RespondJSON(w, http.StatusOK, departure)
}
