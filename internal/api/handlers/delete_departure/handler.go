package delete_departure

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-TourBookingService/internal/api/handlers"
)

const (
	msgInvalidDepartureID = "некорректный ID выезда"
	msgInvalidConfirmed   = "некорректное значение confirmed"
)

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

// Handle DELETE /api/v1/departures/{departureId}?confirmed=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	departureID, err := handlers.PathID(r, "departureId")
	if err != nil {
		h.logger.Warn("DELETE /departures/{id} - Invalid departure ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDepartureID)
		return
	}

	confirmed := false
	if raw := r.URL.Query().Get("confirmed"); raw != "" {
		confirmed, err = strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("DELETE /departures/{id} - Invalid confirmed flag: %v", err)
			handlers.RespondBadRequest(w, msgInvalidConfirmed)
			return
		}
	}

	if err := h.service.Delete(r.Context(), departureID, confirmed); err != nil {
		if status := handlers.RespondDomainError(w, err); status >= http.StatusInternalServerError {
			h.logger.Error("DELETE /departures/{id} - Failed to delete departure: departure_id=%d, error=%v", departureID, err)
		} else {
			h.logger.Warn("DELETE /departures/{id} - Rejected: departure_id=%d, status=%d, error=%v", departureID, status, err)
		}
		return
	}

	h.logger.Info("DELETE /departures/{id} - Departure deleted successfully: departure_id=%d", departureID)
	w.WriteHeader(http.StatusNoContent)
}
