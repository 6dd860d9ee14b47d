package list_departures

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-TourBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/internal/service/departures"
)

const (
	msgInvalidTourID = "некорректный ID тура"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput  = "некорректные параметры запроса"
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

// Handle GET /api/v1/tours/{tourId}/departures?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tourID, err := handlers.PathID(r, "tourId")
	if err != nil {
		h.logger.Warn("GET /tours/{id}/departures - Invalid tour ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTourID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /tours/{id}/departures - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	list, err := h.service.List(r.Context(), tourID, date)
	if err != nil {
		if errors.Is(err, departures.ErrInvalidInput) {
			h.logger.Warn("GET /tours/{id}/departures - Invalid input: tour_id=%d, error=%v", tourID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}

		if status := handlers.RespondDomainError(w, err); status >= http.StatusInternalServerError {
			h.logger.Error("GET /tours/{id}/departures - Failed to list departures: tour_id=%d, error=%v", tourID, err)
		} else {
			h.logger.Warn("GET /tours/{id}/departures - Rejected: tour_id=%d, status=%d", tourID, status)
		}
		return
	}

	h.logger.Info("GET /tours/{id}/departures - Departures retrieved: tour_id=%d, count=%d", tourID, len(list.Departures))
	handlers.RespondJSON(w, http.StatusOK, list)
}
