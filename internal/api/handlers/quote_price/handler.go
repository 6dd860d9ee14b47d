package quote_price

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-TourBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/internal/service/tours"
)

const (
	msgInvalidTourID = "некорректный ID тура"
	msgInvalidPax    = "некорректное количество человек"
	msgInvalidInput  = "некорректные параметры расчета"
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

// Handle GET /api/v1/tours/{tourId}/quote?pax=&currency=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tourID, err := handlers.PathID(r, "tourId")
	if err != nil {
		h.logger.Warn("GET /tours/{id}/quote - Invalid tour ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTourID)
		return
	}

	query := r.URL.Query()
	pax, err := strconv.Atoi(query.Get("pax"))
	if err != nil {
		h.logger.Warn("GET /tours/{id}/quote - Invalid pax: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPax)
		return
	}
	currency := domain.Currency(strings.ToUpper(query.Get("currency")))

	quote, err := h.service.Quote(r.Context(), tourID, pax, currency)
	if err != nil {
		if errors.Is(err, tours.ErrInvalidInput) {
			h.logger.Warn("GET /tours/{id}/quote - Invalid input: tour_id=%d, error=%v", tourID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}

		if status := handlers.RespondDomainError(w, err); status >= http.StatusInternalServerError {
			h.logger.Error("GET /tours/{id}/quote - Failed to quote: tour_id=%d, pax=%d, error=%v", tourID, pax, err)
		} else {
			h.logger.Warn("GET /tours/{id}/quote - Rejected: tour_id=%d, pax=%d, status=%d", tourID, pax, status)
		}
		return
	}

	h.logger.Info("GET /tours/{id}/quote - Quote calculated: tour_id=%d, pax=%d, total=%d %s",
		tourID, pax, quote.Total, quote.Currency)
	handlers.RespondJSON(w, http.StatusOK, quote)
}
