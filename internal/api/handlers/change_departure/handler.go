package change_departure

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-TourBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	changeDeparture "github.com/m04kA/SMC-TourBookingService/internal/usecase/change_departure"
)

const (
	msgInvalidDepartureID = "некорректный ID выезда"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные выезда"
	msgDateInPast         = "новая дата в прошлом"
	msgNothingToChange    = "значение не изменилось"
	msgDepartureFinished  = "выезд завершен или отменен"
	msgTourInactive       = "тур снят с продажи"
)

type Handler struct {
	useCase ChangeDepartureUseCase
	logger  Logger
}

func NewHandler(useCase ChangeDepartureUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleDate PATCH /api/v1/departures/{departureId}/date
func (h *Handler) HandleDate(w http.ResponseWriter, r *http.Request) {
	const route = "PATCH /departures/{id}/date"

	departureID, err := handlers.PathID(r, "departureId")
	if err != nil {
		h.logger.Warn("%s - Invalid departure ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidDepartureID)
		return
	}

	var req ChangeDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		h.logger.Warn("%s - Failed to parse date: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	h.execute(w, r, route, &changeDeparture.Request{
		DepartureID: departureID,
		NewDate:     &date,
	})
}

// HandleTour PATCH /api/v1/departures/{departureId}/tour
func (h *Handler) HandleTour(w http.ResponseWriter, r *http.Request) {
	const route = "PATCH /departures/{id}/tour"

	departureID, err := handlers.PathID(r, "departureId")
	if err != nil {
		h.logger.Warn("%s - Invalid departure ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidDepartureID)
		return
	}

	var req ChangeTourRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	h.execute(w, r, route, &changeDeparture.Request{
		DepartureID: departureID,
		NewTourID:   &req.TourID,
	})
}

func (h *Handler) execute(w http.ResponseWriter, r *http.Request, route string, req *changeDeparture.Request) {
	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, changeDeparture.ErrInvalidInput):
			h.logger.Warn("%s - Invalid input: departure_id=%d, error=%v", route, req.DepartureID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, changeDeparture.ErrInvalidDate):
			h.logger.Warn("%s - Date in the past: departure_id=%d", route, req.DepartureID)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, changeDeparture.ErrNothingToChange):
			h.logger.Warn("%s - Nothing to change: departure_id=%d", route, req.DepartureID)
			handlers.RespondBadRequest(w, msgNothingToChange)

		case errors.Is(err, changeDeparture.ErrDepartureFinished):
			h.logger.Warn("%s - Departure finished: departure_id=%d", route, req.DepartureID)
			handlers.RespondConflict(w, msgDepartureFinished)

		case errors.Is(err, changeDeparture.ErrTourInactive):
			h.logger.Warn("%s - Tour inactive: departure_id=%d", route, req.DepartureID)
			handlers.RespondConflict(w, msgTourInactive)

		default:
			if status := handlers.RespondDomainError(w, err); status >= http.StatusInternalServerError {
				h.logger.Error("%s - Failed to change departure: departure_id=%d, error=%v", route, req.DepartureID, err)
			} else {
				h.logger.Warn("%s - Rejected: departure_id=%d, status=%d, error=%v", route, req.DepartureID, status, err)
			}
		}
		return
	}

	if len(result.DriftedBookings) > 0 {
		h.logger.Warn("%s - Price drift after change: departure_id=%d, bookings=%v",
			route, req.DepartureID, result.DriftedBookings)
	}

	h.logger.Info("%s - Departure changed successfully: departure_id=%d, bookings=%d",
		route, req.DepartureID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
