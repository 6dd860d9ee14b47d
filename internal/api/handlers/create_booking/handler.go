package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TourBookingService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-TourBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты выезда, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные бронирования"
	msgDateInPast         = "дата выезда в прошлом"
	msgTourInactive       = "тур снят с продажи"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: tour_id=%d, error=%v", req.TourID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Date in the past: tour_id=%d, date=%s", req.TourID, req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrTourInactive):
			h.logger.Warn("POST /bookings - Tour inactive: tour_id=%d", req.TourID)
			handlers.RespondConflict(w, msgTourInactive)

		default:
			if status := handlers.RespondDomainError(w, err); status >= http.StatusInternalServerError {
				h.logger.Error("POST /bookings - Failed to create booking: tour_id=%d, error=%v", req.TourID, err)
			} else {
				h.logger.Warn("POST /bookings - Rejected: tour_id=%d, status=%d, error=%v", req.TourID, status, err)
			}
		}
		return
	}

	if result.PriceDrift {
		h.logger.Warn("POST /bookings - Price drift: booking_id=%d, expected=%d, stored=%d",
			result.Booking.ID, result.ExpectedPrice, result.Booking.OriginalPrice)
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, departure_id=%d",
		result.Booking.ID, result.Departure.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
