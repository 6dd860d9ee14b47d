package move_booking

import (
	"context"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/internal/engine"
	"github.com/m04kA/SMC-TourBookingService/internal/infra/cache"
	"github.com/m04kA/SMC-TourBookingService/internal/integrations/reservationstore"
)

// UseCase use case для переноса бронирования на другой тур или дату
type UseCase struct {
	reader       EntityReader
	store        ReservationStore
	dispatcher   Dispatcher
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reader EntityReader, store ReservationStore, dispatcher Dispatcher, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		reader:       reader,
		store:        store,
		dispatcher:   dispatcher,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case переноса бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("MoveBooking: booking=%d, newTour=%d, newDate=%s",
		req.BookingID, req.NewTourID, req.NewDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("MoveBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем бронирование и выезд
	booking, departure, err := uc.reader.Booking(ctx, req.BookingID)
	if err != nil {
		uc.logger.Warn("MoveBooking: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, err
	}
	if err := booking.EnsureMutable(); err != nil {
		uc.logger.Warn("MoveBooking: booking id=%d is cancelled", booking.ID)
		return nil, err
	}

	newTourID := req.NewTourID
	if newTourID == 0 {
		newTourID = departure.TourID
	}
	newDate := req.NewDate
	if newDate.IsZero() {
		newDate = departure.Date
	}

	if newTourID == departure.TourID && sameDate(newDate, departure.Date) {
		return nil, ErrNothingToChange
	}
	if isDateInPast(newDate, uc.timeProvider.Now()) {
		uc.logger.Warn("MoveBooking: date %s is in the past", newDate.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 3. Напрямую переносится только частное или единственное в выезде бронирование
	bookings, err := uc.reader.DepartureBookings(ctx, departure)
	if err != nil {
		uc.logger.Error("MoveBooking: failed to get bookings of departure id=%d: %v", departure.ID, err)
		return nil, err
	}
	related := domain.RelatedBookings(booking, bookings)
	if !domain.IsDirectlyEditable(departure, related) {
		uc.logger.Warn("MoveBooking: booking id=%d shares departure id=%d with %d bookings",
			booking.ID, departure.ID, len(related))
		return nil, ErrBookingNotEditable
	}

	// 4. Новый тур должен иметь тариф для pax бронирования
	tour, err := uc.reader.Tour(ctx, newTourID)
	if err != nil {
		uc.logger.Warn("MoveBooking: failed to get tour id=%d: %v", newTourID, err)
		return nil, err
	}
	if !tour.Active {
		return nil, ErrTourInactive
	}
	expectedPrice, err := domain.ComputePrice(tour.PricingTiers, booking.Pax, booking.Currency)
	if err != nil {
		uc.logger.Warn("MoveBooking: tour id=%d cannot price %d pax: %v", newTourID, booking.Pax, err)
		return nil, err
	}

	// 5. Отправляем команду
	cmd := engine.Command{
		Name:        engine.CommandMoveBooking,
		TargetKind:  engine.TargetBooking,
		TargetID:    booking.ID,
		Payload:     commandPayload{NewTourID: newTourID, NewDate: newDate.Format(domain.DateFormat)},
		Invalidates: append(cache.BookingKeys(booking.ID, departure), cache.DeparturesKey(newTourID, newDate)),
	}

	var result *reservationstore.MoveResult
	err = uc.dispatcher.Execute(ctx, cmd, func(ctx context.Context) ([]string, error) {
		moved, err := uc.store.MoveBooking(ctx, booking.ID, newTourID, newDate)
		if err != nil {
			return nil, err
		}
		result = moved
		return cache.RelocationKeys(moved.Booking.ID, moved.PreviousDeparture, moved.Departure), nil
	})
	if err != nil {
		return nil, err
	}

	// 6. Цена пересчитана от тарифа нового тура, а не от предыдущей цены
	drift := result.Booking.OriginalPrice != expectedPrice
	if drift {
		uc.metrics.IncPriceDrift(engine.CommandMoveBooking)
		uc.logger.Error("MoveBooking: price drift for booking id=%d: expected %d, store returned %d",
			result.Booking.ID, expectedPrice, result.Booking.OriginalPrice)
	}

	uc.logger.Info("MoveBooking: booking id=%d moved to departure id=%d", result.Booking.ID, result.Departure.ID)

	return &Response{
		Booking:           result.Booking,
		Departure:         result.Departure,
		PreviousDeparture: result.PreviousDeparture,
		ExpectedPrice:     expectedPrice,
		PriceDrift:        drift,
	}, nil
}
