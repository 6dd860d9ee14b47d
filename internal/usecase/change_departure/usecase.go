package change_departure

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/internal/engine"
	"github.com/m04kA/SMC-TourBookingService/internal/infra/cache"
	"github.com/m04kA/SMC-TourBookingService/internal/integrations/reservationstore"
)

// UseCase use case для смены даты или тура выезда вместе со всеми его бронированиями
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

// Execute выполняет use case смены даты или тура
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ChangeDeparture: departure=%d", req.DepartureID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ChangeDeparture: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем выезд и его бронирования
	departure, err := uc.reader.Departure(ctx, req.DepartureID)
	if err != nil {
		uc.logger.Warn("ChangeDeparture: failed to get departure id=%d: %v", req.DepartureID, err)
		return nil, err
	}
	if err := validateChangeable(departure); err != nil {
		uc.logger.Warn("ChangeDeparture: %v", err)
		return nil, err
	}

	bookings, err := uc.reader.DepartureBookings(ctx, departure)
	if err != nil {
		uc.logger.Error("ChangeDeparture: failed to get bookings of departure id=%d: %v", departure.ID, err)
		return nil, err
	}

	// 3. Смена даты или тура
	if req.NewDate != nil {
		return uc.changeDate(ctx, departure, bookings, *req.NewDate)
	}
	return uc.changeTour(ctx, departure, bookings, *req.NewTourID)
}

func (uc *UseCase) changeDate(ctx context.Context, departure *domain.Departure, bookings []*domain.Booking, date time.Time) (*Response, error) {
	if departure.Date.Format(domain.DateFormat) == date.Format(domain.DateFormat) {
		return nil, ErrNothingToChange
	}
	if isDateInPast(date, uc.timeProvider.Now()) {
		uc.logger.Warn("ChangeDeparture: date %s is in the past", date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	cmd := engine.Command{
		Name:        engine.CommandUpdateDepartureDate,
		TargetKind:  engine.TargetDeparture,
		TargetID:    departure.ID,
		Payload:     datePayload{Date: date.Format(domain.DateFormat)},
		Invalidates: append(cache.DepartureChangeKeys(departure, nil, bookings), cache.DeparturesKey(departure.TourID, date)),
	}

	state, err := uc.execute(ctx, cmd, departure, func(ctx context.Context) (*reservationstore.DepartureState, error) {
		return uc.store.UpdateDepartureDate(ctx, departure.ID, date)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("ChangeDeparture: departure id=%d moved to %s with %d bookings",
		state.Departure.ID, state.Departure.Date.Format(domain.DateFormat), len(state.Bookings))

	return &Response{
		Departure: state.Departure,
		Bookings:  state.Bookings,
	}, nil
}

func (uc *UseCase) changeTour(ctx context.Context, departure *domain.Departure, bookings []*domain.Booking, tourID int64) (*Response, error) {
	if departure.TourID == tourID {
		return nil, ErrNothingToChange
	}

	tour, err := uc.reader.Tour(ctx, tourID)
	if err != nil {
		uc.logger.Warn("ChangeDeparture: failed to get tour id=%d: %v", tourID, err)
		return nil, err
	}
	if !tour.Active {
		return nil, ErrTourInactive
	}

	// Каждое активное бронирование должно иметь тариф в новом туре
	// Ожидаемая цена считается от тарифа, а не от текущей цены бронирования
	active := domain.ActiveBookingsOf(departure.ID, bookings)
	expected, err := expectedPrices(tour.PricingTiers, active)
	if err != nil {
		uc.logger.Warn("ChangeDeparture: tour id=%d cannot price departure id=%d: %v", tourID, departure.ID, err)
		return nil, err
	}

	cmd := engine.Command{
		Name:        engine.CommandUpdateDepartureTour,
		TargetKind:  engine.TargetDeparture,
		TargetID:    departure.ID,
		Payload:     tourPayload{TourID: tourID},
		Invalidates: append(cache.DepartureChangeKeys(departure, nil, bookings), cache.DeparturesKey(tourID, departure.Date)),
	}

	state, err := uc.execute(ctx, cmd, departure, func(ctx context.Context) (*reservationstore.DepartureState, error) {
		return uc.store.UpdateDepartureTour(ctx, departure.ID, tourID)
	})
	if err != nil {
		return nil, err
	}

	drifted := driftedBookings(expected, state.Bookings)
	for _, id := range drifted {
		uc.metrics.IncPriceDrift(engine.CommandUpdateDepartureTour)
		uc.logger.Error("ChangeDeparture: price drift for booking id=%d after tour change: expected %d",
			id, expected[id])
	}

	uc.logger.Info("ChangeDeparture: departure id=%d moved to tour id=%d with %d bookings",
		state.Departure.ID, state.Departure.TourID, len(state.Bookings))

	return &Response{
		Departure:       state.Departure,
		Bookings:        state.Bookings,
		ExpectedPrices:  expected,
		DriftedBookings: drifted,
	}, nil
}

// execute отправляет команду и сбрасывает кэш по авторитетному состоянию
func (uc *UseCase) execute(
	ctx context.Context,
	cmd engine.Command,
	before *domain.Departure,
	call func(ctx context.Context) (*reservationstore.DepartureState, error),
) (*reservationstore.DepartureState, error) {
	var state *reservationstore.DepartureState
	err := uc.dispatcher.Execute(ctx, cmd, func(ctx context.Context) ([]string, error) {
		result, err := call(ctx)
		if err != nil {
			return nil, err
		}
		state = result
		return cache.DepartureChangeKeys(before, result.Departure, result.Bookings), nil
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}
