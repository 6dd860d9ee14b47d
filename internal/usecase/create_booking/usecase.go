package create_booking

import (
	"context"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/internal/engine"
	"github.com/m04kA/SMC-TourBookingService/internal/infra/cache"
	"github.com/m04kA/SMC-TourBookingService/internal/integrations/reservationstore"
)

// UseCase use case для создания бронирования с новым выездом
type UseCase struct {
	reader          EntityReader
	store           ReservationStore
	dispatcher      Dispatcher
	metrics         Metrics
	defaultMaxPax   int
	defaultCurrency domain.Currency
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reader EntityReader,
	store ReservationStore,
	dispatcher Dispatcher,
	metrics Metrics,
	defaultMaxPax int,
	defaultCurrency domain.Currency,
	logger Logger,
) *UseCase {
	return &UseCase{
		reader:          reader,
		store:           store,
		dispatcher:      dispatcher,
		metrics:         metrics,
		defaultMaxPax:   defaultMaxPax,
		defaultCurrency: defaultCurrency,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Цена считается хранилищем, локальный расчет используется для проверки и раннего отказа
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: tour=%d, date=%s, type=%s, pax=%d",
		req.TourID, req.Date.Format(domain.DateFormat), req.Type, req.Pax)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	currency := req.Currency
	if currency == "" {
		currency = uc.defaultCurrency
	}
	maxPax := req.MaxPax
	if maxPax == 0 {
		maxPax = uc.defaultMaxPax
	}

	// 2. Дата выезда не в прошлом
	if isDateInPast(req.Date, uc.timeProvider.Now()) {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 3. Получаем тур
	tour, err := uc.reader.Tour(ctx, req.TourID)
	if err != nil {
		uc.logger.Warn("CreateBooking: failed to get tour id=%d: %v", req.TourID, err)
		return nil, err
	}
	if !tour.Active {
		return nil, ErrTourInactive
	}

	// 4. Тариф для pax должен существовать до отправки команды
	expectedPrice, err := domain.ComputePrice(tour.PricingTiers, req.Pax, currency)
	if err != nil {
		uc.logger.Warn("CreateBooking: tour id=%d cannot price %d pax: %v", req.TourID, req.Pax, err)
		return nil, err
	}

	// 5. Новый выезд пуст, вся вместимость доступна
	newDeparture := &domain.Departure{MaxPax: maxPax}
	if err := domain.ValidatePaxChange(newDeparture, nil, req.Pax); err != nil {
		uc.metrics.IncCapacityRejection("local")
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	// 6. Отправляем команду
	storeReq := reservationstore.CreateBookingRequest{
		TourID:   req.TourID,
		Date:     req.Date.Format(domain.DateFormat),
		Type:     string(req.Type),
		MaxPax:   maxPax,
		Customer: reservationstore.CustomerFromDomain(req.Customer),
		Pax:      req.Pax,
		Currency: string(currency),
	}

	cmd := engine.Command{
		Name:        engine.CommandCreateBooking,
		TargetKind:  engine.TargetTour,
		TargetID:    req.TourID,
		Payload:     storeReq,
		Invalidates: []string{cache.DeparturesKey(req.TourID, req.Date)},
	}

	var state *reservationstore.BookingState
	err = uc.dispatcher.Execute(ctx, cmd, func(ctx context.Context) ([]string, error) {
		result, err := uc.store.CreateBooking(ctx, storeReq)
		if err != nil {
			return nil, err
		}
		state = result
		return cache.BookingKeys(result.Booking.ID, result.Departure), nil
	})
	if err != nil {
		return nil, err
	}

	// 7. Сверяем цену хранилища с локальным расчетом
	drift := state.Booking.OriginalPrice != expectedPrice
	if drift {
		uc.metrics.IncPriceDrift(engine.CommandCreateBooking)
		uc.logger.Error("CreateBooking: price drift for booking id=%d: expected %d, store returned %d",
			state.Booking.ID, expectedPrice, state.Booking.OriginalPrice)
	}

	uc.logger.Info("CreateBooking: created booking id=%d in departure id=%d", state.Booking.ID, state.Departure.ID)

	return &Response{
		Booking:       state.Booking,
		Departure:     state.Departure,
		ExpectedPrice: expectedPrice,
		PriceDrift:    drift,
	}, nil
}
