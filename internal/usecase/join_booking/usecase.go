package join_booking

import (
	"context"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/internal/engine"
	"github.com/m04kA/SMC-TourBookingService/internal/infra/cache"
	"github.com/m04kA/SMC-TourBookingService/internal/integrations/reservationstore"
)

// UseCase use case для присоединения нового бронирования к выезду
type UseCase struct {
	reader          EntityReader
	store           ReservationStore
	dispatcher      Dispatcher
	metrics         Metrics
	defaultCurrency domain.Currency
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reader EntityReader,
	store ReservationStore,
	dispatcher Dispatcher,
	metrics Metrics,
	defaultCurrency domain.Currency,
	logger Logger,
) *UseCase {
	return &UseCase{
		reader:          reader,
		store:           store,
		dispatcher:      dispatcher,
		metrics:         metrics,
		defaultCurrency: defaultCurrency,
		logger:          logger,
	}
}

// Execute выполняет use case присоединения к выезду
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("JoinBooking: departure=%d, pax=%d", req.DepartureID, req.Pax)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("JoinBooking: validation failed: %v", err)
		return nil, err
	}

	currency := req.Currency
	if currency == "" {
		currency = uc.defaultCurrency
	}

	// 2. Получаем выезд и его бронирования
	departure, err := uc.reader.Departure(ctx, req.DepartureID)
	if err != nil {
		uc.logger.Warn("JoinBooking: failed to get departure id=%d: %v", req.DepartureID, err)
		return nil, err
	}

	bookings, err := uc.reader.DepartureBookings(ctx, departure)
	if err != nil {
		uc.logger.Error("JoinBooking: failed to get bookings of departure id=%d: %v", departure.ID, err)
		return nil, err
	}
	active := domain.ActiveBookingsOf(departure.ID, bookings)

	// 3. Выезд открыт и может принять еще одну группу
	if err := validateJoinable(departure, active); err != nil {
		uc.logger.Warn("JoinBooking: %v", err)
		return nil, err
	}

	// 4. Локальная проверка вместимости по пересчитанной заполненности
	departure.RecomputeCurrentPax(active)
	if err := domain.ValidatePaxChange(departure, nil, req.Pax); err != nil {
		uc.metrics.IncCapacityRejection("local")
		uc.logger.Warn("JoinBooking: departure id=%d: %v", departure.ID, err)
		return nil, err
	}

	// 5. Цена по снимку тарифов выезда, для старых выездов без снимка - по тарифам тура
	tiers, err := uc.pricingTiers(ctx, departure)
	if err != nil {
		return nil, err
	}
	expectedPrice, err := domain.ComputePrice(tiers, req.Pax, currency)
	if err != nil {
		uc.logger.Warn("JoinBooking: departure id=%d cannot price %d pax: %v", departure.ID, req.Pax, err)
		return nil, err
	}

	// 6. Отправляем команду
	storeReq := reservationstore.JoinBookingRequest{
		Customer: reservationstore.CustomerFromDomain(req.Customer),
		Pax:      req.Pax,
		Currency: string(currency),
	}

	cmd := engine.Command{
		Name:        engine.CommandJoinBooking,
		TargetKind:  engine.TargetDeparture,
		TargetID:    departure.ID,
		Payload:     storeReq,
		Invalidates: cache.DepartureKeys(departure),
	}

	var state *reservationstore.BookingState
	err = uc.dispatcher.Execute(ctx, cmd, func(ctx context.Context) ([]string, error) {
		result, err := uc.store.JoinBooking(ctx, departure.ID, storeReq)
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
		uc.metrics.IncPriceDrift(engine.CommandJoinBooking)
		uc.logger.Error("JoinBooking: price drift for booking id=%d: expected %d, store returned %d",
			state.Booking.ID, expectedPrice, state.Booking.OriginalPrice)
	}

	uc.logger.Info("JoinBooking: booking id=%d joined departure id=%d (%d/%d pax)",
		state.Booking.ID, state.Departure.ID, state.Departure.CurrentPax, state.Departure.MaxPax)

	return &Response{
		Booking:       state.Booking,
		Departure:     state.Departure,
		ExpectedPrice: expectedPrice,
		PriceDrift:    drift,
	}, nil
}

func (uc *UseCase) pricingTiers(ctx context.Context, departure *domain.Departure) ([]domain.PricingTier, error) {
	if len(departure.PricingSnapshot) > 0 {
		return departure.PricingSnapshot, nil
	}

	tour, err := uc.reader.Tour(ctx, departure.TourID)
	if err != nil {
		uc.logger.Warn("JoinBooking: failed to get tour id=%d: %v", departure.TourID, err)
		return nil, err
	}
	return tour.PricingTiers, nil
}
