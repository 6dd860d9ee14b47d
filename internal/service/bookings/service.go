package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/internal/engine"
	"github.com/m04kA/SMC-TourBookingService/internal/infra/cache"
	"github.com/m04kA/SMC-TourBookingService/internal/integrations/reservationstore"
	"github.com/m04kA/SMC-TourBookingService/internal/service/bookings/models"
)

// Service сервис для работы с отдельным бронированием
type Service struct {
	reader     EntityReader
	store      ReservationStore
	dispatcher Dispatcher
	metrics    Metrics
	logger     Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reader EntityReader,
	store ReservationStore,
	dispatcher Dispatcher,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		reader:     reader,
		store:      store,
		dispatcher: dispatcher,
		metrics:    metrics,
		logger:     logger,
	}
}

// GetByID получает бронирование с выездом и признаком прямого редактирования
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingDetailsResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, departure, err := s.reader.Booking(ctx, id)
	if err != nil {
		s.logger.Warn("GetByID: failed to get booking id=%d: %v", id, err)
		return nil, err
	}

	bookings, err := s.reader.DepartureBookings(ctx, departure)
	if err != nil {
		s.logger.Error("GetByID: failed to get bookings of departure id=%d: %v", departure.ID, err)
		return nil, err
	}
	related := domain.RelatedBookings(booking, bookings)
	departure.RecomputeCurrentPax(bookings)

	return &models.BookingDetailsResponse{
		Booking:         *models.FromDomainBooking(booking),
		Departure:       models.FromDomainDeparture(departure),
		Editable:        domain.IsDirectlyEditable(departure, related),
		RelatedBookings: len(related),
		AvailableSpace:  domain.AvailableSpace(departure, 0),
	}, nil
}

// UpdateStatus меняет статус бронирования
// Отмена необратима и требует явного подтверждения
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.BookingStateResponse, error) {
	s.logger.Info("UpdateStatus: booking id=%d, status=%s, confirmed=%t", id, req.Status, req.Confirmed)

	booking, departure, err := s.reader.Booking(ctx, id)
	if err != nil {
		s.logger.Warn("UpdateStatus: failed to get booking id=%d: %v", id, err)
		return nil, err
	}

	status := domain.BookingStatus(req.Status)
	if err := domain.ValidateStatusTransition(booking.Status, status, req.Confirmed); err != nil {
		s.logger.Warn("UpdateStatus: booking id=%d: %v", id, err)
		return nil, s.wrapTransitionError(err)
	}

	cmd := engine.Command{
		Name:        engine.CommandUpdateBookingStatus,
		TargetKind:  engine.TargetBooking,
		TargetID:    booking.ID,
		Payload:     req,
		Invalidates: cache.BookingKeys(booking.ID, departure),
	}

	state, err := s.execute(ctx, cmd, func(ctx context.Context) (*reservationstore.BookingState, error) {
		return s.store.UpdateBookingStatus(ctx, booking.ID, status)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateStatus: booking id=%d is now %s", state.Booking.ID, state.Booking.Status)
	return models.FromDomainState(state.Booking, state.Departure), nil
}

// UpdatePax меняет количество человек с предварительной проверкой вместимости
func (s *Service) UpdatePax(ctx context.Context, id int64, req *models.UpdatePaxRequest) (*models.BookingStateResponse, error) {
	s.logger.Info("UpdatePax: booking id=%d, pax=%d", id, req.Pax)

	if req.Pax < domain.MinPax {
		return nil, fmt.Errorf("%w: pax must be at least %d", ErrInvalidInput, domain.MinPax)
	}

	booking, departure, err := s.reader.Booking(ctx, id)
	if err != nil {
		s.logger.Warn("UpdatePax: failed to get booking id=%d: %v", id, err)
		return nil, err
	}
	if err := booking.EnsureMutable(); err != nil {
		return nil, err
	}
	if booking.Pax == req.Pax {
		return nil, ErrNothingToChange
	}
	if req.Pax > booking.Pax && !departure.IsOpen() {
		return nil, fmt.Errorf("%w: departure %d is %s", ErrDepartureClosed, departure.ID, departure.Status)
	}

	// Локальная проверка вместимости без учета текущих мест бронирования
	bookings, err := s.reader.DepartureBookings(ctx, departure)
	if err != nil {
		s.logger.Error("UpdatePax: failed to get bookings of departure id=%d: %v", departure.ID, err)
		return nil, err
	}
	departure.RecomputeCurrentPax(bookings)
	if err := domain.ValidatePaxChange(departure, booking, req.Pax); err != nil {
		s.metrics.IncCapacityRejection("local")
		s.logger.Warn("UpdatePax: booking id=%d: %v", id, err)
		return nil, err
	}

	// Новый pax может попасть в другой тариф, цена пересчитывается от тарифа
	tiers, err := s.pricingTiers(ctx, departure)
	if err != nil {
		return nil, err
	}
	expectedPrice, err := domain.ComputePrice(tiers, req.Pax, booking.Currency)
	if err != nil {
		s.logger.Warn("UpdatePax: departure id=%d cannot price %d pax: %v", departure.ID, req.Pax, err)
		return nil, err
	}

	cmd := engine.Command{
		Name:        engine.CommandUpdateBookingPax,
		TargetKind:  engine.TargetBooking,
		TargetID:    booking.ID,
		Payload:     req,
		Invalidates: cache.BookingKeys(booking.ID, departure),
	}

	state, err := s.execute(ctx, cmd, func(ctx context.Context) (*reservationstore.BookingState, error) {
		return s.store.UpdateBookingPax(ctx, booking.ID, req.Pax)
	})
	if err != nil {
		return nil, err
	}

	resp := models.FromDomainState(state.Booking, state.Departure)
	resp.ExpectedPrice = &expectedPrice
	if state.Booking.OriginalPrice != expectedPrice {
		resp.PriceDrift = true
		s.metrics.IncPriceDrift(engine.CommandUpdateBookingPax)
		s.logger.Error("UpdatePax: price drift for booking id=%d: expected %d, store returned %d",
			state.Booking.ID, expectedPrice, state.Booking.OriginalPrice)
	}

	s.logger.Info("UpdatePax: booking id=%d now has %d pax", state.Booking.ID, state.Booking.Pax)
	return resp, nil
}

// UpdateDetails меняет данные клиента
func (s *Service) UpdateDetails(ctx context.Context, id int64, req *models.UpdateDetailsRequest) (*models.BookingStateResponse, error) {
	s.logger.Info("UpdateDetails: booking id=%d", id)

	customer := req.Customer.ToDomain()
	if err := customer.Validate(); err != nil {
		s.logger.Warn("UpdateDetails: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	booking, departure, err := s.reader.Booking(ctx, id)
	if err != nil {
		s.logger.Warn("UpdateDetails: failed to get booking id=%d: %v", id, err)
		return nil, err
	}
	if err := booking.EnsureMutable(); err != nil {
		return nil, err
	}

	cmd := engine.Command{
		Name:        engine.CommandUpdateBookingDetails,
		TargetKind:  engine.TargetBooking,
		TargetID:    booking.ID,
		Payload:     req,
		Invalidates: cache.BookingKeys(booking.ID, departure),
	}

	state, err := s.execute(ctx, cmd, func(ctx context.Context) (*reservationstore.BookingState, error) {
		return s.store.UpdateBookingDetails(ctx, booking.ID, customer)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateDetails: booking id=%d updated", state.Booking.ID)
	return models.FromDomainState(state.Booking, state.Departure), nil
}

// ApplyDiscount применяет скидку или переопределяет итоговую цену
func (s *Service) ApplyDiscount(ctx context.Context, id int64, req *models.ApplyDiscountRequest) (*models.BookingStateResponse, error) {
	s.logger.Info("ApplyDiscount: booking id=%d", id)

	booking, departure, err := s.reader.Booking(ctx, id)
	if err != nil {
		s.logger.Warn("ApplyDiscount: failed to get booking id=%d: %v", id, err)
		return nil, err
	}
	if err := booking.EnsureMutable(); err != nil {
		return nil, err
	}

	priceCmd := req.ToDomain()
	if err := priceCmd.Validate(booking.OriginalPrice); err != nil {
		s.logger.Warn("ApplyDiscount: booking id=%d: %v", id, err)
		return nil, err
	}
	expectedFinal := priceCmd.FinalPrice(booking.OriginalPrice)

	cmd := engine.Command{
		Name:        engine.CommandApplyDiscount,
		TargetKind:  engine.TargetBooking,
		TargetID:    booking.ID,
		Payload:     req,
		Invalidates: cache.BookingKeys(booking.ID, departure),
	}

	state, err := s.execute(ctx, cmd, func(ctx context.Context) (*reservationstore.BookingState, error) {
		return s.store.ApplyDiscount(ctx, booking.ID, priceCmd)
	})
	if err != nil {
		return nil, err
	}

	resp := models.FromDomainState(state.Booking, state.Departure)
	resp.ExpectedPrice = &expectedFinal
	if state.Booking.FinalPrice != expectedFinal {
		resp.PriceDrift = true
		s.metrics.IncPriceDrift(engine.CommandApplyDiscount)
		s.logger.Error("ApplyDiscount: final price drift for booking id=%d: expected %d, store returned %d",
			state.Booking.ID, expectedFinal, state.Booking.FinalPrice)
	}

	s.logger.Info("ApplyDiscount: booking id=%d final price %d", state.Booking.ID, state.Booking.FinalPrice)
	return resp, nil
}

// execute отправляет команду над бронированием и сбрасывает кэш по авторитетному состоянию
func (s *Service) execute(
	ctx context.Context,
	cmd engine.Command,
	call func(ctx context.Context) (*reservationstore.BookingState, error),
) (*reservationstore.BookingState, error) {
	var state *reservationstore.BookingState
	err := s.dispatcher.Execute(ctx, cmd, func(ctx context.Context) ([]string, error) {
		result, err := call(ctx)
		if err != nil {
			return nil, err
		}
		state = result
		return cache.BookingKeys(result.Booking.ID, result.Departure), nil
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

func (s *Service) pricingTiers(ctx context.Context, departure *domain.Departure) ([]domain.PricingTier, error) {
	if len(departure.PricingSnapshot) > 0 {
		return departure.PricingSnapshot, nil
	}

	tour, err := s.reader.Tour(ctx, departure.TourID)
	if err != nil {
		s.logger.Warn("failed to get tour id=%d: %v", departure.TourID, err)
		return nil, err
	}
	return tour.PricingTiers, nil
}

// wrapTransitionError недопустимый переход считается ошибкой ввода
func (s *Service) wrapTransitionError(err error) error {
	if errors.Is(err, domain.ErrTerminalState) || errors.Is(err, domain.ErrConfirmationRequired) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}
