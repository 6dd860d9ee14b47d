package convert_booking_type

import (
	"context"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/internal/engine"
	"github.com/m04kA/SMC-TourBookingService/internal/infra/cache"
	"github.com/m04kA/SMC-TourBookingService/internal/integrations/reservationstore"
)

// UseCase use case для перевода бронирования между частным и общим типом
type UseCase struct {
	reader     EntityReader
	store      ReservationStore
	dispatcher Dispatcher
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reader EntityReader, store ReservationStore, dispatcher Dispatcher, logger Logger) *UseCase {
	return &UseCase{
		reader:     reader,
		store:      store,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Execute выполняет use case смены типа
// Тип хранится на выезде, поэтому команда меняет тип выезда бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConvertBookingType: booking=%d, target=%s", req.BookingID, req.TargetType)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ConvertBookingType: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем бронирование, выезд и соседние бронирования
	booking, departure, err := uc.reader.Booking(ctx, req.BookingID)
	if err != nil {
		uc.logger.Warn("ConvertBookingType: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, err
	}
	if err := booking.EnsureMutable(); err != nil {
		uc.logger.Warn("ConvertBookingType: booking id=%d is cancelled", booking.ID)
		return nil, err
	}

	bookings, err := uc.reader.DepartureBookings(ctx, departure)
	if err != nil {
		uc.logger.Error("ConvertBookingType: failed to get bookings of departure id=%d: %v", departure.ID, err)
		return nil, err
	}

	// 3. Проверяем переход типа
	related := domain.RelatedBookings(booking, bookings)
	if err := domain.ValidateConversion(departure, related, req.TargetType); err != nil {
		uc.logger.Warn("ConvertBookingType: booking id=%d: %v", booking.ID, err)
		return nil, err
	}

	// 4. Отправляем команду
	cmd := engine.Command{
		Name:        engine.CommandConvertBookingType,
		TargetKind:  engine.TargetBooking,
		TargetID:    booking.ID,
		Payload:     commandPayload{TargetType: string(req.TargetType)},
		Invalidates: cache.BookingKeys(booking.ID, departure),
	}

	var state *reservationstore.BookingState
	err = uc.dispatcher.Execute(ctx, cmd, func(ctx context.Context) ([]string, error) {
		result, err := uc.store.ConvertBookingType(ctx, booking.ID, req.TargetType)
		if err != nil {
			return nil, err
		}
		state = result
		return cache.BookingKeys(result.Booking.ID, result.Departure), nil
	})
	if err != nil {
		return nil, err
	}

	// 5. Тип бронирования - проекция типа выезда
	verified := state.Departure.Type == req.TargetType && state.Booking.Type == req.TargetType
	if !verified {
		uc.logger.Error("ConvertBookingType: booking id=%d expected type %s, store returned departure type %s",
			state.Booking.ID, req.TargetType, state.Departure.Type)
	}

	uc.logger.Info("ConvertBookingType: booking id=%d is now %s", state.Booking.ID, state.Booking.Type)

	return &Response{
		Booking:   state.Booking,
		Departure: state.Departure,
		Verified:  verified,
	}, nil
}
