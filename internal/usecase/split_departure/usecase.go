package split_departure

import (
	"context"
	"strings"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/internal/engine"
	"github.com/m04kA/SMC-TourBookingService/internal/infra/cache"
	"github.com/m04kA/SMC-TourBookingService/internal/integrations/reservationstore"
)

// UseCase use case для выделения бронирования из общего выезда в новый
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

// Execute выполняет use case выделения бронирования
// Хранилище само создает копию выезда и переносит бронирование, здесь результат только сверяется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SplitDeparture: departure=%d, booking=%d", req.DepartureID, req.BookingID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SplitDeparture: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем выезд и его бронирования
	source, err := uc.reader.Departure(ctx, req.DepartureID)
	if err != nil {
		uc.logger.Warn("SplitDeparture: failed to get departure id=%d: %v", req.DepartureID, err)
		return nil, err
	}

	bookings, err := uc.reader.DepartureBookings(ctx, source)
	if err != nil {
		uc.logger.Error("SplitDeparture: failed to get bookings of departure id=%d: %v", source.ID, err)
		return nil, err
	}

	// 3. Бронирование активно в выезде и в выезде есть кто-то еще
	booking := findActiveBooking(source.ID, req.BookingID, bookings)
	if booking == nil {
		uc.logger.Warn("SplitDeparture: booking id=%d is not active in departure id=%d", req.BookingID, source.ID)
		return nil, ErrBookingNotInDeparture
	}
	if len(domain.RelatedBookings(booking, bookings)) == 0 {
		return nil, ErrNothingToSplit
	}

	sourcePaxBefore := source.RecomputeCurrentPax(bookings)

	// 4. Отправляем команду
	cmd := engine.Command{
		Name:        engine.CommandSplitDeparture,
		TargetKind:  engine.TargetDeparture,
		TargetID:    source.ID,
		Payload:     commandPayload{BookingID: booking.ID},
		Invalidates: cache.BookingKeys(booking.ID, source),
	}

	var result *reservationstore.SplitResult
	err = uc.dispatcher.Execute(ctx, cmd, func(ctx context.Context) ([]string, error) {
		split, err := uc.store.SplitDeparture(ctx, source.ID, booking.ID)
		if err != nil {
			return nil, err
		}
		result = split
		return cache.RelocationKeys(split.Booking.ID, split.Source, split.Created), nil
	})
	if err != nil {
		return nil, err
	}

	// 5. Сверяем результат с ожидаемым состоянием
	mismatches := verifySplit(source, booking, sourcePaxBefore, result)
	if len(mismatches) > 0 {
		uc.logger.Error("SplitDeparture: departure id=%d split result mismatch: %s",
			source.ID, strings.Join(mismatches, "; "))
	}

	uc.logger.Info("SplitDeparture: booking id=%d moved from departure id=%d to new departure id=%d",
		result.Booking.ID, result.Source.ID, result.Created.ID)

	return &Response{
		Source:     result.Source,
		Created:    result.Created,
		Booking:    result.Booking,
		Verified:   len(mismatches) == 0,
		Mismatches: mismatches,
	}, nil
}
