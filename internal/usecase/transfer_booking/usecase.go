package transfer_booking

import (
	"context"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/internal/engine"
	"github.com/m04kA/SMC-TourBookingService/internal/infra/cache"
	"github.com/m04kA/SMC-TourBookingService/internal/integrations/reservationstore"
)

// UseCase use case для перевода бронирования в существующий общий выезд
type UseCase struct {
	reader     EntityReader
	store      ReservationStore
	dispatcher Dispatcher
	metrics    Metrics
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reader EntityReader, store ReservationStore, dispatcher Dispatcher, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		reader:     reader,
		store:      store,
		dispatcher: dispatcher,
		metrics:    metrics,
		logger:     logger,
	}
}

// Execute выполняет use case перевода бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("TransferBooking: booking=%d, target=%d", req.BookingID, req.TargetDepartureID)

	// 1. Валидация входных данных и подтверждения
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("TransferBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем бронирование с текущим выездом
	booking, source, err := uc.reader.Booking(ctx, req.BookingID)
	if err != nil {
		uc.logger.Warn("TransferBooking: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, err
	}
	if err := booking.EnsureMutable(); err != nil {
		uc.logger.Warn("TransferBooking: booking id=%d is cancelled", booking.ID)
		return nil, err
	}

	// 3. Получаем и проверяем целевой выезд
	target, err := uc.reader.Departure(ctx, req.TargetDepartureID)
	if err != nil {
		uc.logger.Warn("TransferBooking: failed to get departure id=%d: %v", req.TargetDepartureID, err)
		return nil, err
	}
	if err := validateTarget(source, target); err != nil {
		uc.logger.Warn("TransferBooking: %v", err)
		return nil, err
	}

	// 4. Вместимость цели по пересчитанной заполненности
	targetBookings, err := uc.reader.DepartureBookings(ctx, target)
	if err != nil {
		uc.logger.Error("TransferBooking: failed to get bookings of departure id=%d: %v", target.ID, err)
		return nil, err
	}
	target.RecomputeCurrentPax(targetBookings)
	if err := domain.ValidatePaxChange(target, nil, booking.Pax); err != nil {
		uc.metrics.IncCapacityRejection("local")
		uc.logger.Warn("TransferBooking: departure id=%d: %v", target.ID, err)
		return nil, err
	}

	// 5. Отправляем команду
	cmd := engine.Command{
		Name:        engine.CommandTransferBooking,
		TargetKind:  engine.TargetBooking,
		TargetID:    booking.ID,
		Payload:     commandPayload{TargetDepartureID: target.ID},
		Invalidates: cache.RelocationKeys(booking.ID, source, target),
	}

	var result *reservationstore.TransferResult
	err = uc.dispatcher.Execute(ctx, cmd, func(ctx context.Context) ([]string, error) {
		transferred, err := uc.store.TransferBooking(ctx, booking.ID, target.ID)
		if err != nil {
			return nil, err
		}
		result = transferred
		return cache.RelocationKeys(transferred.Booking.ID, transferred.Source, transferred.Target), nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("TransferBooking: booking id=%d transferred from departure id=%d to id=%d",
		result.Booking.ID, result.Source.ID, result.Target.ID)

	return &Response{
		Booking: result.Booking,
		Source:  result.Source,
		Target:  result.Target,
	}, nil
}
