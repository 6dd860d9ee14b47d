package departures

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/internal/engine"
	"github.com/m04kA/SMC-TourBookingService/internal/infra/cache"
	bookingModels "github.com/m04kA/SMC-TourBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-TourBookingService/internal/service/departures/models"
)

// Service сервис для чтения и удаления выездов
type Service struct {
	reader     EntityReader
	store      ReservationStore
	dispatcher Dispatcher
	logger     Logger
}

// NewService создает новый экземпляр сервиса выездов
func NewService(reader EntityReader, store ReservationStore, dispatcher Dispatcher, logger Logger) *Service {
	return &Service{
		reader:     reader,
		store:      store,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// GetByID получает выезд со всеми бронированиями
// Заполненность пересчитывается по бронированиям, а не берется из кэша
func (s *Service) GetByID(ctx context.Context, id int64) (*models.DepartureDetailsResponse, error) {
	s.logger.Info("GetByID: fetching departure id=%d", id)

	departure, err := s.reader.Departure(ctx, id)
	if err != nil {
		s.logger.Warn("GetByID: failed to get departure id=%d: %v", id, err)
		return nil, err
	}

	bookings, err := s.reader.DepartureBookings(ctx, departure)
	if err != nil {
		s.logger.Error("GetByID: failed to get bookings of departure id=%d: %v", id, err)
		return nil, err
	}

	if cached := departure.CurrentPax; departure.RecomputeCurrentPax(bookings) != cached {
		s.logger.Warn("GetByID: departure id=%d currentPax %d differs from bookings sum %d",
			id, cached, departure.CurrentPax)
	}

	return &models.DepartureDetailsResponse{
		Departure: *models.FromDomainDeparture(departure),
		Bookings:  bookingModels.FromDomainBookingList(bookings),
	}, nil
}

// List получает выезды тура на дату
func (s *Service) List(ctx context.Context, tourID int64, date time.Time) (*models.DepartureListResponse, error) {
	s.logger.Info("List: fetching departures for tour=%d, date=%s", tourID, date.Format(domain.DateFormat))

	if tourID <= 0 {
		return nil, fmt.Errorf("%w: tourId must be positive", ErrInvalidInput)
	}

	departures, err := s.reader.Departures(ctx, tourID, date)
	if err != nil {
		s.logger.Error("List: failed to get departures for tour=%d: %v", tourID, err)
		return nil, err
	}

	return models.FromDomainDepartureList(departures), nil
}

// Delete удаляет пустой выезд
// Удаление необратимо и требует явного подтверждения
func (s *Service) Delete(ctx context.Context, id int64, confirmed bool) error {
	s.logger.Info("Delete: departure id=%d, confirmed=%t", id, confirmed)

	if !confirmed {
		return fmt.Errorf("%w: departure deletion cannot be undone", domain.ErrConfirmationRequired)
	}

	departure, err := s.reader.Departure(ctx, id)
	if err != nil {
		s.logger.Warn("Delete: failed to get departure id=%d: %v", id, err)
		return err
	}

	bookings, err := s.reader.DepartureBookings(ctx, departure)
	if err != nil {
		s.logger.Error("Delete: failed to get bookings of departure id=%d: %v", id, err)
		return err
	}
	if departure.RecomputeCurrentPax(bookings) > 0 {
		s.logger.Warn("Delete: departure id=%d still has %d pax", id, departure.CurrentPax)
		return fmt.Errorf("%w: departure %d has %d active pax", domain.ErrTerminalState, id, departure.CurrentPax)
	}

	cmd := engine.Command{
		Name:        engine.CommandDeleteDeparture,
		TargetKind:  engine.TargetDeparture,
		TargetID:    departure.ID,
		Invalidates: cache.DepartureKeys(departure),
	}

	err = s.dispatcher.Execute(ctx, cmd, func(ctx context.Context) ([]string, error) {
		if err := s.store.DeleteDeparture(ctx, departure.ID); err != nil {
			return nil, err
		}
		return cache.DepartureKeys(departure), nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Delete: departure id=%d deleted", id)
	return nil
}
