package tours

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/internal/engine"
	"github.com/m04kA/SMC-TourBookingService/internal/infra/cache"
	"github.com/m04kA/SMC-TourBookingService/internal/service/tours/models"
)

// Service сервис каталога туров и расчета цен
type Service struct {
	reader          EntityReader
	store           ReservationStore
	dispatcher      Dispatcher
	defaultCurrency domain.Currency
	logger          Logger
}

// NewService создает новый экземпляр сервиса туров
func NewService(
	reader EntityReader,
	store ReservationStore,
	dispatcher Dispatcher,
	defaultCurrency domain.Currency,
	logger Logger,
) *Service {
	return &Service{
		reader:          reader,
		store:           store,
		dispatcher:      dispatcher,
		defaultCurrency: defaultCurrency,
		logger:          logger,
	}
}

// GetByID получает тур
func (s *Service) GetByID(ctx context.Context, id int64) (*models.TourResponse, error) {
	s.logger.Info("GetByID: fetching tour id=%d", id)

	tour, err := s.reader.Tour(ctx, id)
	if err != nil {
		s.logger.Warn("GetByID: failed to get tour id=%d: %v", id, err)
		return nil, err
	}

	return models.FromDomainTour(tour), nil
}

// List получает каталог туров
func (s *Service) List(ctx context.Context) (*models.TourListResponse, error) {
	tours, err := s.store.ListTours(ctx)
	if err != nil {
		s.logger.Error("List: failed to list tours: %v", err)
		return nil, err
	}

	s.logger.Info("List: fetched %d tours", len(tours))
	return models.FromDomainTourList(tours), nil
}

// Quote рассчитывает цену для количества человек без создания бронирования
func (s *Service) Quote(ctx context.Context, id int64, pax int, currency domain.Currency) (*models.QuoteResponse, error) {
	s.logger.Info("Quote: tour id=%d, pax=%d, currency=%s", id, pax, currency)

	if pax < domain.MinPax {
		return nil, fmt.Errorf("%w: pax must be at least %d", ErrInvalidInput, domain.MinPax)
	}
	if currency == "" {
		currency = s.defaultCurrency
	}
	if !currency.IsValid() {
		return nil, fmt.Errorf("%w: unsupported currency %q", ErrInvalidInput, currency)
	}

	tour, err := s.reader.Tour(ctx, id)
	if err != nil {
		s.logger.Warn("Quote: failed to get tour id=%d: %v", id, err)
		return nil, err
	}

	tier, err := domain.ResolveTier(tour.PricingTiers, pax)
	if err != nil {
		s.logger.Warn("Quote: tour id=%d: %v", id, err)
		return nil, err
	}
	unitPrice := tier.Price(currency)

	return &models.QuoteResponse{
		TourID:    tour.ID,
		Pax:       pax,
		Currency:  string(currency),
		Tier:      models.FromDomainTier(tier),
		UnitPrice: unitPrice,
		Total:     unitPrice * int64(pax),
	}, nil
}

// UpdatePricing заменяет таблицу цен тура
// Таблица должна начинаться с 1 человека и покрывать диапазон без пропусков и пересечений
// Существующие выезды сохраняют свой снимок цен
func (s *Service) UpdatePricing(ctx context.Context, id int64, req *models.UpdatePricingRequest) (*models.TourResponse, error) {
	s.logger.Info("UpdatePricing: tour id=%d, tiers=%d", id, len(req.PricingTiers))

	tiers := req.ToDomain()
	if err := domain.ValidatePricingTiers(tiers); err != nil {
		s.logger.Warn("UpdatePricing: tour id=%d: %v", id, err)
		return nil, err
	}

	cmd := engine.Command{
		Name:        engine.CommandUpdateTourPricing,
		TargetKind:  engine.TargetTour,
		TargetID:    id,
		Payload:     req,
		Invalidates: cache.TourKeys(id),
	}

	var tour *domain.Tour
	err := s.dispatcher.Execute(ctx, cmd, func(ctx context.Context) ([]string, error) {
		updated, err := s.store.UpdateTourPricing(ctx, id, tiers)
		if err != nil {
			return nil, err
		}
		tour = updated
		return cache.TourKeys(updated.ID), nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdatePricing: tour id=%d now covers up to %d pax", tour.ID, tour.MaxCoveredPax())
	return models.FromDomainTour(tour), nil
}
