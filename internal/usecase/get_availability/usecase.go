package get_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
)

// UseCase доступность тура на диапазон дат для группы
type UseCase struct {
	reader          EntityReader
	defaultMaxPax   int
	defaultCurrency domain.Currency
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reader EntityReader, defaultMaxPax int, defaultCurrency domain.Currency, logger Logger) *UseCase {
	if defaultMaxPax <= 0 {
		defaultMaxPax = domain.DefaultDepartureMaxPax
	}
	if defaultCurrency == "" {
		defaultCurrency = domain.DefaultCurrency
	}

	return &UseCase{
		reader:          reader,
		defaultMaxPax:   defaultMaxPax,
		defaultCurrency: defaultCurrency,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: tour=%d, from=%s, to=%s, pax=%d",
		req.TourID, req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat), req.Pax)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Диапазон не может начинаться в прошлом
	if isDateInPast(req.From, uc.timeProvider.Now()) {
		uc.logger.Warn("GetAvailability: range starts in the past: %s", req.From.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	currency := req.Currency
	if currency == "" {
		currency = uc.defaultCurrency
	}

	// 3. Получаем тур
	tour, err := uc.reader.Tour(ctx, req.TourID)
	if err != nil {
		uc.logger.Warn("GetAvailability: failed to get tour id=%d: %v", req.TourID, err)
		return nil, err
	}
	if !tour.Active {
		uc.logger.Warn("GetAvailability: tour id=%d is not active", tour.ID)
		return nil, ErrTourInactive
	}

	// 4. Цена нового выезда по текущим тарифам тура
	newDeparturePrice, err := domain.ComputePrice(tour.PricingTiers, req.Pax, currency)
	if err != nil {
		uc.logger.Warn("GetAvailability: tour id=%d: %v", tour.ID, err)
		return nil, err
	}

	// 5. Собираем варианты по каждому дню
	days := generateDays(req.From, req.To)
	resp := &Response{
		TourID:            tour.ID,
		Pax:               req.Pax,
		Currency:          currency,
		NewDeparturePrice: newDeparturePrice,
		Days:              make([]Day, 0, len(days)),
	}

	joinable := 0
	for _, date := range days {
		departures, err := uc.reader.Departures(ctx, tour.ID, date)
		if err != nil {
			uc.logger.Error("GetAvailability: failed to get departures for tour=%d, date=%s: %v",
				tour.ID, date.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("date %s: %w", date.Format(domain.DateFormat), err)
		}

		day := Day{
			Date:                  date,
			NewDepartureAvailable: req.Pax <= uc.defaultMaxPax,
			Departures:            make([]DepartureOption, 0, len(departures)),
		}
		for _, d := range departures {
			option := departureOption(d, tour.PricingTiers, req.Pax, currency)
			if option.Joinable {
				joinable++
			}
			day.Departures = append(day.Departures, option)
		}
		resp.Days = append(resp.Days, day)
	}

	uc.logger.Info("GetAvailability: tour=%d, %d days, %d joinable departures", tour.ID, len(resp.Days), joinable)
	return resp, nil
}
