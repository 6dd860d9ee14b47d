package tours

import (
	"context"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/internal/engine"
)

// EntityReader чтение тура через кэш
type EntityReader interface {
	Tour(ctx context.Context, tourID int64) (*domain.Tour, error)
}

// ReservationStore каталог туров в хранилище
type ReservationStore interface {
	ListTours(ctx context.Context) ([]*domain.Tour, error)
	UpdateTourPricing(ctx context.Context, tourID int64, tiers []domain.PricingTier) (*domain.Tour, error)
}

// Dispatcher диспетчер изменяющих команд
type Dispatcher interface {
	Execute(ctx context.Context, cmd engine.Command, fn engine.CommandFunc) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
