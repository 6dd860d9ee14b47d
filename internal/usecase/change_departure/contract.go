package change_departure

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/internal/engine"
	"github.com/m04kA/SMC-TourBookingService/internal/integrations/reservationstore"
)

// EntityReader чтение сущностей через кэш
type EntityReader interface {
	Tour(ctx context.Context, tourID int64) (*domain.Tour, error)
	Departure(ctx context.Context, departureID int64) (*domain.Departure, error)
	DepartureBookings(ctx context.Context, departure *domain.Departure) ([]*domain.Booking, error)
}

// ReservationStore команды хранилища бронирований
type ReservationStore interface {
	UpdateDepartureDate(ctx context.Context, departureID int64, date time.Time) (*reservationstore.DepartureState, error)
	UpdateDepartureTour(ctx context.Context, departureID, tourID int64) (*reservationstore.DepartureState, error)
}

// Dispatcher диспетчер изменяющих команд
type Dispatcher interface {
	Execute(ctx context.Context, cmd engine.Command, fn engine.CommandFunc) error
}

// Metrics метрики расхождений цены
type Metrics interface {
	IncPriceDrift(command string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
