package departures

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/internal/engine"
)

// EntityReader чтение сущностей через кэш
type EntityReader interface {
	Departure(ctx context.Context, departureID int64) (*domain.Departure, error)
	DepartureBookings(ctx context.Context, departure *domain.Departure) ([]*domain.Booking, error)
	Departures(ctx context.Context, tourID int64, date time.Time) ([]*domain.Departure, error)
}

// ReservationStore команды над выездом
type ReservationStore interface {
	DeleteDeparture(ctx context.Context, departureID int64) error
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
