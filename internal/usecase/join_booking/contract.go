package join_booking

import (
	"context"

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
	JoinBooking(ctx context.Context, departureID int64, req reservationstore.JoinBookingRequest) (*reservationstore.BookingState, error)
}

// Dispatcher диспетчер изменяющих команд
type Dispatcher interface {
	Execute(ctx context.Context, cmd engine.Command, fn engine.CommandFunc) error
}

// Metrics метрики расхождений и отказов
type Metrics interface {
	IncCapacityRejection(source string)
	IncPriceDrift(command string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
