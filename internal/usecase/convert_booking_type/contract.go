package convert_booking_type

import (
	"context"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/internal/engine"
	"github.com/m04kA/SMC-TourBookingService/internal/integrations/reservationstore"
)

// EntityReader чтение сущностей через кэш
type EntityReader interface {
	Booking(ctx context.Context, bookingID int64) (*domain.Booking, *domain.Departure, error)
	DepartureBookings(ctx context.Context, departure *domain.Departure) ([]*domain.Booking, error)
}

// ReservationStore команды хранилища бронирований
type ReservationStore interface {
	ConvertBookingType(ctx context.Context, bookingID int64, target domain.DepartureType) (*reservationstore.BookingState, error)
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
