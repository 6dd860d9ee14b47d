package bookings

import (
	"context"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/internal/engine"
	"github.com/m04kA/SMC-TourBookingService/internal/integrations/reservationstore"
)

// EntityReader чтение сущностей через кэш
type EntityReader interface {
	Tour(ctx context.Context, tourID int64) (*domain.Tour, error)
	Booking(ctx context.Context, bookingID int64) (*domain.Booking, *domain.Departure, error)
	DepartureBookings(ctx context.Context, departure *domain.Departure) ([]*domain.Booking, error)
}

// ReservationStore команды над одним бронированием
type ReservationStore interface {
	UpdateBookingStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) (*reservationstore.BookingState, error)
	UpdateBookingPax(ctx context.Context, bookingID int64, pax int) (*reservationstore.BookingState, error)
	UpdateBookingDetails(ctx context.Context, bookingID int64, customer domain.Customer) (*reservationstore.BookingState, error)
	ApplyDiscount(ctx context.Context, bookingID int64, cmd domain.PriceCommand) (*reservationstore.BookingState, error)
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
