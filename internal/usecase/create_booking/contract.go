package create_booking

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
}

// ReservationStore команды хранилища бронирований
type ReservationStore interface {
	CreateBooking(ctx context.Context, req reservationstore.CreateBookingRequest) (*reservationstore.BookingState, error)
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
