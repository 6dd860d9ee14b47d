package cache

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
)

// Store хранилище закэшированных сущностей
type Store interface {
	// Get возвращает значение и признак попадания
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Source авторитетный источник чтений (клиент хранилища бронирований)
type Source interface {
	GetTour(ctx context.Context, tourID int64) (*domain.Tour, error)
	GetDeparture(ctx context.Context, departureID int64) (*domain.Departure, error)
	ListDepartures(ctx context.Context, tourID int64, date time.Time) ([]*domain.Departure, error)
	GetBooking(ctx context.Context, bookingID int64) (*domain.Booking, error)
	ListDepartureBookings(ctx context.Context, departureID int64) ([]*domain.Booking, error)
}

// Metrics счетчики кэша
type Metrics interface {
	IncCacheRequest(entity, result string)
	AddCacheInvalidations(n int)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
