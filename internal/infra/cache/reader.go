package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
)

const (
	resultHit   = "hit"
	resultMiss  = "miss"
	resultError = "error"
)

// Reader читает сущности через кэш
// Ошибки кэша не ломают чтение: при любой проблеме значение берется из источника
type Reader struct {
	store   Store
	source  Source
	ttl     time.Duration
	metrics Metrics
	log     Logger
}

// NewReader создает read-through кэш поверх источника
func NewReader(store Store, source Source, ttl time.Duration, metrics Metrics, log Logger) *Reader {
	return &Reader{
		store:   store,
		source:  source,
		ttl:     ttl,
		metrics: metrics,
		log:     log,
	}
}

func (r *Reader) Tour(ctx context.Context, tourID int64) (*domain.Tour, error) {
	return readThrough(ctx, r, "tour", TourKey(tourID), func(ctx context.Context) (*domain.Tour, error) {
		return r.source.GetTour(ctx, tourID)
	})
}

func (r *Reader) Departure(ctx context.Context, departureID int64) (*domain.Departure, error) {
	return readThrough(ctx, r, "departure", DepartureKey(departureID), func(ctx context.Context) (*domain.Departure, error) {
		return r.source.GetDeparture(ctx, departureID)
	})
}

// DepartureBookings возвращает все бронирования выезда с типом, спроецированным с выезда
func (r *Reader) DepartureBookings(ctx context.Context, departure *domain.Departure) ([]*domain.Booking, error) {
	bookings, err := readThrough(ctx, r, "departure_bookings", DepartureBookingsKey(departure.ID), func(ctx context.Context) ([]*domain.Booking, error) {
		return r.source.ListDepartureBookings(ctx, departure.ID)
	})
	if err != nil {
		return nil, err
	}
	domain.ProjectTypes(departure, bookings)
	return bookings, nil
}

// Booking возвращает бронирование вместе с выездом-владельцем
// Тип бронирования всегда проецируется с выезда, а не берется из кэша
func (r *Reader) Booking(ctx context.Context, bookingID int64) (*domain.Booking, *domain.Departure, error) {
	booking, err := readThrough(ctx, r, "booking", BookingKey(bookingID), func(ctx context.Context) (*domain.Booking, error) {
		return r.source.GetBooking(ctx, bookingID)
	})
	if err != nil {
		return nil, nil, err
	}

	departure, err := r.Departure(ctx, booking.DepartureID)
	if err != nil {
		return nil, nil, err
	}
	booking.ProjectType(departure)

	return booking, departure, nil
}

// Departures возвращает выезды тура на дату
func (r *Reader) Departures(ctx context.Context, tourID int64, date time.Time) ([]*domain.Departure, error) {
	return readThrough(ctx, r, "departures", DeparturesKey(tourID, date), func(ctx context.Context) ([]*domain.Departure, error) {
		return r.source.ListDepartures(ctx, tourID, date)
	})
}

// Invalidate сбрасывает ключи после изменяющей команды
func (r *Reader) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := r.store.Delete(ctx, keys...); err != nil {
		r.log.Error("Failed to invalidate cache keys %v: %v", keys, err)
		return err
	}
	if r.metrics != nil {
		r.metrics.AddCacheInvalidations(len(keys))
	}
	return nil
}

func (r *Reader) count(entity, result string) {
	if r.metrics != nil {
		r.metrics.IncCacheRequest(entity, result)
	}
}

func readThrough[T any](ctx context.Context, r *Reader, entity, key string, load func(context.Context) (T, error)) (T, error) {
	data, ok, err := r.store.Get(ctx, key)
	switch {
	case err != nil:
		r.count(entity, resultError)
		r.log.Warn("Cache get %s failed, reading from source: %v", key, err)
	case ok:
		var cached T
		if err := json.Unmarshal(data, &cached); err == nil {
			r.count(entity, resultHit)
			return cached, nil
		}
		r.count(entity, resultError)
		r.log.Warn("%v: dropping %s", ErrCorruptedEntry, key)
		_ = r.store.Delete(ctx, key)
	default:
		r.count(entity, resultMiss)
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	payload, err := json.Marshal(value)
	if err != nil {
		r.log.Warn("Failed to encode %s for cache: %v", key, err)
		return value, nil
	}
	if err := r.store.Set(ctx, key, payload, r.ttl); err != nil {
		r.log.Warn("Cache set %s failed: %v", key, err)
	}

	return value, nil
}
