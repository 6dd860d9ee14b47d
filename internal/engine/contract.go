package engine

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TourBookingService/internal/infra/events"
	"github.com/m04kA/SMC-TourBookingService/internal/infra/storage/journal"
)

// Journal журнал изменяющих команд
type Journal interface {
	Create(ctx context.Context, entry *journal.Entry) error
	Finish(ctx context.Context, id uuid.UUID, status journal.Status, errMsg *string, finishedAt time.Time) error
}

// Publisher публикатор событий о выполненных командах
type Publisher interface {
	Publish(ctx context.Context, event events.ReservationEvent) error
}

// Invalidator сброс ключей кэша сущностей
type Invalidator interface {
	Invalidate(ctx context.Context, keys ...string) error
}

// InFlightGuard не дает отправить вторую команду по сущности, пока первая не завершилась
type InFlightGuard interface {
	// Acquire возвращает ErrCommandInFlight, если по ключу уже выполняется команда
	Acquire(ctx context.Context, key string) (release func(), err error)
}

type Metrics interface {
	ObserveCommand(command, outcome string, duration time.Duration)
	IncCapacityRejection(source string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TimeProvider интерфейс для получения текущего времени (для тестируемости)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реализация TimeProvider
type RealTimeProvider struct{}

func (r *RealTimeProvider) Now() time.Time {
	return time.Now()
}
