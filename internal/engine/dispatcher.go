package engine

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/internal/infra/events"
	"github.com/m04kA/SMC-TourBookingService/internal/infra/storage/journal"
	"github.com/m04kA/SMC-TourBookingService/internal/integrations/reservationstore"
	"github.com/m04kA/SMC-TourBookingService/pkg/reqctx"
)

// CommandFunc отправляет команду в хранилище и возвращает ключи кэша авторитетного состояния после нее
type CommandFunc func(ctx context.Context) (affectedKeys []string, err error)

// Dispatcher выполняет изменяющие команды к хранилищу бронирований
// Движок не хранит состояния сущностей: только блокировка, журнал, кэш и события вокруг вызова
type Dispatcher struct {
	guard        InFlightGuard
	journal      Journal
	invalidator  Invalidator
	publisher    Publisher
	metrics      Metrics
	log          Logger
	timeProvider TimeProvider
}

// NewDispatcher создает диспетчер команд
func NewDispatcher(
	guard InFlightGuard,
	journal Journal,
	invalidator Invalidator,
	publisher Publisher,
	metrics Metrics,
	log Logger,
) *Dispatcher {
	return &Dispatcher{
		guard:        guard,
		journal:      journal,
		invalidator:  invalidator,
		publisher:    publisher,
		metrics:      metrics,
		log:          log,
		timeProvider: &RealTimeProvider{},
	}
}

// Execute выполняет команду не более одного раза
// Повторов нет: неизвестный результат возвращается как reservationstore.ErrOutcomeUnknown
func (d *Dispatcher) Execute(ctx context.Context, cmd Command, fn CommandFunc) error {
	// 1. Одна команда на сущность
	release, err := d.guard.Acquire(ctx, cmd.LockKey())
	if err != nil {
		if errors.Is(err, ErrCommandInFlight) {
			d.metrics.ObserveCommand(cmd.Name, OutcomeInFlight, 0)
			d.log.Warn("Command %s rejected: %v", cmd.Name, err)
		} else {
			d.log.Error("Command %s: failed to acquire in-flight guard: %v", cmd.Name, err)
		}
		return err
	}
	defer release()

	// Результат команды фиксируется, даже если клиент отменил запрос
	bgCtx := context.WithoutCancel(ctx)

	// 2. Журнал: pending
	entry := d.newEntry(cmd)
	if err := d.journal.Create(bgCtx, entry); err != nil {
		d.log.Error("Command %s (%s): failed to write journal entry: %v", cmd.Name, entry.ID, err)
	}

	// 3. Вызов хранилища
	start := d.timeProvider.Now()
	affectedKeys, cmdErr := fn(ctx)
	duration := d.timeProvider.Now().Sub(start)

	// 4. Журнал: итог команды
	outcome, status := classify(cmdErr)
	var errMsg *string
	if cmdErr != nil {
		msg := cmdErr.Error()
		errMsg = &msg
	}
	if err := d.journal.Finish(bgCtx, entry.ID, status, errMsg, d.timeProvider.Now()); err != nil {
		d.log.Error("Command %s (%s): failed to finish journal entry: %v", cmd.Name, entry.ID, err)
	}

	// 5. Инвалидация кэша
	keys := cmd.Invalidates
	if cmdErr == nil {
		keys = append(append([]string{}, cmd.Invalidates...), affectedKeys...)
	}
	if len(keys) > 0 {
		if err := d.invalidator.Invalidate(bgCtx, keys...); err != nil {
			d.log.Error("Command %s (%s): cache invalidation failed: %v", cmd.Name, entry.ID, err)
		}
	}

	// 6. Метрики
	d.metrics.ObserveCommand(cmd.Name, outcome, duration)
	if errors.Is(cmdErr, domain.ErrCapacityExceeded) {
		d.metrics.IncCapacityRejection("store")
	}

	if cmdErr != nil {
		if outcome == OutcomeUnknown {
			d.log.Error("Command %s %s:%d (%s) outcome unknown, state must be re-fetched: %v",
				cmd.Name, cmd.TargetKind, cmd.TargetID, entry.ID, cmdErr)
		} else {
			d.log.Warn("Command %s %s:%d (%s) failed: %v", cmd.Name, cmd.TargetKind, cmd.TargetID, entry.ID, cmdErr)
		}
		return cmdErr
	}

	// 7. Событие: ошибки публикации не отменяют уже выполненную команду
	event := events.ReservationEvent{
		ID:         entry.ID.String(),
		Command:    cmd.Name,
		TargetKind: cmd.TargetKind,
		TargetID:   cmd.TargetID,
		RequestID:  reqctx.RequestID(ctx),
		OccurredAt: d.timeProvider.Now(),
	}
	if err := d.publisher.Publish(bgCtx, event); err != nil {
		d.log.Error("Command %s (%s): failed to publish event: %v", cmd.Name, entry.ID, err)
	}

	d.log.Info("Command %s %s:%d (%s) succeeded in %s", cmd.Name, cmd.TargetKind, cmd.TargetID, entry.ID, duration)
	return nil
}

func (d *Dispatcher) newEntry(cmd Command) *journal.Entry {
	var payload json.RawMessage
	if cmd.Payload != nil {
		data, err := json.Marshal(cmd.Payload)
		if err != nil {
			d.log.Warn("Command %s: failed to encode payload: %v", cmd.Name, err)
		} else {
			payload = data
		}
	}

	return &journal.Entry{
		ID:         uuid.New(),
		Command:    cmd.Name,
		TargetKind: cmd.TargetKind,
		TargetID:   cmd.TargetID,
		Payload:    payload,
		Status:     journal.StatusPending,
		CreatedAt:  d.timeProvider.Now(),
	}
}

func classify(err error) (string, journal.Status) {
	switch {
	case err == nil:
		return OutcomeSucceeded, journal.StatusSucceeded
	case errors.Is(err, reservationstore.ErrOutcomeUnknown):
		return OutcomeUnknown, journal.StatusUnknown
	default:
		return OutcomeFailed, journal.StatusFailed
	}
}
