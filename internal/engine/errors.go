package engine

import "errors"

var (
	// ErrCommandInFlight по сущности уже выполняется команда
	ErrCommandInFlight = errors.New("engine: another command for this entity is in flight")

	// ErrGuardUnavailable не удалось проверить блокировку команды
	ErrGuardUnavailable = errors.New("engine: in-flight guard unavailable")
)
