package domain

import "fmt"

// allowedTransitions допустимые переходы статусов бронирования
// cancelled - терминальный статус без исходящих переходов
var allowedTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusPaid, StatusCancelled},
	StatusConfirmed: {StatusPaid, StatusCancelled},
	StatusPaid:      {StatusCancelled},
	StatusCancelled: {},
}

// CanTransition проверяет переход статуса from -> to
func CanTransition(from, to BookingStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidateStatusTransition проверяет переход и подтверждение необратимой отмены
// Любое изменение отмененного бронирования - ErrTerminalState
func ValidateStatusTransition(from, to BookingStatus, confirmed bool) error {
	if from == StatusCancelled {
		return ErrTerminalState
	}
	if !to.IsValid() || !CanTransition(from, to) {
		return fmt.Errorf("invalid status transition %s -> %s", from, to)
	}
	if to == StatusCancelled && !confirmed {
		return fmt.Errorf("%w: cancellation cannot be undone", ErrConfirmationRequired)
	}
	return nil
}
