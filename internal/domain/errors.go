package domain

import (
	"errors"
	"fmt"
)

// Таксономия ошибок движка бронирований
// Все ошибки проверяются через errors.Is, типизированные ошибки несут дополнительные данные
var (
	// ErrCapacityExceeded запрошено больше мест, чем доступно в выезде
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrTierNotFound в таблице цен нет тарифа для указанного количества человек
	ErrTierNotFound = errors.New("pricing tier not found")

	// ErrConversionBlocked смена типа бронирования запрещена текущим состоянием выезда
	ErrConversionBlocked = errors.New("booking type conversion blocked")

	// ErrInvalidPriceCommand некорректная команда скидки или переопределения цены
	ErrInvalidPriceCommand = errors.New("invalid price command")

	// ErrStaleState хранилище отклонило команду из-за устаревшего состояния
	ErrStaleState = errors.New("stale state")

	// ErrTerminalState попытка изменить отмененное бронирование или удалить занятый выезд
	ErrTerminalState = errors.New("entity is in terminal state")

	// ErrConfirmationRequired необратимая операция отправлена без явного подтверждения
	ErrConfirmationRequired = errors.New("explicit confirmation required")

	// ErrNotFound сущность не найдена
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidPricingTable таблица цен тура не покрывает диапазон непрерывно
	ErrInvalidPricingTable = errors.New("invalid pricing table")
)

// CapacityExceededError отказ по вместимости с количеством доступных мест
type CapacityExceededError struct {
	Requested int
	Available int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("%s: requested %d, available %d", ErrCapacityExceeded, e.Requested, e.Available)
}

// Is позволяет сравнивать через errors.Is(err, ErrCapacityExceeded)
func (e *CapacityExceededError) Is(target error) bool {
	return target == ErrCapacityExceeded
}

// TierNotFoundError отсутствие тарифа для количества человек
type TierNotFoundError struct {
	Pax int
}

func (e *TierNotFoundError) Error() string {
	return fmt.Sprintf("%s: no tier covers %d pax", ErrTierNotFound, e.Pax)
}

// Is позволяет сравнивать через errors.Is(err, ErrTierNotFound)
func (e *TierNotFoundError) Is(target error) bool {
	return target == ErrTierNotFound
}
