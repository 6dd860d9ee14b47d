package domain

import (
	"fmt"
	"strings"
)

// PriceCommand скидка или явное переопределение итоговой цены
// Должно быть задано ровно одно из DiscountAmount и NewFinalPrice, причина обязательна
type PriceCommand struct {
	DiscountAmount *int64
	NewFinalPrice  *int64
	Reason         string
}

// Validate проверяет команду относительно исходной цены бронирования
func (c PriceCommand) Validate(originalPrice int64) error {
	if (c.DiscountAmount == nil) == (c.NewFinalPrice == nil) {
		return fmt.Errorf("%w: exactly one of discountAmount or newFinalPrice is required", ErrInvalidPriceCommand)
	}

	reason := strings.TrimSpace(c.Reason)
	if reason == "" {
		return fmt.Errorf("%w: reason is required", ErrInvalidPriceCommand)
	}
	if len(reason) > MaxDiscountReasonLength {
		return fmt.Errorf("%w: reason is longer than %d characters", ErrInvalidPriceCommand, MaxDiscountReasonLength)
	}

	if c.DiscountAmount != nil {
		if *c.DiscountAmount < 0 {
			return fmt.Errorf("%w: discountAmount must not be negative", ErrInvalidPriceCommand)
		}
		if *c.DiscountAmount > originalPrice {
			return fmt.Errorf("%w: discountAmount %d exceeds original price %d", ErrInvalidPriceCommand, *c.DiscountAmount, originalPrice)
		}
	}

	if c.NewFinalPrice != nil && *c.NewFinalPrice < 0 {
		return fmt.Errorf("%w: newFinalPrice must not be negative", ErrInvalidPriceCommand)
	}

	return nil
}

// FinalPrice возвращает итоговую цену после применения команды
// Цена выше исходной допустима только с причиной, что гарантирует Validate
func (c PriceCommand) FinalPrice(originalPrice int64) int64 {
	if c.DiscountAmount != nil {
		return originalPrice - *c.DiscountAmount
	}
	return *c.NewFinalPrice
}
