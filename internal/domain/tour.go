package domain

import (
	"fmt"
	"time"
)

// LocalizedText текст на испанском и английском
type LocalizedText struct {
	ES string `json:"es"`
	EN string `json:"en"`
}

// PricingTier тариф для диапазона количества человек (границы включительно)
type PricingTier struct {
	MinPax   int   `json:"minPax"`
	MaxPax   int   `json:"maxPax"`
	PriceCOP int64 `json:"priceCOP"`
	PriceUSD int64 `json:"priceUSD"` // в центах
}

// Contains проверяет, что pax попадает в диапазон тарифа
func (t PricingTier) Contains(pax int) bool {
	return pax >= t.MinPax && pax <= t.MaxPax
}

// Price возвращает цену за одного человека в указанной валюте
func (t PricingTier) Price(currency Currency) int64 {
	if currency == CurrencyUSD {
		return t.PriceUSD
	}
	return t.PriceCOP
}

// Tour позиция каталога с таблицей цен
type Tour struct {
	ID           int64
	Name         LocalizedText
	Description  LocalizedText
	PricingTiers []PricingTier
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// MaxCoveredPax возвращает верхнюю границу покрытия таблицы цен (0 если таблица пуста)
func (t *Tour) MaxCoveredPax() int {
	maxPax := 0
	for _, tier := range t.PricingTiers {
		if tier.MaxPax > maxPax {
			maxPax = tier.MaxPax
		}
	}
	return maxPax
}

// ValidatePricingTiers проверяет, что тарифы непрерывны, не пересекаются и начинаются с 1
// Тарифы должны быть упорядочены по MinPax
func ValidatePricingTiers(tiers []PricingTier) error {
	if len(tiers) == 0 {
		return fmt.Errorf("%w: at least one tier is required", ErrInvalidPricingTable)
	}
	if len(tiers) > MaxPricingTiers {
		return fmt.Errorf("%w: at most %d tiers allowed", ErrInvalidPricingTable, MaxPricingTiers)
	}

	expectedMin := MinPax
	for i, tier := range tiers {
		if tier.MinPax > tier.MaxPax {
			return fmt.Errorf("%w: tier %d has minPax %d > maxPax %d", ErrInvalidPricingTable, i, tier.MinPax, tier.MaxPax)
		}
		if tier.MinPax != expectedMin {
			return fmt.Errorf("%w: tier %d starts at %d, expected %d", ErrInvalidPricingTable, i, tier.MinPax, expectedMin)
		}
		if tier.PriceCOP < 0 || tier.PriceUSD < 0 {
			return fmt.Errorf("%w: tier %d has negative price", ErrInvalidPricingTable, i)
		}
		expectedMin = tier.MaxPax + 1
	}

	return nil
}
