package domain

// ResolveTier возвращает тариф, диапазон которого содержит pax
// Диапазоны считаются непересекающимися; если в данных есть пересечение,
// выигрывает первый подходящий тариф в порядке хранения
func ResolveTier(tiers []PricingTier, pax int) (PricingTier, error) {
	if pax >= MinPax {
		for _, tier := range tiers {
			if tier.Contains(pax) {
				return tier, nil
			}
		}
	}
	return PricingTier{}, &TierNotFoundError{Pax: pax}
}

// ComputePrice вычисляет исходную цену бронирования: цена тарифа * pax
// Цена всегда считается заново от тарифа, а не от предыдущей цены бронирования
func ComputePrice(tiers []PricingTier, pax int, currency Currency) (int64, error) {
	tier, err := ResolveTier(tiers, pax)
	if err != nil {
		return 0, err
	}
	return tier.Price(currency) * int64(pax), nil
}
