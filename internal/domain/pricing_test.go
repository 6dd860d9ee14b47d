package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTiers() []PricingTier {
	return []PricingTier{
		{MinPax: 1, MaxPax: 1, PriceCOP: 250000, PriceUSD: 6500},
		{MinPax: 2, MaxPax: 3, PriceCOP: 180000, PriceUSD: 4700},
		{MinPax: 4, MaxPax: 8, PriceCOP: 140000, PriceUSD: 3600},
	}
}

func TestResolveTier_ExactlyOneTierForCoveredPax(t *testing.T) {
	tiers := testTiers()

	for pax := 1; pax <= 8; pax++ {
		matches := 0
		for _, tier := range tiers {
			if tier.Contains(pax) {
				matches++
			}
		}
		assert.Equal(t, 1, matches, "pax=%d", pax)

		tier, err := ResolveTier(tiers, pax)
		require.NoError(t, err, "pax=%d", pax)
		assert.True(t, tier.Contains(pax))
	}
}

func TestResolveTier_Boundaries(t *testing.T) {
	tiers := testTiers()

	tier, err := ResolveTier(tiers, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(180000), tier.PriceCOP)

	tier, err = ResolveTier(tiers, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(140000), tier.PriceCOP)
}

func TestResolveTier_NotFound(t *testing.T) {
	for _, pax := range []int{0, -1, 9, 100} {
		_, err := ResolveTier(testTiers(), pax)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrTierNotFound))

		var tierErr *TierNotFoundError
		require.True(t, errors.As(err, &tierErr))
		assert.Equal(t, pax, tierErr.Pax)
	}
}

func TestResolveTier_OverlapFirstStoredWins(t *testing.T) {
	tiers := []PricingTier{
		{MinPax: 1, MaxPax: 4, PriceCOP: 200000},
		{MinPax: 4, MaxPax: 6, PriceCOP: 150000},
	}

	tier, err := ResolveTier(tiers, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(200000), tier.PriceCOP)
}

func TestComputePrice(t *testing.T) {
	price, err := ComputePrice(testTiers(), 2, CurrencyCOP)
	require.NoError(t, err)
	assert.Equal(t, int64(360000), price)

	price, err = ComputePrice(testTiers(), 5, CurrencyUSD)
	require.NoError(t, err)
	assert.Equal(t, int64(18000), price)

	_, err = ComputePrice(testTiers(), 12, CurrencyCOP)
	assert.ErrorIs(t, err, ErrTierNotFound)
}

// Цена после смены тура считается с нуля от тарифа нового тура
func TestComputePrice_TourChangeNeverCompounds(t *testing.T) {
	tourA := []PricingTier{{MinPax: 1, MaxPax: 10, PriceCOP: 180000}}
	tourB := []PricingTier{{MinPax: 1, MaxPax: 10, PriceCOP: 140000}}

	oldPrice, err := ComputePrice(tourA, 2, CurrencyCOP)
	require.NoError(t, err)
	assert.Equal(t, int64(360000), oldPrice)

	newPrice, err := ComputePrice(tourB, 2, CurrencyCOP)
	require.NoError(t, err)
	assert.Equal(t, int64(280000), newPrice)
	assert.NotEqual(t, int64(560000), newPrice)
}

func TestValidatePricingTiers(t *testing.T) {
	tests := []struct {
		name    string
		tiers   []PricingTier
		wantErr bool
	}{
		{"valid", testTiers(), false},
		{"empty", nil, true},
		{"does not start at one", []PricingTier{{MinPax: 2, MaxPax: 4}}, true},
		{"gap", []PricingTier{{MinPax: 1, MaxPax: 2}, {MinPax: 4, MaxPax: 6}}, true},
		{"overlap", []PricingTier{{MinPax: 1, MaxPax: 4}, {MinPax: 4, MaxPax: 6}}, true},
		{"inverted range", []PricingTier{{MinPax: 1, MaxPax: 0}}, true},
		{"negative price", []PricingTier{{MinPax: 1, MaxPax: 3, PriceCOP: -1}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePricingTiers(tt.tiers)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPricingTable)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTour_MaxCoveredPax(t *testing.T) {
	tour := &Tour{PricingTiers: testTiers()}
	assert.Equal(t, 8, tour.MaxCoveredPax())
	assert.Equal(t, 0, (&Tour{}).MaxCoveredPax())
}
