package tours

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/internal/service/tours/models"
	"github.com/m04kA/SMC-TourBookingService/pkg/logger"
)

func newTestService() (*Service, *mockReader, *mockStore, *recordingDispatcher) {
	reader := new(mockReader)
	store := new(mockStore)
	dispatcher := &recordingDispatcher{}
	return NewService(reader, store, dispatcher, domain.CurrencyCOP, logger.NewNop()), reader, store, dispatcher
}

func tour() *domain.Tour {
	return &domain.Tour{
		ID:     1,
		Name:   domain.LocalizedText{ES: "Ciudad Perdida", EN: "Lost City"},
		Active: true,
		PricingTiers: []domain.PricingTier{
			{MinPax: 1, MaxPax: 1, PriceCOP: 250000, PriceUSD: 6500},
			{MinPax: 2, MaxPax: 3, PriceCOP: 180000, PriceUSD: 4700},
			{MinPax: 4, MaxPax: 8, PriceCOP: 140000, PriceUSD: 3600},
		},
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		name      string
		pax       int
		currency  domain.Currency
		wantUnit  int64
		wantTotal int64
	}{
		{name: "single", pax: 1, wantUnit: 250000, wantTotal: 250000},
		{name: "tier lower bound", pax: 2, wantUnit: 180000, wantTotal: 360000},
		{name: "tier upper bound", pax: 3, wantUnit: 180000, wantTotal: 540000},
		{name: "usd", pax: 4, currency: domain.CurrencyUSD, wantUnit: 3600, wantTotal: 14400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, reader, _, _ := newTestService()
			reader.On("Tour", mock.Anything, int64(1)).Return(tour(), nil)

			resp, err := s.Quote(context.Background(), 1, tt.pax, tt.currency)
			require.NoError(t, err)
			assert.Equal(t, tt.wantUnit, resp.UnitPrice)
			assert.Equal(t, tt.wantTotal, resp.Total)
		})
	}
}

func TestQuote_Rejections(t *testing.T) {
	s, reader, _, _ := newTestService()
	reader.On("Tour", mock.Anything, int64(1)).Return(tour(), nil)

	_, err := s.Quote(context.Background(), 1, 9, "")
	assert.ErrorIs(t, err, domain.ErrTierNotFound)

	_, err = s.Quote(context.Background(), 1, 0, "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.Quote(context.Background(), 1, 2, "EUR")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByID(t *testing.T) {
	s, reader, _, _ := newTestService()
	reader.On("Tour", mock.Anything, int64(1)).Return(tour(), nil)

	resp, err := s.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Lost City", resp.Name.EN)
	assert.Equal(t, 8, resp.MaxCoveredPax)
	assert.Len(t, resp.PricingTiers, 3)
}

func TestUpdatePricing(t *testing.T) {
	s, _, store, dispatcher := newTestService()
	req := &models.UpdatePricingRequest{PricingTiers: []models.PricingTier{
		{MinPax: 1, MaxPax: 4, PriceCOP: 200000, PriceUSD: 5000},
		{MinPax: 5, MaxPax: 12, PriceCOP: 150000, PriceUSD: 3900},
	}}
	updated := tour()
	updated.PricingTiers = req.ToDomain()
	store.On("UpdateTourPricing", mock.Anything, int64(1), req.ToDomain()).Return(updated, nil)

	resp, err := s.UpdatePricing(context.Background(), 1, req)
	require.NoError(t, err)
	assert.Equal(t, 12, resp.MaxCoveredPax)
	assert.Equal(t, []string{"tour:1"}, dispatcher.keys)
}

func TestUpdatePricing_RejectsGap(t *testing.T) {
	s, _, store, dispatcher := newTestService()
	req := &models.UpdatePricingRequest{PricingTiers: []models.PricingTier{
		{MinPax: 1, MaxPax: 2, PriceCOP: 200000},
		{MinPax: 4, MaxPax: 8, PriceCOP: 150000},
	}}

	_, err := s.UpdatePricing(context.Background(), 1, req)
	assert.ErrorIs(t, err, domain.ErrInvalidPricingTable)
	assert.Empty(t, dispatcher.commands)
	store.AssertNotCalled(t, "UpdateTourPricing", mock.Anything, mock.Anything, mock.Anything)
}

func TestList(t *testing.T) {
	s, _, store, _ := newTestService()
	store.On("ListTours", mock.Anything).Return([]*domain.Tour{tour()}, nil)

	resp, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, resp.Tours, 1)
}
