package tours

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/internal/engine"
)

type mockReader struct {
	mock.Mock
}

func (m *mockReader) Tour(ctx context.Context, tourID int64) (*domain.Tour, error) {
	args := m.Called(ctx, tourID)
	if t := args.Get(0); t != nil {
		return t.(*domain.Tour), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockStore struct {
	mock.Mock
}

func (m *mockStore) ListTours(ctx context.Context) ([]*domain.Tour, error) {
	args := m.Called(ctx)
	if t := args.Get(0); t != nil {
		return t.([]*domain.Tour), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStore) UpdateTourPricing(ctx context.Context, tourID int64, tiers []domain.PricingTier) (*domain.Tour, error) {
	args := m.Called(ctx, tourID, tiers)
	if t := args.Get(0); t != nil {
		return t.(*domain.Tour), args.Error(1)
	}
	return nil, args.Error(1)
}

type recordingDispatcher struct {
	commands []engine.Command
	keys     []string
}

func (d *recordingDispatcher) Execute(ctx context.Context, cmd engine.Command, fn engine.CommandFunc) error {
	d.commands = append(d.commands, cmd)
	keys, err := fn(ctx)
	d.keys = keys
	return err
}
