package cache

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
)

type mockSource struct {
	mock.Mock
}

func (m *mockSource) GetTour(ctx context.Context, tourID int64) (*domain.Tour, error) {
	args := m.Called(ctx, tourID)
	if t := args.Get(0); t != nil {
		return t.(*domain.Tour), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSource) GetDeparture(ctx context.Context, departureID int64) (*domain.Departure, error) {
	args := m.Called(ctx, departureID)
	if d := args.Get(0); d != nil {
		return d.(*domain.Departure), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSource) ListDepartures(ctx context.Context, tourID int64, date time.Time) ([]*domain.Departure, error) {
	args := m.Called(ctx, tourID, date)
	if d := args.Get(0); d != nil {
		return d.([]*domain.Departure), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSource) GetBooking(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID)
	if b := args.Get(0); b != nil {
		return b.(*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSource) ListDepartureBookings(ctx context.Context, departureID int64) ([]*domain.Booking, error) {
	args := m.Called(ctx, departureID)
	if b := args.Get(0); b != nil {
		return b.([]*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, ErrStore
}

func (failingStore) Set(context.Context, string, []byte, time.Duration) error {
	return ErrStore
}

func (failingStore) Delete(context.Context, ...string) error {
	return ErrStore
}
