package departures

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/internal/engine"
)

type mockReader struct {
	mock.Mock
}

func (m *mockReader) Departure(ctx context.Context, departureID int64) (*domain.Departure, error) {
	args := m.Called(ctx, departureID)
	if d := args.Get(0); d != nil {
		return d.(*domain.Departure), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReader) DepartureBookings(ctx context.Context, departure *domain.Departure) ([]*domain.Booking, error) {
	args := m.Called(ctx, departure)
	if b := args.Get(0); b != nil {
		return b.([]*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReader) Departures(ctx context.Context, tourID int64, date time.Time) ([]*domain.Departure, error) {
	args := m.Called(ctx, tourID, date)
	if d := args.Get(0); d != nil {
		return d.([]*domain.Departure), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockStore struct {
	mock.Mock
}

func (m *mockStore) DeleteDeparture(ctx context.Context, departureID int64) error {
	return m.Called(ctx, departureID).Error(0)
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
