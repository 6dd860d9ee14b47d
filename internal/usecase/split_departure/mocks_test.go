package split_departure

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/internal/engine"
	"github.com/m04kA/SMC-TourBookingService/internal/integrations/reservationstore"
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

type mockStore struct {
	mock.Mock
}

func (m *mockStore) SplitDeparture(ctx context.Context, departureID, bookingID int64) (*reservationstore.SplitResult, error) {
	args := m.Called(ctx, departureID, bookingID)
	if r := args.Get(0); r != nil {
		return r.(*reservationstore.SplitResult), args.Error(1)
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
