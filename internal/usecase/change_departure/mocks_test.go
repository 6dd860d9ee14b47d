package change_departure

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/internal/engine"
	"github.com/m04kA/SMC-TourBookingService/internal/integrations/reservationstore"
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

func (m *mockStore) UpdateDepartureDate(ctx context.Context, departureID int64, date time.Time) (*reservationstore.DepartureState, error) {
	args := m.Called(ctx, departureID, date)
	if s := args.Get(0); s != nil {
		return s.(*reservationstore.DepartureState), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStore) UpdateDepartureTour(ctx context.Context, departureID, tourID int64) (*reservationstore.DepartureState, error) {
	args := m.Called(ctx, departureID, tourID)
	if s := args.Get(0); s != nil {
		return s.(*reservationstore.DepartureState), args.Error(1)
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

type stubMetrics struct {
	priceDrifts int
}

func (m *stubMetrics) IncPriceDrift(string) {
	m.priceDrifts++
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }
