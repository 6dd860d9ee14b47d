package join_booking

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

func (m *mockStore) JoinBooking(ctx context.Context, departureID int64, req reservationstore.JoinBookingRequest) (*reservationstore.BookingState, error) {
	args := m.Called(ctx, departureID, req)
	if s := args.Get(0); s != nil {
		return s.(*reservationstore.BookingState), args.Error(1)
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
	capacityRejections int
	priceDrifts        int
}

func (m *stubMetrics) IncCapacityRejection(string) {
	m.capacityRejections++
}

func (m *stubMetrics) IncPriceDrift(string) {
	m.priceDrifts++
}
