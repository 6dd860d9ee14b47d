package transfer_booking

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

func (m *mockReader) Booking(ctx context.Context, bookingID int64) (*domain.Booking, *domain.Departure, error) {
	args := m.Called(ctx, bookingID)
	var booking *domain.Booking
	if b := args.Get(0); b != nil {
		booking = b.(*domain.Booking)
	}
	var departure *domain.Departure
	if d := args.Get(1); d != nil {
		departure = d.(*domain.Departure)
	}
	return booking, departure, args.Error(2)
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

func (m *mockStore) TransferBooking(ctx context.Context, bookingID, targetDepartureID int64) (*reservationstore.TransferResult, error) {
	args := m.Called(ctx, bookingID, targetDepartureID)
	if r := args.Get(0); r != nil {
		return r.(*reservationstore.TransferResult), args.Error(1)
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
}

func (m *stubMetrics) IncCapacityRejection(string) {
	m.capacityRejections++
}
