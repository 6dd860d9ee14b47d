package bookings

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

func (m *mockStore) state(args mock.Arguments) (*reservationstore.BookingState, error) {
	if s := args.Get(0); s != nil {
		return s.(*reservationstore.BookingState), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStore) UpdateBookingStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) (*reservationstore.BookingState, error) {
	return m.state(m.Called(ctx, bookingID, status))
}

func (m *mockStore) UpdateBookingPax(ctx context.Context, bookingID int64, pax int) (*reservationstore.BookingState, error) {
	return m.state(m.Called(ctx, bookingID, pax))
}

func (m *mockStore) UpdateBookingDetails(ctx context.Context, bookingID int64, customer domain.Customer) (*reservationstore.BookingState, error) {
	return m.state(m.Called(ctx, bookingID, customer))
}

func (m *mockStore) ApplyDiscount(ctx context.Context, bookingID int64, cmd domain.PriceCommand) (*reservationstore.BookingState, error) {
	return m.state(m.Called(ctx, bookingID, cmd))
}

type recordingDispatcher struct {
	commands []engine.Command
}

func (d *recordingDispatcher) Execute(ctx context.Context, cmd engine.Command, fn engine.CommandFunc) error {
	d.commands = append(d.commands, cmd)
	_, err := fn(ctx)
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
