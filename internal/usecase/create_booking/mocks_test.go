package create_booking

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

type mockStore struct {
	mock.Mock
}

func (m *mockStore) CreateBooking(ctx context.Context, req reservationstore.CreateBookingRequest) (*reservationstore.BookingState, error) {
	args := m.Called(ctx, req)
	if s := args.Get(0); s != nil {
		return s.(*reservationstore.BookingState), args.Error(1)
	}
	return nil, args.Error(1)
}

// recordingDispatcher выполняет команду сразу и запоминает ее
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

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }
