package get_availability

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
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

func (m *mockReader) Departures(ctx context.Context, tourID int64, date time.Time) ([]*domain.Departure, error) {
	args := m.Called(ctx, tourID, date)
	if d := args.Get(0); d != nil {
		return d.([]*domain.Departure), args.Error(1)
	}
	return nil, args.Error(1)
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }
