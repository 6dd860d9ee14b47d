package engine

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-TourBookingService/internal/infra/events"
	"github.com/m04kA/SMC-TourBookingService/internal/infra/storage/journal"
)

type mockJournal struct {
	mock.Mock
}

func (m *mockJournal) Create(ctx context.Context, entry *journal.Entry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *mockJournal) Finish(ctx context.Context, id uuid.UUID, status journal.Status, errMsg *string, finishedAt time.Time) error {
	return m.Called(ctx, id, status, errMsg, finishedAt).Error(0)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, event events.ReservationEvent) error {
	return m.Called(ctx, event).Error(0)
}

type mockInvalidator struct {
	mock.Mock
}

func (m *mockInvalidator) Invalidate(ctx context.Context, keys ...string) error {
	return m.Called(ctx, keys).Error(0)
}
