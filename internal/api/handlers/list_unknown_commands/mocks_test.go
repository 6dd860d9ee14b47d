package list_unknown_commands

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-TourBookingService/internal/infra/storage/journal"
)

type MockJournalReader struct {
	mock.Mock
}

func (m *MockJournalReader) ListUnknown(ctx context.Context, limit uint64) ([]*journal.Entry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*journal.Entry), args.Error(1)
}
