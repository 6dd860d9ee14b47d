package delete_departure

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockDepartureService struct {
	mock.Mock
}

func (m *MockDepartureService) Delete(ctx context.Context, id int64, confirmed bool) error {
	args := m.Called(ctx, id, confirmed)
	return args.Error(0)
}
