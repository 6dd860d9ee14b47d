package change_departure

import (
	"context"

	"github.com/stretchr/testify/mock"

	changeDeparture "github.com/m04kA/SMC-TourBookingService/internal/usecase/change_departure"
)

type MockChangeDepartureUseCase struct {
	mock.Mock
}

func (m *MockChangeDepartureUseCase) Execute(ctx context.Context, req *changeDeparture.Request) (*changeDeparture.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*changeDeparture.Response), args.Error(1)
}
