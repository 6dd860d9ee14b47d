package get_availability

import (
	"context"

	"github.com/stretchr/testify/mock"

	getAvailability "github.com/m04kA/SMC-TourBookingService/internal/usecase/get_availability"
)

type MockGetAvailabilityUseCase struct {
	mock.Mock
}

func (m *MockGetAvailabilityUseCase) Execute(ctx context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*getAvailability.Response), args.Error(1)
}
