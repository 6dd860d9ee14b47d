package create_booking

import (
	"context"

	"github.com/stretchr/testify/mock"

	createBooking "github.com/m04kA/SMC-TourBookingService/internal/usecase/create_booking"
)

type MockCreateBookingUseCase struct {
	mock.Mock
}

func (m *MockCreateBookingUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*createBooking.Response), args.Error(1)
}
