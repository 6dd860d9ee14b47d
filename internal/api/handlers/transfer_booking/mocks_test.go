package transfer_booking

import (
	"context"

	"github.com/stretchr/testify/mock"

	transferBooking "github.com/m04kA/SMC-TourBookingService/internal/usecase/transfer_booking"
)

type MockTransferBookingUseCase struct {
	mock.Mock
}

func (m *MockTransferBookingUseCase) Execute(ctx context.Context, req *transferBooking.Request) (*transferBooking.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transferBooking.Response), args.Error(1)
}
