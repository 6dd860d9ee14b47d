package update_booking_status

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-TourBookingService/internal/service/bookings/models"
)

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.BookingStateResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingStateResponse), args.Error(1)
}
