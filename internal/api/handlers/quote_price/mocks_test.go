package quote_price

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/internal/service/tours/models"
)

type MockTourService struct {
	mock.Mock
}

func (m *MockTourService) Quote(ctx context.Context, id int64, pax int, currency domain.Currency) (*models.QuoteResponse, error) {
	args := m.Called(ctx, id, pax, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.QuoteResponse), args.Error(1)
}
