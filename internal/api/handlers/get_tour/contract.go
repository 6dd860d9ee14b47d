package get_tour

import (
	"context"

	"github.com/m04kA/SMC-TourBookingService/internal/service/tours/models"
)

type TourService interface {
	GetByID(ctx context.Context, id int64) (*models.TourResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
