package get_departure

import (
	"context"

	"github.com/m04kA/SMC-TourBookingService/internal/service/departures/models"
)

type DepartureService interface {
	GetByID(ctx context.Context, id int64) (*models.DepartureDetailsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
