package list_departures

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TourBookingService/internal/service/departures/models"
)

type DepartureService interface {
	List(ctx context.Context, tourID int64, date time.Time) (*models.DepartureListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
