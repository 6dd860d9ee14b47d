package change_departure

import (
	"context"

	changeDeparture "github.com/m04kA/SMC-TourBookingService/internal/usecase/change_departure"
)

type ChangeDepartureUseCase interface {
	Execute(ctx context.Context, req *changeDeparture.Request) (*changeDeparture.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
