package split_departure

import (
	"context"

	splitDeparture "github.com/m04kA/SMC-TourBookingService/internal/usecase/split_departure"
)

type SplitDepartureUseCase interface {
	Execute(ctx context.Context, req *splitDeparture.Request) (*splitDeparture.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
