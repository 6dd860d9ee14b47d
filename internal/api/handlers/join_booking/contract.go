package join_booking

import (
	"context"

	joinBooking "github.com/m04kA/SMC-TourBookingService/internal/usecase/join_booking"
)

type JoinBookingUseCase interface {
	Execute(ctx context.Context, req *joinBooking.Request) (*joinBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
