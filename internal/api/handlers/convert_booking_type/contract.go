package convert_booking_type

import (
	"context"

	convertBookingType "github.com/m04kA/SMC-TourBookingService/internal/usecase/convert_booking_type"
)

type ConvertBookingTypeUseCase interface {
	Execute(ctx context.Context, req *convertBookingType.Request) (*convertBookingType.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
