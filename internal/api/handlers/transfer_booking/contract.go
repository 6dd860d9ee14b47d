package transfer_booking

import (
	"context"

	transferBooking "github.com/m04kA/SMC-TourBookingService/internal/usecase/transfer_booking"
)

type TransferBookingUseCase interface {
	Execute(ctx context.Context, req *transferBooking.Request) (*transferBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
