package list_unknown_commands

import (
	"context"

	"github.com/m04kA/SMC-TourBookingService/internal/infra/storage/journal"
)

type JournalReader interface {
	ListUnknown(ctx context.Context, limit uint64) ([]*journal.Entry, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
