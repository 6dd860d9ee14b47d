package journal

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Status статус записи журнала команд
type Status string

const (
	StatusPending   Status = "pending"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
	// StatusUnknown команда отправлена, но ответ хранилища не получен
	StatusUnknown Status = "unknown"
)

// Entry запись об изменяющей команде к хранилищу бронирований
type Entry struct {
	ID         uuid.UUID
	Command    string
	TargetKind string
	TargetID   int64
	Payload    json.RawMessage
	Status     Status
	Error      *string
	CreatedAt  time.Time
	FinishedAt *time.Time
}
