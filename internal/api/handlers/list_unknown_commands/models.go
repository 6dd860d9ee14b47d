package list_unknown_commands

import (
	"encoding/json"
	"time"

	"github.com/m04kA/SMC-TourBookingService/internal/infra/storage/journal"
)

// CommandResponse запись журнала команд
type CommandResponse struct {
	ID         string          `json:"id"`
	Command    string          `json:"command"`
	TargetKind string          `json:"targetKind"`
	TargetID   int64           `json:"targetId"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	Status     string          `json:"status"`
	Error      *string         `json:"error,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	FinishedAt *time.Time      `json:"finishedAt,omitempty"`
}

// CommandListResponse список команд
type CommandListResponse struct {
	Commands []CommandResponse `json:"commands"`
}

// FromJournalEntries конвертирует записи журнала в HTTP response
func FromJournalEntries(entries []*journal.Entry) *CommandListResponse {
	resp := &CommandListResponse{Commands: make([]CommandResponse, 0, len(entries))}
	for _, e := range entries {
		resp.Commands = append(resp.Commands, CommandResponse{
			ID:         e.ID.String(),
			Command:    e.Command,
			TargetKind: e.TargetKind,
			TargetID:   e.TargetID,
			Payload:    e.Payload,
			Status:     string(e.Status),
			Error:      e.Error,
			CreatedAt:  e.CreatedAt,
			FinishedAt: e.FinishedAt,
		})
	}
	return resp
}
