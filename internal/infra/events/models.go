package events

import "time"

// ReservationEvent событие об успешной изменяющей команде
type ReservationEvent struct {
	ID         string    `json:"id"`
	Command    string    `json:"command"`
	TargetKind string    `json:"targetKind"`
	TargetID   int64     `json:"targetId"`
	RequestID  string    `json:"requestId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Key ключ партиционирования: все события одной сущности попадают в одну партицию
func (e ReservationEvent) Key() string {
	return e.TargetKind + ":" + itoa(e.TargetID)
}
