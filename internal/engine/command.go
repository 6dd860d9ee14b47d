package engine

import "fmt"

// Имена изменяющих команд
const (
	CommandCreateBooking        = "create_booking"
	CommandJoinBooking          = "join_booking"
	CommandUpdateBookingStatus  = "update_booking_status"
	CommandUpdateBookingPax     = "update_booking_pax"
	CommandUpdateBookingDetails = "update_booking_details"
	CommandApplyDiscount        = "apply_discount"
	CommandMoveBooking          = "move_booking"
	CommandTransferBooking      = "transfer_booking"
	CommandConvertBookingType   = "convert_booking_type"
	CommandUpdateDepartureDate  = "update_departure_date"
	CommandUpdateDepartureTour  = "update_departure_tour"
	CommandSplitDeparture       = "split_departure"
	CommandDeleteDeparture      = "delete_departure"
	CommandUpdateTourPricing    = "update_tour_pricing"
)

// Виды целевых сущностей
const (
	TargetTour      = "tour"
	TargetDeparture = "departure"
	TargetBooking   = "booking"
)

// Исходы команды для журнала и метрик
const (
	OutcomeSucceeded = "succeeded"
	OutcomeFailed    = "failed"
	OutcomeUnknown   = "unknown"
	OutcomeInFlight  = "in_flight"
)

// Command изменяющая команда к хранилищу бронирований
type Command struct {
	Name       string
	TargetKind string
	TargetID   int64

	// Payload параметры команды для журнала
	Payload interface{}

	// Invalidates ключи кэша, известные до выполнения команды
	// Сбрасываются при любом исходе: отказ хранилища тоже означает, что кэш мог устареть
	Invalidates []string
}

// LockKey ключ блокировки "одна команда на сущность"
func (c Command) LockKey() string {
	return fmt.Sprintf("inflight:%s:%d", c.TargetKind, c.TargetID)
}
