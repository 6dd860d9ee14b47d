package domain

import "time"

// DepartureType тип выезда: частный (одна группа) или общий (несколько клиентов)
type DepartureType string

const (
	DepartureTypePrivate DepartureType = "private"
	DepartureTypePublic  DepartureType = "public"
)

// IsValid проверяет, что тип выезда допустим
func (t DepartureType) IsValid() bool {
	return t == DepartureTypePrivate || t == DepartureTypePublic
}

// DepartureStatus статус выезда
type DepartureStatus string

const (
	DepartureStatusOpen      DepartureStatus = "open"
	DepartureStatusClosed    DepartureStatus = "closed"
	DepartureStatusCompleted DepartureStatus = "completed"
	DepartureStatusCancelled DepartureStatus = "cancelled"
)

// Departure запланированный выезд тура на дату
type Departure struct {
	ID     int64
	TourID int64
	Date   time.Time
	Type   DepartureType
	Status DepartureStatus
	MaxPax int

	// CurrentPax производное значение: сумма pax активных бронирований
	// Клиент никогда не задает его напрямую, только пересчитывает через RecomputeCurrentPax
	CurrentPax int

	// PricingSnapshot копия тарифов тура на момент создания выезда
	PricingSnapshot []PricingTier

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOpen returns true if the departure accepts new bookings and pax increases
func (d *Departure) IsOpen() bool {
	return d.Status == DepartureStatusOpen
}

// IsPublic returns true if the departure may hold bookings of several customers
func (d *Departure) IsPublic() bool {
	return d.Type == DepartureTypePublic
}

// IsEmpty returns true if no active booking occupies the departure
func (d *Departure) IsEmpty() bool {
	return d.CurrentPax == 0
}

// RecomputeCurrentPax пересчитывает CurrentPax по бронированиям этого выезда
// Отмененные бронирования и бронирования других выездов не учитываются
func (d *Departure) RecomputeCurrentPax(bookings []*Booking) int {
	total := 0
	for _, b := range ActiveBookingsOf(d.ID, bookings) {
		total += b.Pax
	}
	d.CurrentPax = total
	return total
}

// ActiveBookingsOf возвращает активные бронирования указанного выезда
func ActiveBookingsOf(departureID int64, bookings []*Booking) []*Booking {
	result := make([]*Booking, 0, len(bookings))
	for _, b := range bookings {
		if b == nil || b.DepartureID != departureID || !b.IsActive() {
			continue
		}
		result = append(result, b)
	}
	return result
}
