package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusPaid      BookingStatus = "paid"
	StatusCancelled BookingStatus = "cancelled"
)

// IsValid проверяет, что статус известен
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPaid, StatusCancelled:
		return true
	}
	return false
}

// Customer данные клиента бронирования
type Customer struct {
	Name       string
	Email      string
	Phone      string
	DocumentID string
	Note       *string
}

// Booking represents a customer's reservation of pax seats inside one departure
type Booking struct {
	ID          int64
	DepartureID int64
	Customer    Customer
	Pax         int

	// Type проекция Departure.Type, пересчитывается при каждом чтении через ProjectType
	Type DepartureType
	// TypeAtCreation тип на момент создания, не меняется
	TypeAtCreation DepartureType

	Currency       Currency
	OriginalPrice  int64
	FinalPrice     int64
	DiscountReason *string
	Status         BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking counts towards the departure occupancy
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// HasPriceAdjustment returns true if a discount or price override was applied
func (b *Booking) HasPriceAdjustment() bool {
	return b.DiscountReason != nil && *b.DiscountReason != ""
}

// EnsureMutable возвращает ErrTerminalState для отмененного бронирования
func (b *Booking) EnsureMutable() error {
	if b.IsCancelled() {
		return ErrTerminalState
	}
	return nil
}

// ProjectType выставляет Type по типу выезда-владельца
func (b *Booking) ProjectType(d *Departure) {
	if d != nil && d.ID == b.DepartureID {
		b.Type = d.Type
	}
}

// ProjectTypes выставляет Type всем бронированиям выезда
func ProjectTypes(d *Departure, bookings []*Booking) {
	for _, b := range bookings {
		if b != nil {
			b.ProjectType(d)
		}
	}
}
