package models

import (
	"time"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
)

// Request модели

// CustomerRequest данные клиента в запросе
type CustomerRequest struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	DocumentID string  `json:"documentId,omitempty"`
	Note       *string `json:"note,omitempty"`
}

// ToDomain конвертирует данные клиента в domain модель
func (c CustomerRequest) ToDomain() domain.Customer {
	return domain.Customer{
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		DocumentID: c.DocumentID,
		Note:       c.Note,
	}
}

// UpdateStatusRequest запрос на смену статуса бронирования
// Confirmed обязателен для отмены
type UpdateStatusRequest struct {
	Status    string `json:"status"`
	Confirmed bool   `json:"confirmed"`
}

// UpdatePaxRequest запрос на изменение количества человек
type UpdatePaxRequest struct {
	Pax int `json:"pax"`
}

// UpdateDetailsRequest запрос на изменение данных клиента
type UpdateDetailsRequest struct {
	Customer CustomerRequest `json:"customer"`
}

// ApplyDiscountRequest скидка или переопределение итоговой цены
type ApplyDiscountRequest struct {
	DiscountAmount *int64 `json:"discountAmount,omitempty"`
	NewFinalPrice  *int64 `json:"newFinalPrice,omitempty"`
	Reason         string `json:"reason"`
}

// ToDomain конвертирует запрос в команду цены
func (r ApplyDiscountRequest) ToDomain() domain.PriceCommand {
	return domain.PriceCommand{
		DiscountAmount: r.DiscountAmount,
		NewFinalPrice:  r.NewFinalPrice,
		Reason:         r.Reason,
	}
}

// Response модели

// CustomerResponse данные клиента
type CustomerResponse struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	DocumentID string  `json:"documentId,omitempty"`
	Note       *string `json:"note,omitempty"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID             int64            `json:"id"`
	DepartureID    int64            `json:"departureId"`
	Customer       CustomerResponse `json:"customer"`
	Pax            int              `json:"pax"`
	Type           string           `json:"type"`           // Проекция типа выезда
	TypeAtCreation string           `json:"typeAtCreation"` // Тип на момент создания
	Currency       string           `json:"currency"`
	OriginalPrice  int64            `json:"originalPrice"`
	FinalPrice     int64            `json:"finalPrice"`
	DiscountReason *string          `json:"discountReason,omitempty"`
	Status         string           `json:"status"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// DepartureSummary краткие данные выезда-владельца
type DepartureSummary struct {
	ID         int64  `json:"id"`
	TourID     int64  `json:"tourId"`
	Date       string `json:"date"` // "2026-11-20"
	Type       string `json:"type"`
	Status     string `json:"status"`
	MaxPax     int    `json:"maxPax"`
	CurrentPax int    `json:"currentPax"`
}

// BookingDetailsResponse бронирование с выездом и признаком прямого редактирования
type BookingDetailsResponse struct {
	Booking   BookingResponse  `json:"booking"`
	Departure DepartureSummary `json:"departure"`

	// Editable false для бронирования в общем выезде с другими клиентами:
	// смена даты или тура доступна только через split или transfer
	Editable        bool `json:"editable"`
	RelatedBookings int  `json:"relatedBookings"`
	AvailableSpace  int  `json:"availableSpace"`
}

// BookingStateResponse авторитетное состояние после изменяющей команды
type BookingStateResponse struct {
	Booking   BookingResponse  `json:"booking"`
	Departure DepartureSummary `json:"departure"`

	ExpectedPrice *int64 `json:"expectedPrice,omitempty"`
	PriceDrift    bool   `json:"priceDrift,omitempty"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:          b.ID,
		DepartureID: b.DepartureID,
		Customer: CustomerResponse{
			Name:       b.Customer.Name,
			Email:      b.Customer.Email,
			Phone:      b.Customer.Phone,
			DocumentID: b.Customer.DocumentID,
			Note:       b.Customer.Note,
		},
		Pax:            b.Pax,
		Type:           string(b.Type),
		TypeAtCreation: string(b.TypeAtCreation),
		Currency:       string(b.Currency),
		OriginalPrice:  b.OriginalPrice,
		FinalPrice:     b.FinalPrice,
		DiscountReason: b.DiscountReason,
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) []BookingResponse {
	resp := make([]BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp = append(resp, *bookingResp)
		}
	}
	return resp
}

// FromDomainDeparture конвертирует выезд в краткий DTO
func FromDomainDeparture(d *domain.Departure) DepartureSummary {
	if d == nil {
		return DepartureSummary{}
	}

	return DepartureSummary{
		ID:         d.ID,
		TourID:     d.TourID,
		Date:       d.Date.Format(domain.DateFormat),
		Type:       string(d.Type),
		Status:     string(d.Status),
		MaxPax:     d.MaxPax,
		CurrentPax: d.CurrentPax,
	}
}

// FromDomainState конвертирует состояние после команды в DTO
func FromDomainState(b *domain.Booking, d *domain.Departure) *BookingStateResponse {
	return &BookingStateResponse{
		Booking:   *FromDomainBooking(b),
		Departure: FromDomainDeparture(d),
	}
}
