package models

import (
	"time"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	bookingModels "github.com/m04kA/SMC-TourBookingService/internal/service/bookings/models"
)

// PricingTierResponse тариф снимка цен выезда
type PricingTierResponse struct {
	MinPax   int   `json:"minPax"`
	MaxPax   int   `json:"maxPax"`
	PriceCOP int64 `json:"priceCOP"`
	PriceUSD int64 `json:"priceUSD"`
}

// DepartureResponse ответ с данными выезда
type DepartureResponse struct {
	ID              int64                 `json:"id"`
	TourID          int64                 `json:"tourId"`
	Date            string                `json:"date"` // "2026-11-20"
	Type            string                `json:"type"`
	Status          string                `json:"status"`
	MaxPax          int                   `json:"maxPax"`
	CurrentPax      int                   `json:"currentPax"`
	AvailableSpace  int                   `json:"availableSpace"`
	PricingSnapshot []PricingTierResponse `json:"pricingSnapshot,omitempty"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt"`
}

// DepartureDetailsResponse выезд со всеми бронированиями
type DepartureDetailsResponse struct {
	Departure DepartureResponse               `json:"departure"`
	Bookings  []bookingModels.BookingResponse `json:"bookings"`
}

// DepartureListResponse ответ со списком выездов тура на дату
type DepartureListResponse struct {
	Departures []DepartureResponse `json:"departures"`
}

// FromDomainDeparture конвертирует domain модель в DTO
func FromDomainDeparture(d *domain.Departure) *DepartureResponse {
	if d == nil {
		return nil
	}

	available := domain.AvailableSpace(d, 0)
	if available < 0 {
		available = 0
	}

	resp := &DepartureResponse{
		ID:             d.ID,
		TourID:         d.TourID,
		Date:           d.Date.Format(domain.DateFormat),
		Type:           string(d.Type),
		Status:         string(d.Status),
		MaxPax:         d.MaxPax,
		CurrentPax:     d.CurrentPax,
		AvailableSpace: available,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}

	for _, tier := range d.PricingSnapshot {
		resp.PricingSnapshot = append(resp.PricingSnapshot, PricingTierResponse{
			MinPax:   tier.MinPax,
			MaxPax:   tier.MaxPax,
			PriceCOP: tier.PriceCOP,
			PriceUSD: tier.PriceUSD,
		})
	}

	return resp
}

// FromDomainDepartureList конвертирует список выездов в DTO
func FromDomainDepartureList(departures []*domain.Departure) *DepartureListResponse {
	resp := &DepartureListResponse{
		Departures: make([]DepartureResponse, 0, len(departures)),
	}
	for _, d := range departures {
		if depResp := FromDomainDeparture(d); depResp != nil {
			resp.Departures = append(resp.Departures, *depResp)
		}
	}
	return resp
}
