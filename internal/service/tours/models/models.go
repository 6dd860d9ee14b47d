package models

import (
	"time"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
)

// PricingTier тариф для диапазона количества человек (границы включительно)
type PricingTier struct {
	MinPax   int   `json:"minPax"`
	MaxPax   int   `json:"maxPax"`
	PriceCOP int64 `json:"priceCOP"`
	PriceUSD int64 `json:"priceUSD"` // в центах
}

// UpdatePricingRequest запрос на замену таблицы цен тура
type UpdatePricingRequest struct {
	PricingTiers []PricingTier `json:"pricingTiers"`
}

// ToDomain конвертирует тарифы в domain модели
func (r *UpdatePricingRequest) ToDomain() []domain.PricingTier {
	tiers := make([]domain.PricingTier, 0, len(r.PricingTiers))
	for _, t := range r.PricingTiers {
		tiers = append(tiers, domain.PricingTier{
			MinPax:   t.MinPax,
			MaxPax:   t.MaxPax,
			PriceCOP: t.PriceCOP,
			PriceUSD: t.PriceUSD,
		})
	}
	return tiers
}

// LocalizedText текст на испанском и английском
type LocalizedText struct {
	ES string `json:"es"`
	EN string `json:"en"`
}

// TourResponse ответ с данными тура
type TourResponse struct {
	ID            int64         `json:"id"`
	Name          LocalizedText `json:"name"`
	Description   LocalizedText `json:"description"`
	PricingTiers  []PricingTier `json:"pricingTiers"`
	MaxCoveredPax int           `json:"maxCoveredPax"`
	Active        bool          `json:"active"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// TourListResponse ответ со списком туров
type TourListResponse struct {
	Tours []TourResponse `json:"tours"`
}

// QuoteResponse предварительный расчет цены
type QuoteResponse struct {
	TourID    int64       `json:"tourId"`
	Pax       int         `json:"pax"`
	Currency  string      `json:"currency"`
	Tier      PricingTier `json:"tier"`
	UnitPrice int64       `json:"unitPrice"`
	Total     int64       `json:"total"`
}

// FromDomainTier конвертирует тариф в DTO
func FromDomainTier(t domain.PricingTier) PricingTier {
	return PricingTier{
		MinPax:   t.MinPax,
		MaxPax:   t.MaxPax,
		PriceCOP: t.PriceCOP,
		PriceUSD: t.PriceUSD,
	}
}

// FromDomainTour конвертирует domain модель в DTO
func FromDomainTour(t *domain.Tour) *TourResponse {
	if t == nil {
		return nil
	}

	resp := &TourResponse{
		ID:            t.ID,
		Name:          LocalizedText{ES: t.Name.ES, EN: t.Name.EN},
		Description:   LocalizedText{ES: t.Description.ES, EN: t.Description.EN},
		PricingTiers:  make([]PricingTier, 0, len(t.PricingTiers)),
		MaxCoveredPax: t.MaxCoveredPax(),
		Active:        t.Active,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
	for _, tier := range t.PricingTiers {
		resp.PricingTiers = append(resp.PricingTiers, FromDomainTier(tier))
	}

	return resp
}

// FromDomainTourList конвертирует список туров в DTO
func FromDomainTourList(tours []*domain.Tour) *TourListResponse {
	resp := &TourListResponse{Tours: make([]TourResponse, 0, len(tours))}
	for _, t := range tours {
		if tourResp := FromDomainTour(t); tourResp != nil {
			resp.Tours = append(resp.Tours, *tourResp)
		}
	}
	return resp
}
