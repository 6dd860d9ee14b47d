package get_availability

import (
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	getAvailability "github.com/m04kA/SMC-TourBookingService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP модель ответа
type AvailabilityResponse struct {
	TourID            int64         `json:"tourId"`
	Pax               int           `json:"pax"`
	Currency          string        `json:"currency"`
	NewDeparturePrice int64         `json:"newDeparturePrice"`
	Days              []DayResponse `json:"days"`
}

// DayResponse доступность на одну дату
type DayResponse struct {
	Date                  string                    `json:"date"`
	NewDepartureAvailable bool                      `json:"newDepartureAvailable"`
	Departures            []DepartureOptionResponse `json:"departures"`
}

// DepartureOptionResponse существующий выезд на дату
type DepartureOptionResponse struct {
	DepartureID int64  `json:"departureId"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	MaxPax      int    `json:"maxPax"`
	Available   int    `json:"available"`
	Joinable    bool   `json:"joinable"`
	Price       *int64 `json:"price,omitempty"`
}

// ToUseCaseRequest разбирает query параметры в запрос use case
// to по умолчанию равен from
func ToUseCaseRequest(tourID int64, from, to, pax, currency string) (*getAvailability.Request, error) {
	fromDate, err := time.Parse(domain.DateFormat, from)
	if err != nil {
		return nil, err
	}

	toDate := fromDate
	if to != "" {
		toDate, err = time.Parse(domain.DateFormat, to)
		if err != nil {
			return nil, err
		}
	}

	paxCount, err := strconv.Atoi(pax)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{
		TourID:   tourID,
		From:     fromDate,
		To:       toDate,
		Pax:      paxCount,
		Currency: domain.Currency(strings.ToUpper(currency)),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, day := range resp.Days {
		options := make([]DepartureOptionResponse, 0, len(day.Departures))
		for _, o := range day.Departures {
			options = append(options, DepartureOptionResponse{
				DepartureID: o.DepartureID,
				Type:        string(o.Type),
				Status:      string(o.Status),
				MaxPax:      o.MaxPax,
				Available:   o.Available,
				Joinable:    o.Joinable,
				Price:       o.Price,
			})
		}
		days = append(days, DayResponse{
			Date:                  day.Date.Format(domain.DateFormat),
			NewDepartureAvailable: day.NewDepartureAvailable,
			Departures:            options,
		})
	}

	return &AvailabilityResponse{
		TourID:            resp.TourID,
		Pax:               resp.Pax,
		Currency:          string(resp.Currency),
		NewDeparturePrice: resp.NewDeparturePrice,
		Days:              days,
	}
}
