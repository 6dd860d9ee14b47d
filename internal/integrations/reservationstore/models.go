package reservationstore

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
)

// ErrorResponse модель ошибки хранилища
type ErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Available *int   `json:"available,omitempty"`
	Requested int    `json:"requested,omitempty"`
	Pax       int    `json:"pax,omitempty"`
}

// Коды ошибок хранилища
const (
	CodeCapacityExceeded    = "capacity_exceeded"
	CodeStaleState          = "stale_state"
	CodeConversionBlocked   = "conversion_blocked"
	CodeTerminalState       = "terminal_state"
	CodeTierNotFound        = "tier_not_found"
	CodeInvalidPriceCommand = "invalid_price_command"
	CodeNotFound            = "not_found"
)

// Tour модель тура из хранилища
type Tour struct {
	ID           int64                `json:"id"`
	Name         domain.LocalizedText `json:"name"`
	Description  domain.LocalizedText `json:"description"`
	PricingTiers []domain.PricingTier `json:"pricingTiers"`
	Active       bool                 `json:"active"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
}

// Departure модель выезда из хранилища
type Departure struct {
	ID              int64                `json:"id"`
	TourID          int64                `json:"tourId"`
	Date            string               `json:"date"` // YYYY-MM-DD
	Type            string               `json:"type"`
	Status          string               `json:"status"`
	MaxPax          int                  `json:"maxPax"`
	CurrentPax      int                  `json:"currentPax"`
	PricingSnapshot []domain.PricingTier `json:"pricingSnapshot"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

// Customer данные клиента
type Customer struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	DocumentID string  `json:"documentId,omitempty"`
	Note       *string `json:"note,omitempty"`
}

// Booking модель бронирования из хранилища
type Booking struct {
	ID             int64     `json:"id"`
	DepartureID    int64     `json:"departureId"`
	Customer       Customer  `json:"customer"`
	Pax            int       `json:"pax"`
	Type           string    `json:"type"`
	TypeAtCreation string    `json:"typeAtCreation"`
	Currency       string    `json:"currency"`
	OriginalPrice  int64     `json:"originalPrice"`
	FinalPrice     int64     `json:"finalPrice"`
	DiscountReason *string   `json:"discountReason,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type bookingStateResponse struct {
	Booking   Booking   `json:"booking"`
	Departure Departure `json:"departure"`
}

type moveResponse struct {
	Booking           Booking   `json:"booking"`
	Departure         Departure `json:"departure"`
	PreviousDeparture Departure `json:"previousDeparture"`
}

type transferResponse struct {
	Booking Booking   `json:"booking"`
	Source  Departure `json:"source"`
	Target  Departure `json:"target"`
}

type departureStateResponse struct {
	Departure Departure `json:"departure"`
	Bookings  []Booking `json:"bookings"`
}

type splitResponse struct {
	Source  Departure `json:"source"`
	Created Departure `json:"created"`
	Booking Booking   `json:"booking"`
}

// CreateBookingRequest создание бронирования с новым выездом при необходимости
type CreateBookingRequest struct {
	TourID   int64    `json:"tourId"`
	Date     string   `json:"date"`
	Type     string   `json:"type"`
	MaxPax   int      `json:"maxPax"`
	Customer Customer `json:"customer"`
	Pax      int      `json:"pax"`
	Currency string   `json:"currency"`
}

// JoinBookingRequest добавление бронирования в существующий выезд
type JoinBookingRequest struct {
	Customer Customer `json:"customer"`
	Pax      int      `json:"pax"`
	Currency string   `json:"currency"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type updatePaxRequest struct {
	Pax int `json:"pax"`
}

type applyDiscountRequest struct {
	DiscountAmount *int64 `json:"discountAmount,omitempty"`
	NewFinalPrice  *int64 `json:"newFinalPrice,omitempty"`
	Reason         string `json:"reason"`
}

type moveBookingRequest struct {
	NewTourID int64  `json:"newTourId"`
	NewDate   string `json:"newDate"`
}

type transferBookingRequest struct {
	TargetDepartureID int64 `json:"targetDepartureId"`
}

type convertTypeRequest struct {
	TargetType string `json:"targetType"`
}

type updateDepartureDateRequest struct {
	Date string `json:"date"`
}

type updateDepartureTourRequest struct {
	TourID int64 `json:"tourId"`
}

type splitDepartureRequest struct {
	BookingID int64 `json:"bookingId"`
}

type updateTourPricingRequest struct {
	PricingTiers []domain.PricingTier `json:"pricingTiers"`
}

// BookingState бронирование вместе с выездом-владельцем после команды
type BookingState struct {
	Booking   *domain.Booking
	Departure *domain.Departure
}

// MoveResult состояние после переноса бронирования на другой тур или дату
type MoveResult struct {
	Booking           *domain.Booking
	Departure         *domain.Departure
	PreviousDeparture *domain.Departure
}

// TransferResult состояние после перевода бронирования в другой выезд
type TransferResult struct {
	Booking *domain.Booking
	Source  *domain.Departure
	Target  *domain.Departure
}

// DepartureState выезд вместе с его бронированиями
type DepartureState struct {
	Departure *domain.Departure
	Bookings  []*domain.Booking
}

// SplitResult состояние после выделения бронирования в новый выезд
type SplitResult struct {
	Source  *domain.Departure
	Created *domain.Departure
	Booking *domain.Booking
}

// CustomerFromDomain конвертирует данные клиента в модель хранилища
func CustomerFromDomain(c domain.Customer) Customer {
	return Customer{
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		DocumentID: c.DocumentID,
		Note:       c.Note,
	}
}

func (t Tour) toDomain() *domain.Tour {
	return &domain.Tour{
		ID:           t.ID,
		Name:         t.Name,
		Description:  t.Description,
		PricingTiers: t.PricingTiers,
		Active:       t.Active,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func (d Departure) toDomain() (*domain.Departure, error) {
	date, err := time.Parse(domain.DateFormat, d.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: departure %d has invalid date %q", ErrInvalidResponse, d.ID, d.Date)
	}

	depType := domain.DepartureType(d.Type)
	if !depType.IsValid() {
		return nil, fmt.Errorf("%w: departure %d has unknown type %q", ErrInvalidResponse, d.ID, d.Type)
	}

	return &domain.Departure{
		ID:              d.ID,
		TourID:          d.TourID,
		Date:            date,
		Type:            depType,
		Status:          domain.DepartureStatus(d.Status),
		MaxPax:          d.MaxPax,
		CurrentPax:      d.CurrentPax,
		PricingSnapshot: d.PricingSnapshot,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}, nil
}

func (b Booking) toDomain() *domain.Booking {
	currency := domain.Currency(b.Currency)
	if !currency.IsValid() {
		currency = domain.DefaultCurrency
	}

	return &domain.Booking{
		ID:          b.ID,
		DepartureID: b.DepartureID,
		Customer: domain.Customer{
			Name:       b.Customer.Name,
			Email:      b.Customer.Email,
			Phone:      b.Customer.Phone,
			DocumentID: b.Customer.DocumentID,
			Note:       b.Customer.Note,
		},
		Pax:            b.Pax,
		Type:           domain.DepartureType(b.Type),
		TypeAtCreation: domain.DepartureType(b.TypeAtCreation),
		Currency:       currency,
		OriginalPrice:  b.OriginalPrice,
		FinalPrice:     b.FinalPrice,
		DiscountReason: b.DiscountReason,
		Status:         domain.BookingStatus(b.Status),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// toBookingState конвертирует бронирование и проецирует тип с выезда
func toBookingState(b Booking, d Departure) (*BookingState, error) {
	departure, err := d.toDomain()
	if err != nil {
		return nil, err
	}
	booking := b.toDomain()
	booking.ProjectType(departure)
	return &BookingState{Booking: booking, Departure: departure}, nil
}

func toDepartureState(d Departure, bookings []Booking) (*DepartureState, error) {
	departure, err := d.toDomain()
	if err != nil {
		return nil, err
	}
	result := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, b.toDomain())
	}
	domain.ProjectTypes(departure, result)
	return &DepartureState{Departure: departure, Bookings: result}, nil
}
