package get_availability

import (
	"time"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
)

// Request модель запроса доступности тура на диапазон дат
type Request struct {
	TourID   int64
	From     time.Time
	To       time.Time // Включительно
	Pax      int
	Currency domain.Currency // Пусто - валюта по умолчанию
}

// Response доступность тура по дням
type Response struct {
	TourID   int64
	Pax      int
	Currency domain.Currency

	// NewDeparturePrice цена нового выезда по текущим тарифам тура
	NewDeparturePrice int64
	Days              []Day
}

// Day варианты бронирования на дату
type Day struct {
	Date time.Time

	// NewDepartureAvailable группа помещается в новый выезд
	NewDepartureAvailable bool
	Departures            []DepartureOption
}

// DepartureOption существующий выезд на дату
// Available рассчитан по данным кэша и носит рекомендательный характер
type DepartureOption struct {
	DepartureID int64
	Type        domain.DepartureType
	Status      domain.DepartureStatus
	MaxPax      int
	Available   int
	Joinable    bool
	Price       *int64 // По снимку цен выезда, nil если тариф не покрывает pax
}
