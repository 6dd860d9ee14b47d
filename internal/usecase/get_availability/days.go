package get_availability

import (
	"time"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
)

const maxRangeDays = 31

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysInRange(from, to time.Time) int {
	return int(dateOnly(to).Sub(dateOnly(from)).Hours()/24) + 1
}

// generateDays возвращает все даты диапазона [from, to]
func generateDays(from, to time.Time) []time.Time {
	days := make([]time.Time, 0, daysInRange(from, to))
	last := dateOnly(to)
	for day := dateOnly(from); !day.After(last); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}
	return days
}

// departureOption рассчитывает, можно ли присоединить группу к выезду
// Присоединиться можно только к открытому общему выезду со свободными местами
func departureOption(d *domain.Departure, tourTiers []domain.PricingTier, pax int, currency domain.Currency) DepartureOption {
	option := DepartureOption{
		DepartureID: d.ID,
		Type:        d.Type,
		Status:      d.Status,
		MaxPax:      d.MaxPax,
		Available:   domain.AvailableSpace(d, 0),
	}
	if option.Available < 0 {
		option.Available = 0
	}

	// Выезд продает места по своему снимку цен, тарифы тура только если снимка нет
	tiers := d.PricingSnapshot
	if len(tiers) == 0 {
		tiers = tourTiers
	}
	if price, err := domain.ComputePrice(tiers, pax, currency); err == nil {
		option.Price = &price
	}

	option.Joinable = d.IsPublic() && d.IsOpen() && option.Available >= pax && option.Price != nil
	return option
}
