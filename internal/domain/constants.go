package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinPax                  = 1
	MaxCustomerNameLength   = 200
	MaxCustomerNoteLength   = 500
	MaxDiscountReasonLength = 500
	MaxPricingTiers         = 50
	DefaultDepartureMaxPax  = 20
	DefaultCurrency         = CurrencyCOP
)

// Currency валюта цены
type Currency string

const (
	CurrencyCOP Currency = "COP" // колумбийские песо, без дробной части
	CurrencyUSD Currency = "USD" // доллары США, в центах
)

// IsValid проверяет, что валюта поддерживается
func (c Currency) IsValid() bool {
	return c == CurrencyCOP || c == CurrencyUSD
}
