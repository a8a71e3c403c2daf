package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/settlement-engine/internal/domain/error"
)

// DefaultCurrency is used when a request or host carries no settlement currency
const DefaultCurrency = "usd"

// zeroDecimalCurrencies are charged in whole units by the processor
var zeroDecimalCurrencies = map[string]bool{
	"jpy": true,
	"krw": true,
	"vnd": true,
	"clp": true,
}

// settlementCurrencies maps a host country to the currency its balance is paid out in
var settlementCurrencies = map[string]string{
	"US": "usd",
	"JP": "jpy",
	"GB": "gbp",
	"CA": "cad",
	"AU": "aud",
	"NZ": "nzd",
	"SG": "sgd",
	"CH": "chf",
	"DE": "eur",
	"FR": "eur",
	"ES": "eur",
	"IT": "eur",
	"NL": "eur",
	"IE": "eur",
}

// ValidateAmount checks that a transaction amount is a positive number of minor units
func ValidateAmount(amount int64) error {
	if amount <= 0 {
		return errs.NewValidationError("amount", fmt.Sprintf("must be a positive integer, got %d", amount))
	}
	return nil
}

// NormalizeCurrency lower-cases a three letter ISO currency code and validates its shape
func NormalizeCurrency(currency string) (string, error) {
	code := strings.ToLower(strings.TrimSpace(currency))
	if len(code) != 3 {
		return "", errs.NewValidationError("currency", fmt.Sprintf("must be a three letter code, got %q", currency))
	}
	for _, r := range code {
		if r < 'a' || r > 'z' {
			return "", errs.NewValidationError("currency", fmt.Sprintf("must be alphabetic, got %q", currency))
		}
	}
	return code, nil
}

// NormalizeCountry upper-cases a two letter ISO country code and validates its shape
func NormalizeCountry(country string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(country))
	if len(code) != 2 {
		return "", errs.NewValidationError("country", fmt.Sprintf("must be a two letter code, got %q", country))
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return "", errs.NewValidationError("country", fmt.Sprintf("must be alphabetic, got %q", country))
		}
	}
	return code, nil
}

// SettlementCurrency returns the payout currency for a host country
func SettlementCurrency(country string) string {
	if currency, ok := settlementCurrencies[strings.ToUpper(country)]; ok {
		return currency
	}
	return DefaultCurrency
}

// FormatMinorUnits renders an amount in minor units for display
// For example:
// - 1015 usd becomes "10.15"
// - 1000 jpy becomes "1000"
func FormatMinorUnits(amount int64, currency string) string {
	if zeroDecimalCurrencies[strings.ToLower(currency)] {
		return fmt.Sprintf("%d", amount)
	}

	isNegative := amount < 0
	if isNegative {
		amount = -amount
	}

	amountStr := fmt.Sprintf("%d", amount)
	for len(amountStr) < 3 {
		amountStr = "0" + amountStr
	}

	decimalPos := len(amountStr) - 2
	formatted := amountStr[:decimalPos] + "." + amountStr[decimalPos:]
	if isNegative {
		return "-" + formatted
	}
	return formatted
}
