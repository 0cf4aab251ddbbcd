package domain

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// Currency is a supported wallet currency
type Currency string

const (
	CUP Currency = "CUP"
	USD Currency = "USD"
	MLC Currency = "MLC"
)

// DefaultCurrency is the base currency used before any transaction exists
// and the currency every conversion settles into.
const DefaultCurrency = CUP

// ParseCurrency resolves free-form user input to a supported currency.
// Emojis, spaces and other non-letter characters are stripped and the
// match is case-insensitive ("💲cup " -> CUP).
func ParseCurrency(text string) (Currency, error) {
	letters := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return r
		}
		return -1
	}, text)

	switch Currency(strings.ToUpper(letters)) {
	case CUP:
		return CUP, nil
	case USD:
		return USD, nil
	case MLC:
		return MLC, nil
	default:
		return "", ErrUnknownCurrency
	}
}

// ParseAmount parses a positive monetary amount from user input.
// A comma is accepted as decimal separator and currency symbols/emoji
// are stripped ("💵1000" -> 1000, "12,50" -> 12.5).
func ParseAmount(text string) (decimal.Decimal, error) {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) || r == '.' {
			return r
		}
		return -1
	}, strings.ReplaceAll(strings.TrimSpace(text), ",", "."))

	amount, err := decimal.NewFromString(cleaned)
	if err != nil || !amount.IsPositive() {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	return amount, nil
}
