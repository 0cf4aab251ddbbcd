package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expected      Currency
		expectedError bool
	}{
		{
			name:     "plain CUP",
			input:    "CUP",
			expected: CUP,
		},
		{
			name:     "lowercase with spaces",
			input:    "  usd ",
			expected: USD,
		},
		{
			name:     "keyboard button with emoji",
			input:    "💲MLC",
			expected: MLC,
		},
		{
			name:     "mixed case",
			input:    "CuP",
			expected: CUP,
		},
		{
			name:          "unsupported currency",
			input:         "EUR",
			expectedError: true,
		},
		{
			name:          "empty input",
			input:         "",
			expectedError: true,
		},
		{
			name:          "digits only",
			input:         "500",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			currency, err := ParseCurrency(tt.input)

			if tt.expectedError {
				assert.ErrorIs(t, err, ErrUnknownCurrency)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, currency)
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expected      string
		expectedError bool
	}{
		{
			name:     "plain integer",
			input:    "500",
			expected: "500",
		},
		{
			name:     "keyboard button with emoji",
			input:    "💵1000",
			expected: "1000",
		},
		{
			name:     "comma as decimal separator",
			input:    "12,50",
			expected: "12.5",
		},
		{
			name:     "dot decimal with spaces",
			input:    " 3.75 ",
			expected: "3.75",
		},
		{
			name:          "zero is not positive",
			input:         "0",
			expectedError: true,
		},
		{
			name:          "zero with decimals",
			input:         "0,00",
			expectedError: true,
		},
		{
			name:          "not a number",
			input:         "abc",
			expectedError: true,
		},
		{
			name:          "empty input",
			input:         "",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := ParseAmount(tt.input)

			if tt.expectedError {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			assert.NoError(t, err)
			assert.True(t, amount.Equal(decimal.RequireFromString(tt.expected)),
				"expected %s, got %s", tt.expected, amount)
		})
	}
}
