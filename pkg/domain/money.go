package domain

import (
	"fmt"

	dErrors "kaisha/pkg/domain-errors"
)

// CurrencyJPY is the only currency the corporate core operates in. Capital,
// net assets, and reserves are yen amounts; operations on other currencies
// are rejected at the aggregate boundary.
const CurrencyJPY = "JPY"

// Money is an amount in minor units of a currency. Yen has no minor unit, so
// for JPY the amount is whole yen.
//
// Invariants:
//   - Currency is a three-letter ISO 4217 code
//   - arithmetic is only defined between equal currencies
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// JPY builds a yen amount.
func JPY(amount int64) Money {
	return Money{Amount: amount, Currency: CurrencyJPY}
}

// NewMoney validates and builds a Money value.
func NewMoney(amount int64, currency string) (Money, error) {
	if len(currency) != 3 {
		return Money{}, dErrors.Newf(dErrors.CodeInvalidInput, "currency must be a three-letter code, got %q", currency)
	}
	return Money{Amount: amount, Currency: currency}, nil
}

// IsJPY reports whether the amount is denominated in yen.
func (m Money) IsJPY() bool {
	return m.Currency == CurrencyJPY
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.Amount > 0
}

// Add returns the sum of two amounts of the same currency.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, dErrors.Newf(dErrors.CodeInvalidInput, "cannot add %s to %s", other.Currency, m.Currency)
	}
	return Money{Amount: m.Amount + other.Amount, Currency: m.Currency}, nil
}

// Subtract returns the difference of two amounts of the same currency.
func (m Money) Subtract(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, dErrors.Newf(dErrors.CodeInvalidInput, "cannot subtract %s from %s", other.Currency, m.Currency)
	}
	return Money{Amount: m.Amount - other.Amount, Currency: m.Currency}, nil
}

// GreaterThanOrEqual compares two amounts of the same currency. Differing
// currencies compare false rather than erroring; callers guard currency first.
func (m Money) GreaterThanOrEqual(other Money) bool {
	return m.Currency == other.Currency && m.Amount >= other.Amount
}

func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.Amount, m.Currency)
}
