package domain

import (
	dErrors "kaisha/pkg/domain-errors"
)

// CorporateNumber is the 13-digit identifier assigned to registered Japanese
// corporations. The first digit is a check digit computed over the trailing
// twelve.
//
// Invariant: exactly 13 ASCII digits with a valid check digit. Construct via
// ParseCorporateNumber; direct casting bypasses validation.
type CorporateNumber string

// ParseCorporateNumber constructs a CorporateNumber from external input.
//
// The check digit is 9 − (Σ dᵢ·wᵢ mod 9) over the twelve base digits, where
// digits are indexed from the lowest position and weights alternate 1,2,1,2…
func ParseCorporateNumber(raw string) (CorporateNumber, error) {
	if len(raw) != 13 {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "corporate number must be 13 digits, got %d", len(raw))
	}
	digits := make([]int, 13)
	for i, r := range raw {
		if r < '0' || r > '9' {
			return "", dErrors.New(dErrors.CodeInvalidInput, "corporate number must contain only digits")
		}
		digits[i] = int(r - '0')
	}

	sum := 0
	// digits[1:] is the 12-digit base; position 1 is its lowest digit.
	for pos := 1; pos <= 12; pos++ {
		weight := 1
		if pos%2 == 0 {
			weight = 2
		}
		sum += digits[13-pos] * weight
	}
	check := 9 - sum%9
	if digits[0] != check {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "corporate number check digit mismatch: expected %d, got %d", check, digits[0])
	}
	return CorporateNumber(raw), nil
}

func (n CorporateNumber) String() string {
	return string(n)
}
