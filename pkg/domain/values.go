package domain

import (
	"strings"
	"time"

	dErrors "kaisha/pkg/domain-errors"
)

// PersonName is a natural person's name as held in the registers.
type PersonName struct {
	FamilyName string `json:"family_name"`
	GivenName  string `json:"given_name"`
}

// NewPersonName validates and builds a PersonName.
func NewPersonName(familyName, givenName string) (PersonName, error) {
	familyName = strings.TrimSpace(familyName)
	givenName = strings.TrimSpace(givenName)
	if familyName == "" || givenName == "" {
		return PersonName{}, dErrors.New(dErrors.CodeInvalidInput, "person name requires family and given names")
	}
	return PersonName{FamilyName: familyName, GivenName: givenName}, nil
}

func (n PersonName) String() string {
	return n.FamilyName + " " + n.GivenName
}

// BilingualName is a legal name in Japanese with its registered English form.
// The English form is optional; the Japanese form is the name of record.
type BilingualName struct {
	Japanese string `json:"japanese"`
	English  string `json:"english,omitempty"`
}

// NewBilingualName validates and builds a BilingualName.
func NewBilingualName(japanese, english string) (BilingualName, error) {
	japanese = strings.TrimSpace(japanese)
	if japanese == "" {
		return BilingualName{}, dErrors.New(dErrors.CodeInvalidInput, "japanese legal name is required")
	}
	return BilingualName{Japanese: japanese, English: strings.TrimSpace(english)}, nil
}

// Address is a registered street address. Construction rules for the
// individual components live with the collaborator that supplies them; the
// core only requires prefecture and municipality to be present.
type Address struct {
	PostalCode   string `json:"postal_code"`
	Prefecture   string `json:"prefecture"`
	Municipality string `json:"municipality"`
	StreetLine   string `json:"street_line"`
	BuildingLine string `json:"building_line,omitempty"`
}

// NewAddress validates and builds an Address.
func NewAddress(postalCode, prefecture, municipality, streetLine, buildingLine string) (Address, error) {
	if strings.TrimSpace(prefecture) == "" || strings.TrimSpace(municipality) == "" {
		return Address{}, dErrors.New(dErrors.CodeInvalidInput, "address requires prefecture and municipality")
	}
	return Address{
		PostalCode:   strings.TrimSpace(postalCode),
		Prefecture:   strings.TrimSpace(prefecture),
		Municipality: strings.TrimSpace(municipality),
		StreetLine:   strings.TrimSpace(streetLine),
		BuildingLine: strings.TrimSpace(buildingLine),
	}, nil
}

// FiscalYearEnd is the month and day the accounting period closes on.
type FiscalYearEnd struct {
	Month time.Month `json:"month"`
	Day   int        `json:"day"`
}

// NewFiscalYearEnd validates and builds a FiscalYearEnd.
func NewFiscalYearEnd(month time.Month, day int) (FiscalYearEnd, error) {
	if month < time.January || month > time.December {
		return FiscalYearEnd{}, dErrors.Newf(dErrors.CodeInvalidInput, "invalid fiscal year end month %d", month)
	}
	// Day 29 in February is allowed; leap handling is the calendar's problem.
	if day < 1 || day > daysInMonth(month) {
		return FiscalYearEnd{}, dErrors.Newf(dErrors.CodeInvalidInput, "invalid fiscal year end day %d for %s", day, month)
	}
	return FiscalYearEnd{Month: month, Day: day}, nil
}

func daysInMonth(month time.Month) int {
	switch month {
	case time.February:
		return 29
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}
