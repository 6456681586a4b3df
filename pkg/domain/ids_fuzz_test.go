//go:build go1.18

package domain

import (
	"testing"
	"unicode/utf8"
)

// FuzzParseCompanyID tests that parsing never panics on arbitrary input
// and always returns either a valid ID or an error.
func FuzzParseCompanyID(f *testing.F) {
	f.Add("")
	f.Add("550e8400-e29b-41d4-a716-446655440000")
	f.Add("00000000-0000-0000-0000-000000000000")
	f.Add("not-a-uuid")
	f.Add(string([]byte{0x00, 0x01, 0x02}))
	f.Add("550e8400-e29b-41d4-a716-446655440000\x00suffix")

	f.Fuzz(func(t *testing.T, input string) {
		companyID, err := ParseCompanyID(input)

		if err == nil {
			roundTrip, err2 := ParseCompanyID(companyID.String())
			if err2 != nil {
				t.Errorf("valid ID failed round-trip: %v", err2)
			}
			if roundTrip != companyID {
				t.Error("round-trip changed ID value")
			}
		}

		if !utf8.ValidString(input) && err == nil {
			t.Error("non-UTF8 input was accepted")
		}
	})
}

// FuzzParseCorporateNumber tests that corporate-number validation never
// panics and rejects everything that is not 13 digits with a valid check
// digit.
func FuzzParseCorporateNumber(f *testing.F) {
	f.Add("")
	f.Add("4010401089553")
	f.Add("0000000000000")
	f.Add("401040108955")
	f.Add("40104010895534")
	f.Add("abcdefghijklm")
	f.Add(string([]byte{0x00, 0x01, 0x02}))

	f.Fuzz(func(t *testing.T, input string) {
		number, err := ParseCorporateNumber(input)

		if err == nil {
			if len(string(number)) != 13 {
				t.Errorf("accepted corporate number with length %d", len(string(number)))
			}
			roundTrip, err2 := ParseCorporateNumber(number.String())
			if err2 != nil {
				t.Errorf("valid number failed round-trip: %v", err2)
			}
			if roundTrip != number {
				t.Error("round-trip changed value")
			}
		}
	})
}
