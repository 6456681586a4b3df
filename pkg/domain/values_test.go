package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "kaisha/pkg/domain-errors"
)

func TestParseCorporateNumber(t *testing.T) {
	t.Run("accepts valid check digit", func(t *testing.T) {
		number, err := ParseCorporateNumber("4010401089553")
		require.NoError(t, err)
		assert.Equal(t, "4010401089553", number.String())
	})

	t.Run("accepts check digit nine", func(t *testing.T) {
		// Sum of weighted base digits divisible by nine.
		_, err := ParseCorporateNumber("9000000000000")
		require.NoError(t, err)
	})

	tests := []struct {
		name  string
		input string
	}{
		{name: "wrong check digit", input: "1010401089553"},
		{name: "too short", input: "401040108955"},
		{name: "too long", input: "40104010895534"},
		{name: "empty", input: ""},
		{name: "non-digit characters", input: "4O10401089553"},
	}
	for _, tt := range tests {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			_, err := ParseCorporateNumber(tt.input)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
		})
	}
}

func TestMoney(t *testing.T) {
	t.Run("adds same currency", func(t *testing.T) {
		sum, err := JPY(100).Add(JPY(50))
		require.NoError(t, err)
		assert.Equal(t, JPY(150), sum)
	})

	t.Run("rejects mixed currency arithmetic", func(t *testing.T) {
		usd, err := NewMoney(100, "USD")
		require.NoError(t, err)
		_, err = JPY(100).Add(usd)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("compares only within a currency", func(t *testing.T) {
		usd, err := NewMoney(500, "USD")
		require.NoError(t, err)
		assert.True(t, JPY(100).GreaterThanOrEqual(JPY(100)))
		assert.False(t, JPY(99).GreaterThanOrEqual(JPY(100)))
		assert.False(t, JPY(1000).GreaterThanOrEqual(usd))
	})

	t.Run("rejects malformed currency code", func(t *testing.T) {
		_, err := NewMoney(100, "YEN!")
		require.Error(t, err)
	})
}

func TestPersonName(t *testing.T) {
	t.Run("trims and joins", func(t *testing.T) {
		name, err := NewPersonName("  Tanaka ", " Hanako ")
		require.NoError(t, err)
		assert.Equal(t, "Tanaka Hanako", name.String())
	})

	t.Run("rejects missing components", func(t *testing.T) {
		_, err := NewPersonName("Tanaka", "  ")
		require.Error(t, err)
	})
}

func TestBilingualName(t *testing.T) {
	t.Run("requires japanese form", func(t *testing.T) {
		_, err := NewBilingualName("  ", "Example Co., Ltd.")
		require.Error(t, err)
	})

	t.Run("english form is optional", func(t *testing.T) {
		name, err := NewBilingualName("株式会社サンプル", "")
		require.NoError(t, err)
		assert.Empty(t, name.English)
	})
}

func TestNewAddress(t *testing.T) {
	t.Run("requires prefecture and municipality", func(t *testing.T) {
		_, err := NewAddress("100-0001", "", "Chiyoda-ku", "1-1", "")
		require.Error(t, err)
	})

	t.Run("trims components", func(t *testing.T) {
		addr, err := NewAddress(" 100-0001 ", " Tokyo ", " Chiyoda-ku ", " 1-1 ", "")
		require.NoError(t, err)
		assert.Equal(t, "Tokyo", addr.Prefecture)
		assert.Equal(t, "Chiyoda-ku", addr.Municipality)
	})
}

func TestNewFiscalYearEnd(t *testing.T) {
	t.Run("accepts march 31", func(t *testing.T) {
		fye, err := NewFiscalYearEnd(time.March, 31)
		require.NoError(t, err)
		assert.Equal(t, time.March, fye.Month)
	})

	tests := []struct {
		name  string
		month time.Month
		day   int
	}{
		{name: "day zero", month: time.March, day: 0},
		{name: "april 31", month: time.April, day: 31},
		{name: "february 30", month: time.February, day: 30},
		{name: "month out of range", month: time.Month(13), day: 1},
	}
	for _, tt := range tests {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			_, err := NewFiscalYearEnd(tt.month, tt.day)
			require.Error(t, err)
		})
	}
}
