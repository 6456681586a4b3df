package factory

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	companymetrics "kaisha/internal/company/metrics"
	"kaisha/internal/company/models"
	"kaisha/pkg/domain"
	dErrors "kaisha/pkg/domain-errors"
)

var establishmentDate = time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

func testRequest(t *testing.T) IncorporateCompany {
	t.Helper()
	name, err := domain.NewBilingualName("株式会社テスト商事", "Test Trading Co., Ltd.")
	require.NoError(t, err)
	fiscalYearEnd, err := domain.NewFiscalYearEnd(time.March, 31)
	require.NoError(t, err)
	headquarters, err := domain.NewAddress("100-0001", "東京都", "千代田区", "千代田1-1", "")
	require.NoError(t, err)
	return IncorporateCompany{
		CorporateNumber:   "4010401089553",
		LegalName:         name,
		EntityType:        models.KabushikiKaisha,
		Capital:           domain.JPY(10_000_000),
		FiscalYearEnd:     fiscalYearEnd,
		Headquarters:      headquarters,
		EstablishmentDate: establishmentDate,
		SealBureau:        "東京法務局",
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestIncorporate(t *testing.T) {
	t.Run("assembles an active company", func(t *testing.T) {
		f := New(WithLogger(quietLogger()))
		company, incorporated, err := f.Incorporate(context.Background(), testRequest(t))
		require.NoError(t, err)

		assert.Equal(t, models.StatusActive, company.Status())
		assert.Equal(t, "4010401089553", company.CorporateNumber().String())
		assert.EqualValues(t, 10_000_000, company.RegisteredCapital().Amount)

		netAssets, ok := company.NetAssets()
		require.True(t, ok)
		assert.Equal(t, company.RegisteredCapital(), netAssets)
		reserve, ok := company.LegalReserve()
		require.True(t, ok)
		assert.Zero(t, reserve.Amount)

		assert.True(t, company.Seals().Representative.Registered)
		assert.Equal(t, "東京法務局", company.Seals().Representative.Bureau)

		assert.Equal(t, company.ID(), incorporated.Envelope.CompanyID)
		assert.Equal(t, company.CorporateNumber(), incorporated.CorporateNumber)
	})

	t.Run("rejects a corporate number with a bad check digit", func(t *testing.T) {
		f := New(WithLogger(quietLogger()))
		req := testRequest(t)
		req.CorporateNumber = "1010401089553"

		_, _, err := f.Incorporate(context.Background(), req)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("surfaces model rejections unchanged", func(t *testing.T) {
		f := New(WithLogger(quietLogger()))
		req := testRequest(t)
		req.Capital = domain.Money{Amount: 100_000, Currency: "USD"}

		_, _, err := f.Incorporate(context.Background(), req)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("uses the configured id generator", func(t *testing.T) {
		fixedID := domain.NewCompanyID()
		f := New(
			WithLogger(quietLogger()),
			WithIDGenerator(func() domain.CompanyID { return fixedID }),
		)

		company, _, err := f.Incorporate(context.Background(), testRequest(t))
		require.NoError(t, err)
		assert.Equal(t, fixedID, company.ID())
	})
}

func TestIncorporateMetrics(t *testing.T) {
	newFactory := func() (*Factory, *companymetrics.Metrics) {
		m := companymetrics.NewWith(prometheus.NewRegistry())
		return New(WithLogger(quietLogger()), WithMetrics(m)), m
	}

	t.Run("success increments the incorporation counter", func(t *testing.T) {
		f, m := newFactory()
		_, _, err := f.Incorporate(context.Background(), testRequest(t))
		require.NoError(t, err)

		assert.Equal(t, 1.0, testutil.ToFloat64(m.IncorporationsSucceeded))
		assert.Equal(t, 0, testutil.CollectAndCount(m.IncorporationsRejected))
	})

	t.Run("rejection increments the rejected counter by code", func(t *testing.T) {
		f, m := newFactory()
		req := testRequest(t)
		req.CorporateNumber = "not-a-number"

		_, _, err := f.Incorporate(context.Background(), req)
		require.Error(t, err)

		assert.Equal(t, 0.0, testutil.ToFloat64(m.IncorporationsSucceeded))
		rejected := m.IncorporationsRejected.WithLabelValues(string(dErrors.CodeInvalidInput))
		assert.Equal(t, 1.0, testutil.ToFloat64(rejected))
	})

	t.Run("factory works without metrics attached", func(t *testing.T) {
		f := New(WithLogger(quietLogger()))
		_, _, err := f.Incorporate(context.Background(), testRequest(t))
		require.NoError(t, err)
	})
}
