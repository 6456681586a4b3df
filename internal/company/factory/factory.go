// Package factory assembles incorporation requests into company snapshots.
// It is the trust boundary for raw identifiers: the corporate number arrives
// as a string and is parsed here, and the company identifier is generated
// here. Everything downstream works with validated values.
package factory

import (
	"context"
	"log/slog"
	"time"

	companymetrics "kaisha/internal/company/metrics"
	"kaisha/internal/company/models"
	"kaisha/pkg/domain"
	dErrors "kaisha/pkg/domain-errors"
)

// IncorporateCompany is a request to incorporate a new company.
type IncorporateCompany struct {
	CorporateNumber   string
	LegalName         domain.BilingualName
	EntityType        models.EntityType
	Capital           domain.Money
	FiscalYearEnd     domain.FiscalYearEnd
	Headquarters      domain.Address
	EstablishmentDate time.Time
	SealBureau        string
}

// Factory validates incorporation requests and assembles the initial company
// snapshot plus its incorporation event.
type Factory struct {
	logger  *slog.Logger
	metrics *companymetrics.Metrics
	newID   func() domain.CompanyID
}

// Option configures a Factory.
type Option func(*Factory)

// WithLogger attaches a logger for incorporation outcomes.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Factory) {
		f.logger = logger
	}
}

// WithMetrics attaches incorporation counters.
func WithMetrics(m *companymetrics.Metrics) Option {
	return func(f *Factory) {
		f.metrics = m
	}
}

// WithIDGenerator overrides company-id generation; tests use it for
// deterministic identifiers.
func WithIDGenerator(newID func() domain.CompanyID) Option {
	return func(f *Factory) {
		f.newID = newID
	}
}

// New builds a Factory.
func New(opts ...Option) *Factory {
	f := &Factory{
		logger: slog.Default(),
		newID:  domain.NewCompanyID,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Incorporate validates the request and returns the active company and the
// CompanyIncorporated event. The context carries no cancellation semantics
// (nothing blocks); it is accepted for log correlation only.
func (f *Factory) Incorporate(ctx context.Context, req IncorporateCompany) (models.Company, models.CompanyIncorporated, error) {
	corporateNumber, err := domain.ParseCorporateNumber(req.CorporateNumber)
	if err != nil {
		return f.reject(ctx, req, dErrors.Wrap(err, dErrors.CodeInvalidInput, "invalid corporate number"))
	}

	company, incorporated, err := models.NewCompany(models.CompanyParams{
		ID:                f.newID(),
		CorporateNumber:   corporateNumber,
		LegalName:         req.LegalName,
		EntityType:        req.EntityType,
		Capital:           req.Capital,
		FiscalYearEnd:     req.FiscalYearEnd,
		Headquarters:      req.Headquarters,
		EstablishmentDate: req.EstablishmentDate,
		SealBureau:        req.SealBureau,
	})
	if err != nil {
		return f.reject(ctx, req, err)
	}

	if f.metrics != nil {
		f.metrics.IncrementIncorporated()
	}
	f.logger.InfoContext(ctx, "company incorporated",
		"company_id", company.ID().String(),
		"corporate_number", corporateNumber.String(),
		"entity_type", string(req.EntityType),
		"capital", company.RegisteredCapital().String(),
	)
	return company, incorporated, nil
}

func (f *Factory) reject(ctx context.Context, req IncorporateCompany, err error) (models.Company, models.CompanyIncorporated, error) {
	code := string(dErrors.CodeOf(err))
	if f.metrics != nil {
		f.metrics.IncrementRejected(code)
	}
	f.logger.WarnContext(ctx, "incorporation rejected",
		"entity_type", string(req.EntityType),
		"code", code,
		"error", err.Error(),
	)
	return models.Company{}, models.CompanyIncorporated{}, err
}
