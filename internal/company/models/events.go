package models

import (
	"time"

	"kaisha/pkg/domain"
	"kaisha/pkg/platform/events"
)

// Event names published by the company context.
const (
	EventNameCompanyIncorporated     = "company_incorporated"
	EventNameCapitalIncreased        = "capital_increased"
	EventNameCapitalDecreased        = "capital_decreased"
	EventNameCompanyNameChanged      = "company_name_changed"
	EventNameHeadquartersChanged     = "headquarters_changed"
	EventNameFiscalYearEndChanged    = "fiscal_year_end_changed"
	EventNameLiquidationInitiated    = "liquidation_initiated"
	EventNameCompanyDissolved        = "company_dissolved"
	EventNameCorporateSealRegistered = "corporate_seal_registered"
	EventNameCorporateSealRetired    = "corporate_seal_retired"
)

// CompanyIncorporated records the birth of the company.
type CompanyIncorporated struct {
	Envelope          events.Envelope        `json:"envelope"`
	CorporateNumber   domain.CorporateNumber `json:"corporate_number"`
	LegalName         domain.BilingualName   `json:"legal_name"`
	EntityType        EntityType             `json:"entity_type"`
	Capital           domain.Money           `json:"capital"`
	EstablishmentDate time.Time              `json:"establishment_date"`
}

func (e CompanyIncorporated) EventName() string { return EventNameCompanyIncorporated }
func (e CompanyIncorporated) EventEnvelope() events.Envelope { return e.Envelope }

// CapitalIncreased records a capital increase with the prior and new
// balances.
type CapitalIncreased struct {
	Envelope        events.Envelope `json:"envelope"`
	PreviousCapital domain.Money    `json:"previous_capital"`
	NewCapital      domain.Money    `json:"new_capital"`
	Amount          domain.Money    `json:"amount"`
	EffectiveDate   time.Time       `json:"effective_date"`
}

func (e CapitalIncreased) EventName() string { return EventNameCapitalIncreased }
func (e CapitalIncreased) EventEnvelope() events.Envelope { return e.Envelope }

// CapitalDecreased records a capital reduction with the prior and new
// balances.
type CapitalDecreased struct {
	Envelope        events.Envelope `json:"envelope"`
	PreviousCapital domain.Money    `json:"previous_capital"`
	NewCapital      domain.Money    `json:"new_capital"`
	Amount          domain.Money    `json:"amount"`
	EffectiveDate   time.Time       `json:"effective_date"`
}

func (e CapitalDecreased) EventName() string { return EventNameCapitalDecreased }
func (e CapitalDecreased) EventEnvelope() events.Envelope { return e.Envelope }

// CompanyNameChanged records a legal-name change.
type CompanyNameChanged struct {
	Envelope      events.Envelope      `json:"envelope"`
	PreviousName  domain.BilingualName `json:"previous_name"`
	NewName       domain.BilingualName `json:"new_name"`
	EffectiveDate time.Time            `json:"effective_date"`
}

func (e CompanyNameChanged) EventName() string { return EventNameCompanyNameChanged }
func (e CompanyNameChanged) EventEnvelope() events.Envelope { return e.Envelope }

// HeadquartersChanged records a head-office relocation.
type HeadquartersChanged struct {
	Envelope        events.Envelope `json:"envelope"`
	PreviousAddress domain.Address  `json:"previous_address"`
	NewAddress      domain.Address  `json:"new_address"`
	EffectiveDate   time.Time       `json:"effective_date"`
}

func (e HeadquartersChanged) EventName() string { return EventNameHeadquartersChanged }
func (e HeadquartersChanged) EventEnvelope() events.Envelope { return e.Envelope }

// FiscalYearEndChanged records a change of accounting close date.
type FiscalYearEndChanged struct {
	Envelope      events.Envelope      `json:"envelope"`
	PreviousEnd   domain.FiscalYearEnd `json:"previous_end"`
	NewEnd        domain.FiscalYearEnd `json:"new_end"`
	EffectiveDate time.Time            `json:"effective_date"`
}

func (e FiscalYearEndChanged) EventName() string { return EventNameFiscalYearEndChanged }
func (e FiscalYearEndChanged) EventEnvelope() events.Envelope { return e.Envelope }

// LiquidationInitiated records the start of winding up.
type LiquidationInitiated struct {
	Envelope    events.Envelope `json:"envelope"`
	Reason      string          `json:"reason"`
	InitiatedAt time.Time       `json:"initiated_at"`
}

func (e LiquidationInitiated) EventName() string { return EventNameLiquidationInitiated }
func (e LiquidationInitiated) EventEnvelope() events.Envelope { return e.Envelope }

// CompanyDissolved records the completion of winding up.
type CompanyDissolved struct {
	Envelope    events.Envelope `json:"envelope"`
	Reason      string          `json:"reason"`
	DissolvedAt time.Time       `json:"dissolved_at"`
}

func (e CompanyDissolved) EventName() string { return EventNameCompanyDissolved }
func (e CompanyDissolved) EventEnvelope() events.Envelope { return e.Envelope }

// CorporateSealRegistered records a seal registration. For the acknowledgment
// seal this event is the only trace; the snapshot does not track it.
type CorporateSealRegistered struct {
	Envelope     events.Envelope `json:"envelope"`
	Type         SealType        `json:"type"`
	RegisteredAt time.Time       `json:"registered_at"`
	Bureau       string          `json:"bureau,omitempty"`
}

func (e CorporateSealRegistered) EventName() string { return EventNameCorporateSealRegistered }
func (e CorporateSealRegistered) EventEnvelope() events.Envelope { return e.Envelope }

// CorporateSealRetired records a seal going out of use.
type CorporateSealRetired struct {
	Envelope  events.Envelope `json:"envelope"`
	Type      SealType        `json:"type"`
	RetiredAt time.Time       `json:"retired_at"`
}

func (e CorporateSealRetired) EventName() string { return EventNameCorporateSealRetired }
func (e CorporateSealRetired) EventEnvelope() events.Envelope { return e.Envelope }

func newCompanyIncorporated(c Company) CompanyIncorporated {
	return CompanyIncorporated{
		Envelope:          events.NewEnvelope(c.id, c.establishmentDate),
		CorporateNumber:   c.corporateNumber,
		LegalName:         c.legalName,
		EntityType:        c.entityType,
		Capital:           c.registeredCapital,
		EstablishmentDate: c.establishmentDate,
	}
}

func newCapitalIncreased(c Company, previous, amount domain.Money, effectiveDate time.Time) CapitalIncreased {
	return CapitalIncreased{
		Envelope:        events.NewEnvelope(c.id, effectiveDate),
		PreviousCapital: previous,
		NewCapital:      c.registeredCapital,
		Amount:          amount,
		EffectiveDate:   effectiveDate,
	}
}

func newCapitalDecreased(c Company, previous, amount domain.Money, effectiveDate time.Time) CapitalDecreased {
	return CapitalDecreased{
		Envelope:        events.NewEnvelope(c.id, effectiveDate),
		PreviousCapital: previous,
		NewCapital:      c.registeredCapital,
		Amount:          amount,
		EffectiveDate:   effectiveDate,
	}
}

func newCompanyNameChanged(c Company, previous domain.BilingualName, effectiveDate time.Time) CompanyNameChanged {
	return CompanyNameChanged{
		Envelope:      events.NewEnvelope(c.id, effectiveDate),
		PreviousName:  previous,
		NewName:       c.legalName,
		EffectiveDate: effectiveDate,
	}
}

func newHeadquartersChanged(c Company, previous domain.Address, effectiveDate time.Time) HeadquartersChanged {
	return HeadquartersChanged{
		Envelope:        events.NewEnvelope(c.id, effectiveDate),
		PreviousAddress: previous,
		NewAddress:      c.headquarters,
		EffectiveDate:   effectiveDate,
	}
}

func newFiscalYearEndChanged(c Company, previous domain.FiscalYearEnd, effectiveDate time.Time) FiscalYearEndChanged {
	return FiscalYearEndChanged{
		Envelope:      events.NewEnvelope(c.id, effectiveDate),
		PreviousEnd:   previous,
		NewEnd:        c.fiscalYearEnd,
		EffectiveDate: effectiveDate,
	}
}

func newLiquidationInitiated(c Company, reason string, initiatedAt time.Time) LiquidationInitiated {
	return LiquidationInitiated{
		Envelope:    events.NewEnvelope(c.id, initiatedAt),
		Reason:      reason,
		InitiatedAt: initiatedAt,
	}
}

func newCompanyDissolved(c Company, reason string, dissolvedAt time.Time) CompanyDissolved {
	return CompanyDissolved{
		Envelope:    events.NewEnvelope(c.id, dissolvedAt),
		Reason:      reason,
		DissolvedAt: dissolvedAt,
	}
}

func newCorporateSealRegistered(c Company, sealType SealType, registeredAt time.Time, bureau string) CorporateSealRegistered {
	return CorporateSealRegistered{
		Envelope:     events.NewEnvelope(c.id, registeredAt),
		Type:         sealType,
		RegisteredAt: registeredAt,
		Bureau:       bureau,
	}
}

func newCorporateSealRetired(c Company, sealType SealType, retiredAt time.Time) CorporateSealRetired {
	return CorporateSealRetired{
		Envelope:  events.NewEnvelope(c.id, retiredAt),
		Type:      sealType,
		RetiredAt: retiredAt,
	}
}
