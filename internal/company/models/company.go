package models

import (
	"time"

	"kaisha/pkg/domain"
	dErrors "kaisha/pkg/domain-errors"
)

// EntityType is the legal form of the company.
type EntityType string

const (
	// KabushikiKaisha is a stock corporation.
	KabushikiKaisha EntityType = "kabushiki_kaisha"
	// GodoKaisha is a limited liability company.
	GodoKaisha EntityType = "godo_kaisha"
	// GomeiKaisha is a general partnership company.
	GomeiKaisha EntityType = "gomei_kaisha"
	// GoshiKaisha is a limited partnership company.
	GoshiKaisha EntityType = "goshi_kaisha"
)

// minimumCapitalYen is the statutory capital floor per legal form. The 2006
// Companies Act abolished minimum capital, so every form floors at one yen;
// the table stays so a statutory change is a one-line edit.
var minimumCapitalYen = map[EntityType]int64{
	KabushikiKaisha: 1,
	GodoKaisha:      1,
	GomeiKaisha:     1,
	GoshiKaisha:     1,
}

// MinimumCapital returns the statutory capital floor for the legal form.
func (t EntityType) MinimumCapital() (domain.Money, bool) {
	minimum, ok := minimumCapitalYen[t]
	return domain.JPY(minimum), ok
}

// CompanyStatus is the company's lifecycle state.
type CompanyStatus string

const (
	StatusIncorporating    CompanyStatus = "incorporating"
	StatusActive           CompanyStatus = "active"
	StatusSuspended        CompanyStatus = "suspended"
	StatusUnderLiquidation CompanyStatus = "under_liquidation"
	StatusDissolved        CompanyStatus = "dissolved"
)

// allowedTransitions is the strict forward state machine. No edge skips a
// state: dissolution is reachable only through liquidation.
var allowedTransitions = map[CompanyStatus][]CompanyStatus{
	StatusIncorporating:    {StatusActive},
	StatusActive:           {StatusSuspended, StatusUnderLiquidation},
	StatusSuspended:        {StatusActive, StatusUnderLiquidation},
	StatusUnderLiquidation: {StatusDissolved},
	StatusDissolved:        {},
}

// CanTransitionTo reports whether the state machine allows the edge.
func (s CompanyStatus) CanTransitionTo(next CompanyStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// minimumNetAssetsForDividendYen is the Companies-Act net-asset floor below
// which no dividend may be paid.
const minimumNetAssetsForDividendYen = 3_000_000

// Company is the root aggregate: corporate identity, capital, fiscal year,
// seals, and lifecycle status. The board and the share register are separate
// aggregates associated by identifier; the caller sequences cross-aggregate
// consistency.
//
// Invariants:
//   - registered capital meets the statutory minimum for the legal form
//   - an active company has a registered representative seal
//   - status follows the strict forward state machine (allowedTransitions)
//   - dividends require active status and net assets of at least ¥3,000,000
//
// Every command is pure: it returns a new Company snapshot and leaves the
// receiver untouched.
type Company struct {
	id                domain.CompanyID
	corporateNumber   domain.CorporateNumber
	legalName         domain.BilingualName
	entityType        EntityType
	status            CompanyStatus
	registeredCapital domain.Money
	fiscalYearEnd     domain.FiscalYearEnd
	headquarters      domain.Address
	seals             CorporateSeals
	establishmentDate time.Time
	boardID           domain.BoardID
	netAssets         *domain.Money
	legalReserve      *domain.Money
}

// CompanyParams is the validated input NewCompany assembles a company from.
// The corporate number must already be parsed; the factory is the trust
// boundary that parses it from raw input.
type CompanyParams struct {
	ID                domain.CompanyID
	CorporateNumber   domain.CorporateNumber
	LegalName         domain.BilingualName
	EntityType        EntityType
	Capital           domain.Money
	FiscalYearEnd     domain.FiscalYearEnd
	Headquarters      domain.Address
	EstablishmentDate time.Time
	SealBureau        string
}

// NewCompany validates and assembles an incorporated company: status active,
// net assets equal to the initial capital, an empty legal reserve, and the
// representative seal registered as of establishment. The paired
// CompanyIncorporated event is the fact external contexts consume.
func NewCompany(params CompanyParams) (Company, CompanyIncorporated, error) {
	if params.ID.IsZero() {
		return Company{}, CompanyIncorporated{}, dErrors.New(dErrors.CodeInvalidInput, "company id is required")
	}
	if params.CorporateNumber == "" {
		return Company{}, CompanyIncorporated{}, dErrors.New(dErrors.CodeInvalidInput, "corporate number is required")
	}
	if params.LegalName.Japanese == "" {
		return Company{}, CompanyIncorporated{}, dErrors.New(dErrors.CodeInvalidInput, "legal name is required")
	}
	minimum, ok := params.EntityType.MinimumCapital()
	if !ok {
		return Company{}, CompanyIncorporated{}, dErrors.Newf(dErrors.CodeInvalidInput, "invalid entity type %q", params.EntityType)
	}
	if !params.Capital.IsJPY() {
		return Company{}, CompanyIncorporated{}, dErrors.Newf(dErrors.CodeInvalidInput, "capital must be denominated in yen, got %s", params.Capital.Currency)
	}
	if !params.Capital.IsPositive() {
		return Company{}, CompanyIncorporated{}, dErrors.New(dErrors.CodeInvalidInput, "capital must be positive")
	}
	if !params.Capital.GreaterThanOrEqual(minimum) {
		return Company{}, CompanyIncorporated{}, dErrors.Wrap(
			&InsufficientCapitalError{Minimum: minimum.Amount, Provided: params.Capital.Amount},
			dErrors.CodeInvariantViolation, "capital below statutory minimum",
		)
	}

	netAssets := params.Capital
	legalReserve := domain.JPY(0)
	c := Company{
		id:                params.ID,
		corporateNumber:   params.CorporateNumber,
		legalName:         params.LegalName,
		entityType:        params.EntityType,
		status:            StatusActive,
		registeredCapital: params.Capital,
		fiscalYearEnd:     params.FiscalYearEnd,
		headquarters:      params.Headquarters,
		seals: CorporateSeals{
			Representative: RegisteredSeal{
				Registered:   true,
				RegisteredAt: params.EstablishmentDate,
				Bureau:       params.SealBureau,
			},
		},
		establishmentDate: params.EstablishmentDate,
		netAssets:         &netAssets,
		legalReserve:      &legalReserve,
	}
	return c, newCompanyIncorporated(c), nil
}

// ID returns the company identifier.
func (c Company) ID() domain.CompanyID { return c.id }

// CorporateNumber returns the registered 13-digit corporate number.
func (c Company) CorporateNumber() domain.CorporateNumber { return c.corporateNumber }

// LegalName returns the registered legal name.
func (c Company) LegalName() domain.BilingualName { return c.legalName }

// EntityType returns the legal form.
func (c Company) EntityType() EntityType { return c.entityType }

// Status returns the lifecycle state.
func (c Company) Status() CompanyStatus { return c.status }

// RegisteredCapital returns the stated capital.
func (c Company) RegisteredCapital() domain.Money { return c.registeredCapital }

// FiscalYearEnd returns the accounting close date.
func (c Company) FiscalYearEnd() domain.FiscalYearEnd { return c.fiscalYearEnd }

// Headquarters returns the registered head office address.
func (c Company) Headquarters() domain.Address { return c.headquarters }

// Seals returns the tracked seal registrations.
func (c Company) Seals() CorporateSeals { return c.seals }

// EstablishmentDate returns the incorporation date.
func (c Company) EstablishmentDate() time.Time { return c.establishmentDate }

// BoardID returns the associated board, if one has been attached.
func (c Company) BoardID() (domain.BoardID, bool) {
	return c.boardID, !c.boardID.IsZero()
}

// NetAssets returns the recorded net assets, if tracked.
func (c Company) NetAssets() (domain.Money, bool) {
	if c.netAssets == nil {
		return domain.Money{}, false
	}
	return *c.netAssets, true
}

// LegalReserve returns the recorded legal reserve, if tracked.
func (c Company) LegalReserve() (domain.Money, bool) {
	if c.legalReserve == nil {
		return domain.Money{}, false
	}
	return *c.legalReserve, true
}

// IsActive reports whether the company is in active status.
func (c Company) IsActive() bool { return c.status == StatusActive }

// AttachBoard records the company's board reference. The reference is set
// once; reattaching is a conflict.
func (c Company) AttachBoard(boardID domain.BoardID) (Company, error) {
	if boardID.IsZero() {
		return Company{}, dErrors.New(dErrors.CodeInvalidInput, "board id is required")
	}
	if !c.boardID.IsZero() {
		return Company{}, dErrors.New(dErrors.CodeConflict, "company already has a board")
	}
	c.boardID = boardID
	return c, nil
}

// IncreaseCapital raises the stated capital and net assets by the amount.
func (c Company) IncreaseCapital(amount domain.Money, effectiveDate time.Time) (Company, CapitalIncreased, error) {
	if err := c.requireActive(); err != nil {
		return Company{}, CapitalIncreased{}, err
	}
	if err := requirePositiveYen(amount); err != nil {
		return Company{}, CapitalIncreased{}, err
	}
	previous := c.registeredCapital
	c.registeredCapital = domain.JPY(previous.Amount + amount.Amount)
	c.netAssets = addToBalance(c.netAssets, amount.Amount)
	return c, newCapitalIncreased(c, previous, amount, effectiveDate), nil
}

// DecreaseCapital lowers the stated capital and net assets by the amount.
// The result must stay at or above the statutory minimum.
func (c Company) DecreaseCapital(amount domain.Money, effectiveDate time.Time) (Company, CapitalDecreased, error) {
	if err := c.requireActive(); err != nil {
		return Company{}, CapitalDecreased{}, err
	}
	if err := requirePositiveYen(amount); err != nil {
		return Company{}, CapitalDecreased{}, err
	}
	minimum, _ := c.entityType.MinimumCapital()
	remaining := c.registeredCapital.Amount - amount.Amount
	if remaining < minimum.Amount {
		return Company{}, CapitalDecreased{}, dErrors.Wrap(
			&InsufficientCapitalError{Minimum: minimum.Amount, Provided: remaining},
			dErrors.CodeInvariantViolation, "capital reduction below statutory minimum",
		)
	}
	previous := c.registeredCapital
	c.registeredCapital = domain.JPY(remaining)
	c.netAssets = addToBalance(c.netAssets, -amount.Amount)
	return c, newCapitalDecreased(c, previous, amount, effectiveDate), nil
}

// ChangeName records a new legal name.
func (c Company) ChangeName(newName domain.BilingualName, effectiveDate time.Time) (Company, CompanyNameChanged, error) {
	if err := c.requireActive(); err != nil {
		return Company{}, CompanyNameChanged{}, err
	}
	if newName.Japanese == "" {
		return Company{}, CompanyNameChanged{}, dErrors.New(dErrors.CodeInvalidInput, "legal name is required")
	}
	previous := c.legalName
	c.legalName = newName
	return c, newCompanyNameChanged(c, previous, effectiveDate), nil
}

// ChangeHeadquarters records a head-office relocation.
func (c Company) ChangeHeadquarters(newAddress domain.Address, effectiveDate time.Time) (Company, HeadquartersChanged, error) {
	if err := c.requireActive(); err != nil {
		return Company{}, HeadquartersChanged{}, err
	}
	previous := c.headquarters
	c.headquarters = newAddress
	return c, newHeadquartersChanged(c, previous, effectiveDate), nil
}

// ChangeFiscalYearEnd records a new accounting close date.
func (c Company) ChangeFiscalYearEnd(newEnd domain.FiscalYearEnd, effectiveDate time.Time) (Company, FiscalYearEndChanged, error) {
	if err := c.requireActive(); err != nil {
		return Company{}, FiscalYearEndChanged{}, err
	}
	previous := c.fiscalYearEnd
	c.fiscalYearEnd = newEnd
	return c, newFiscalYearEndChanged(c, previous, effectiveDate), nil
}

// RegisterSeal records a seal registration. The acknowledgment seal is
// accepted but not stored on the snapshot: the event is its only trace (it
// needs no bureau registration, so the company keeps no record of it).
func (c Company) RegisterSeal(sealType SealType, registeredAt time.Time, bureau string) (Company, CorporateSealRegistered, error) {
	if !validSealTypes[sealType] {
		return Company{}, CorporateSealRegistered{}, dErrors.Newf(dErrors.CodeInvalidInput, "invalid seal type %q", sealType)
	}
	if c.status == StatusDissolved {
		return Company{}, CorporateSealRegistered{}, dErrors.Wrap(
			&CompanyNotActiveError{Status: c.status},
			dErrors.CodeConflict, "a dissolved company cannot register seals",
		)
	}
	seal := RegisteredSeal{Registered: true, RegisteredAt: registeredAt, Bureau: bureau}
	switch sealType {
	case SealRepresentative:
		c.seals.Representative = seal
	case SealBank:
		c.seals.Bank = seal
	case SealAcknowledgment:
		// Event-only; see SealAcknowledgment.
	}
	return c, newCorporateSealRegistered(c, sealType, registeredAt, bureau), nil
}

// RetireSeal clears a seal registration. An active company cannot retire its
// representative seal; the acknowledgment seal follows the same event-only
// treatment as registration.
func (c Company) RetireSeal(sealType SealType, retiredAt time.Time) (Company, CorporateSealRetired, error) {
	if !validSealTypes[sealType] {
		return Company{}, CorporateSealRetired{}, dErrors.Newf(dErrors.CodeInvalidInput, "invalid seal type %q", sealType)
	}
	switch sealType {
	case SealRepresentative:
		if !c.seals.Representative.Registered {
			return Company{}, CorporateSealRetired{}, dErrors.Wrap(
				&SealNotRegisteredError{Type: sealType},
				dErrors.CodeConflict, "seal not registered",
			)
		}
		if c.IsActive() {
			return Company{}, CorporateSealRetired{}, dErrors.Wrap(
				&SealRequiredError{Type: sealType},
				dErrors.CodeInvariantViolation, "active company requires its representative seal",
			)
		}
		c.seals.Representative = RegisteredSeal{}
	case SealBank:
		if !c.seals.Bank.Registered {
			return Company{}, CorporateSealRetired{}, dErrors.Wrap(
				&SealNotRegisteredError{Type: sealType},
				dErrors.CodeConflict, "seal not registered",
			)
		}
		c.seals.Bank = RegisteredSeal{}
	case SealAcknowledgment:
		// Event-only; see SealAcknowledgment.
	}
	return c, newCorporateSealRetired(c, sealType, retiredAt), nil
}

// Suspend pauses business activity. No event: suspension is an internal
// administrative state, not a registered fact.
func (c Company) Suspend() (Company, error) {
	if err := c.transitionTo(StatusSuspended); err != nil {
		return Company{}, err
	}
	c.status = StatusSuspended
	return c, nil
}

// Resume returns a suspended company to active status.
func (c Company) Resume() (Company, error) {
	if err := c.transitionTo(StatusActive); err != nil {
		return Company{}, err
	}
	c.status = StatusActive
	return c, nil
}

// InitiateLiquidation starts winding up. Allowed from active or suspended
// status.
func (c Company) InitiateLiquidation(reason string, initiatedAt time.Time) (Company, LiquidationInitiated, error) {
	if err := c.transitionTo(StatusUnderLiquidation); err != nil {
		return Company{}, LiquidationInitiated{}, err
	}
	c.status = StatusUnderLiquidation
	return c, newLiquidationInitiated(c, reason, initiatedAt), nil
}

// Dissolve completes the winding up. Only a company under liquidation can
// dissolve; there is no shortcut from active status.
func (c Company) Dissolve(reason string, dissolvedAt time.Time) (Company, CompanyDissolved, error) {
	if err := c.transitionTo(StatusDissolved); err != nil {
		return Company{}, CompanyDissolved{}, err
	}
	c.status = StatusDissolved
	return c, newCompanyDissolved(c, reason, dissolvedAt), nil
}

// CanPayDividendOf checks the dividend gate: active status and net assets of
// at least ¥3,000,000.
//
// The amount itself is not compared against distributable surplus
// (netAssets − legalReserve − capital); the gate is deliberately only the
// statutory floor. Callers needing a surplus check must compute it from the
// snapshot.
func (c Company) CanPayDividendOf(amount domain.Money) error {
	if err := c.requireActive(); err != nil {
		return err
	}
	if err := requirePositiveYen(amount); err != nil {
		return err
	}
	var netAssets int64
	if c.netAssets != nil {
		netAssets = c.netAssets.Amount
	}
	if netAssets < minimumNetAssetsForDividendYen {
		return dErrors.Wrap(
			&InsufficientNetAssetsError{Required: minimumNetAssetsForDividendYen, Actual: netAssets},
			dErrors.CodeInvariantViolation, "net assets below the dividend floor",
		)
	}
	return nil
}

func (c Company) requireActive() error {
	if !c.IsActive() {
		return dErrors.Wrap(
			&CompanyNotActiveError{Status: c.status},
			dErrors.CodeConflict, "company must be active",
		)
	}
	return nil
}

func (c Company) transitionTo(next CompanyStatus) error {
	if !c.status.CanTransitionTo(next) {
		return dErrors.Wrap(
			&InvalidStatusTransitionError{From: c.status, To: next},
			dErrors.CodeConflict, "status transition not allowed",
		)
	}
	return nil
}

func requirePositiveYen(amount domain.Money) error {
	if !amount.IsJPY() {
		return dErrors.Newf(dErrors.CodeInvalidInput, "amount must be denominated in yen, got %s", amount.Currency)
	}
	if !amount.IsPositive() {
		return dErrors.New(dErrors.CodeInvalidInput, "amount must be positive")
	}
	return nil
}

// addToBalance replaces the tracked balance with a new value; the old Money
// pointer is never written through, so prior snapshots keep their reading.
func addToBalance(balance *domain.Money, deltaYen int64) *domain.Money {
	var current int64
	if balance != nil {
		current = balance.Amount
	}
	next := domain.JPY(current + deltaYen)
	return &next
}
