package models

import (
	"time"

	"kaisha/pkg/domain"
	dErrors "kaisha/pkg/domain-errors"
)

// MaxTermYears is the Companies-Act ceiling on a director's term of office.
// It applies at appointment and at every renewal.
const MaxTermYears = 2

// DirectorPosition is the office a director holds on the board.
type DirectorPosition string

const (
	PositionChairman               DirectorPosition = "chairman"
	PositionPresident              DirectorPosition = "president"
	PositionVicePresident          DirectorPosition = "vice_president"
	PositionSeniorManagingDirector DirectorPosition = "senior_managing_director"
	PositionManagingDirector       DirectorPosition = "managing_director"
	PositionDirector               DirectorPosition = "director"
	PositionOutsideDirector        DirectorPosition = "outside_director"
)

// validPositions is the single source of truth for board positions.
var validPositions = map[DirectorPosition]bool{
	PositionChairman:               true,
	PositionPresident:              true,
	PositionVicePresident:          true,
	PositionSeniorManagingDirector: true,
	PositionManagingDirector:       true,
	PositionDirector:               true,
	PositionOutsideDirector:        true,
}

// MaxTermFor returns the statutory term ceiling for a position. Currently the
// two-year cap applies uniformly; the indirection keeps position-specific
// caps a local change.
func MaxTermFor(DirectorPosition) int {
	return MaxTermYears
}

// DirectorClassification distinguishes inside, outside, and independent
// directors for committee-structure headcount rules.
type DirectorClassification string

const (
	ClassificationInside      DirectorClassification = "inside"
	ClassificationOutside     DirectorClassification = "outside"
	ClassificationIndependent DirectorClassification = "independent"
)

// IsOutside reports whether the classification counts toward outside-director
// minimums. Independent directors are outside directors with an additional
// independence attestation, so they count.
func (c DirectorClassification) IsOutside() bool {
	return c == ClassificationOutside || c == ClassificationIndependent
}

// DirectorStatus is a director's service state.
type DirectorStatus string

const (
	DirectorStatusActive      DirectorStatus = "active"
	DirectorStatusTermExpired DirectorStatus = "term_expired"
	DirectorStatusResigned    DirectorStatus = "resigned"
	DirectorStatusDismissed   DirectorStatus = "dismissed"
	DirectorStatusDeceased    DirectorStatus = "deceased"
)

// RegistrationStatus tracks the director's entry in the commercial register.
type RegistrationStatus string

const (
	RegistrationPending      RegistrationStatus = "pending"
	RegistrationRegistered   RegistrationStatus = "registered"
	RegistrationDeregistered RegistrationStatus = "deregistered"
)

// Registration pairs the register state with its effective date. The date is
// zero while the entry is pending.
type Registration struct {
	Status        RegistrationStatus `json:"status"`
	EffectiveDate time.Time          `json:"effective_date,omitzero"`
}

// TermOfOffice is a director's appointment period.
type TermOfOffice struct {
	StartDate time.Time `json:"start_date"`
	Years     int       `json:"years"`
}

// ExpiresAt derives the end of the term from its start and length.
func (t TermOfOffice) ExpiresAt() time.Time {
	return t.StartDate.AddDate(t.Years, 0, 0)
}

// Director is a single board member: identity, classification, term, and
// representative designation.
//
// Invariants:
//   - Term length is at most MaxTermYears at appointment and every renewal
//   - A non-active director is never the representative
//   - ID and Name are immutable after construction
//   - Terminal statuses (resigned, dismissed, deceased) stamp a
//     deregistration date; the value is retained for history, never deleted
//
// Every command is pure: it returns a new Director value and leaves the
// receiver untouched. Mutating a Director copy cannot alienate a snapshot
// held elsewhere because every field is a value type.
type Director struct {
	ID               domain.DirectorID      `json:"id"`
	Name             domain.PersonName      `json:"name"`
	Position         DirectorPosition       `json:"position"`
	Classification   DirectorClassification `json:"classification"`
	Term             TermOfOffice           `json:"term"`
	Status           DirectorStatus         `json:"status"`
	IsRepresentative bool                   `json:"is_representative"`
	Registration     Registration           `json:"registration"`
}

// NewDirector validates and builds an active director with a pending register
// entry.
func NewDirector(
	directorID domain.DirectorID,
	name domain.PersonName,
	position DirectorPosition,
	classification DirectorClassification,
	termYears int,
	appointedAt time.Time,
) (Director, error) {
	if directorID.IsZero() {
		return Director{}, dErrors.New(dErrors.CodeInvalidInput, "director id is required")
	}
	if !validPositions[position] {
		return Director{}, dErrors.Newf(dErrors.CodeInvalidInput, "invalid director position %q", position)
	}
	if termYears < 1 {
		return Director{}, dErrors.New(dErrors.CodeInvalidInput, "director term must be at least one year")
	}
	if maxYears := MaxTermFor(position); termYears > maxYears {
		return Director{}, dErrors.Wrap(
			&TermExceedsMaximumError{MaxYears: maxYears, RequestedYears: termYears},
			dErrors.CodeInvariantViolation, "director term exceeds statutory maximum",
		)
	}
	return Director{
		ID:             directorID,
		Name:           name,
		Position:       position,
		Classification: classification,
		Term:           TermOfOffice{StartDate: appointedAt, Years: termYears},
		Status:         DirectorStatusActive,
		Registration:   Registration{Status: RegistrationPending},
	}, nil
}

// IsActive reports whether the director is currently in office.
func (d Director) IsActive() bool {
	return d.Status == DirectorStatusActive
}

// IsOutside reports whether the director counts toward outside-director
// minimums.
func (d Director) IsOutside() bool {
	return d.Classification.IsOutside()
}

// DesignateAsRepresentative flags the director as representative.
func (d Director) DesignateAsRepresentative() (Director, error) {
	if !d.IsActive() {
		return Director{}, dErrors.Wrap(
			&DirectorNotActiveError{ID: d.ID, Status: d.Status},
			dErrors.CodeInvariantViolation, "only an active director can be representative",
		)
	}
	d.IsRepresentative = true
	return d, nil
}

// RemoveRepresentativeDesignation clears the representative flag. Always
// succeeds; clearing an unflagged director is a no-op.
func (d Director) RemoveRepresentativeDesignation() Director {
	d.IsRepresentative = false
	return d
}

// RenewTerm starts a fresh term and restores the director to active service.
func (d Director) RenewTerm(newTermYears int, renewedAt time.Time) (Director, error) {
	if newTermYears < 1 {
		return Director{}, dErrors.New(dErrors.CodeInvalidInput, "director term must be at least one year")
	}
	if maxYears := MaxTermFor(d.Position); newTermYears > maxYears {
		return Director{}, dErrors.Wrap(
			&TermExceedsMaximumError{MaxYears: maxYears, RequestedYears: newTermYears},
			dErrors.CodeInvariantViolation, "renewed term exceeds statutory maximum",
		)
	}
	d.Term = TermOfOffice{StartDate: renewedAt, Years: newTermYears}
	d.Status = DirectorStatusActive
	return d, nil
}

// Resign ends service voluntarily and stamps the deregistration date.
func (d Director) Resign(resignedAt time.Time) Director {
	return d.terminate(DirectorStatusResigned, resignedAt)
}

// Dismiss ends service by shareholder resolution and stamps the
// deregistration date.
func (d Director) Dismiss(dismissedAt time.Time) Director {
	return d.terminate(DirectorStatusDismissed, dismissedAt)
}

// Decease records the director's death and stamps the deregistration date.
func (d Director) Decease(deceasedAt time.Time) Director {
	return d.terminate(DirectorStatusDeceased, deceasedAt)
}

// ExpireTerm marks the term as lapsed. The register entry is left as-is: an
// expired director stays registered until reappointed or deregistered.
func (d Director) ExpireTerm() Director {
	d.Status = DirectorStatusTermExpired
	d.IsRepresentative = false
	return d
}

// MarkRegistered records the commercial-register entry date.
func (d Director) MarkRegistered(registeredAt time.Time) Director {
	d.Registration = Registration{Status: RegistrationRegistered, EffectiveDate: registeredAt}
	return d
}

func (d Director) terminate(status DirectorStatus, effectiveAt time.Time) Director {
	d.Status = status
	d.IsRepresentative = false
	d.Registration = Registration{Status: RegistrationDeregistered, EffectiveDate: effectiveAt}
	return d
}
