package models

import (
	"fmt"

	"kaisha/pkg/domain"
)

// Closed error taxonomy for the board context. Each type carries the data
// needed to explain the violation; commands wrap these with a
// pkg/domain-errors code so callers can classify with HasCode and recover the
// detail with errors.As.

// TermExceedsMaximumError reports a requested term above the statutory cap.
type TermExceedsMaximumError struct {
	MaxYears       int
	RequestedYears int
}

func (e *TermExceedsMaximumError) Error() string {
	return fmt.Sprintf("term of %d years exceeds maximum of %d", e.RequestedYears, e.MaxYears)
}

// DirectorNotActiveError reports a command that requires active service.
type DirectorNotActiveError struct {
	ID     domain.DirectorID
	Status DirectorStatus
}

func (e *DirectorNotActiveError) Error() string {
	return fmt.Sprintf("director %s is not active (status %s)", e.ID, e.Status)
}

// DirectorAlreadyOnBoardError reports a duplicate appointment.
type DirectorAlreadyOnBoardError struct {
	ID domain.DirectorID
}

func (e *DirectorAlreadyOnBoardError) Error() string {
	return fmt.Sprintf("director %s is already on the board", e.ID)
}

// DirectorNotOnBoardError reports a reference to an unknown director.
type DirectorNotOnBoardError struct {
	ID domain.DirectorID
}

func (e *DirectorNotOnBoardError) Error() string {
	return fmt.Sprintf("director %s is not on the board", e.ID)
}

// CannotRemoveLastDirectorError reports an attempt to leave the board with no
// active director.
type CannotRemoveLastDirectorError struct{}

func (e *CannotRemoveLastDirectorError) Error() string {
	return "cannot remove the last active director"
}

// CannotRemoveRepresentativeDirectorError reports an attempt to remove the
// sitting representative; a successor must be designated first.
type CannotRemoveRepresentativeDirectorError struct {
	ID domain.DirectorID
}

func (e *CannotRemoveRepresentativeDirectorError) Error() string {
	return fmt.Sprintf("director %s is the representative director; designate a successor first", e.ID)
}

// QuorumNotMetError reports a resolution attempted without a quorate meeting.
type QuorumNotMetError struct {
	Required int
	Present  int
}

func (e *QuorumNotMetError) Error() string {
	return fmt.Sprintf("quorum not met: %d present, %d required", e.Present, e.Required)
}

// InsufficientDirectorsError reports a board below its structural headcount
// minimum.
type InsufficientDirectorsError struct {
	Required int
	Actual   int
}

func (e *InsufficientDirectorsError) Error() string {
	return fmt.Sprintf("board has %d active directors, %d required", e.Actual, e.Required)
}

// NoRepresentativeDirectorError reports a board with active directors but no
// valid representative designation.
type NoRepresentativeDirectorError struct{}

func (e *NoRepresentativeDirectorError) Error() string {
	return "board has no representative director"
}

// RepresentativeNotActiveError reports a designated representative who is no
// longer in active service.
type RepresentativeNotActiveError struct {
	ID     domain.DirectorID
	Status DirectorStatus
}

func (e *RepresentativeNotActiveError) Error() string {
	return fmt.Sprintf("representative director %s is not active (status %s)", e.ID, e.Status)
}

// InsufficientOutsideDirectorsError reports an audit-committee board below
// the outside-director minimum.
type InsufficientOutsideDirectorsError struct {
	Required int
	Actual   int
}

func (e *InsufficientOutsideDirectorsError) Error() string {
	return fmt.Sprintf("board has %d outside directors, %d required", e.Actual, e.Required)
}

// OutsideMajorityRequiredError reports a three-committee board where outside
// directors are not a majority.
type OutsideMajorityRequiredError struct {
	Outside int
	Total   int
}

func (e *OutsideMajorityRequiredError) Error() string {
	return fmt.Sprintf("outside directors must hold a majority: %d of %d", e.Outside, e.Total)
}
