// Package domain holds the shared value objects of the corporate core: typed
// identifiers and the Money, Address, name, and corporate-number values that
// flow between aggregates.
//
// Identifiers are opaque named UUID types. Construct via the New* generators
// when creating entities, or via the Parse* constructors at trust boundaries;
// direct casting bypasses validation.
package domain

import (
	"github.com/google/uuid"

	dErrors "kaisha/pkg/domain-errors"
)

// Typed identifiers. Distinct named types so the compiler rejects passing a
// DirectorID where a ShareholderID is expected.
type (
	// CompanyID identifies a company aggregate.
	CompanyID uuid.UUID
	// BoardID identifies a board aggregate.
	BoardID uuid.UUID
	// DirectorID identifies a director within a board.
	DirectorID uuid.UUID
	// ShareholderID identifies a shareholding within a register.
	ShareholderID uuid.UUID
	// MeetingID identifies a recorded board or shareholder meeting.
	MeetingID uuid.UUID
	// ResolutionID identifies a recorded resolution.
	ResolutionID uuid.UUID
)

// NewCompanyID generates a fresh company identifier.
func NewCompanyID() CompanyID { return CompanyID(uuid.New()) }

// NewBoardID generates a fresh board identifier.
func NewBoardID() BoardID { return BoardID(uuid.New()) }

// NewDirectorID generates a fresh director identifier.
func NewDirectorID() DirectorID { return DirectorID(uuid.New()) }

// NewShareholderID generates a fresh shareholder identifier.
func NewShareholderID() ShareholderID { return ShareholderID(uuid.New()) }

// NewMeetingID generates a fresh meeting identifier.
func NewMeetingID() MeetingID { return MeetingID(uuid.New()) }

// NewResolutionID generates a fresh resolution identifier.
func NewResolutionID() ResolutionID { return ResolutionID(uuid.New()) }

func (id CompanyID) String() string { return uuid.UUID(id).String() }
func (id BoardID) String() string { return uuid.UUID(id).String() }
func (id DirectorID) String() string { return uuid.UUID(id).String() }
func (id ShareholderID) String() string { return uuid.UUID(id).String() }
func (id MeetingID) String() string { return uuid.UUID(id).String() }
func (id ResolutionID) String() string { return uuid.UUID(id).String() }

// IsZero reports whether the identifier is the nil UUID.
func (id CompanyID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }
func (id BoardID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }
func (id DirectorID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }
func (id ShareholderID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

// parseUUID enforces the shared identifier invariant: a valid, non-empty,
// non-nil UUID.
func parseUUID(raw, label string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "%s cannot be empty", label)
	}
	parsed, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "%s is not a valid UUID", label)
	}
	if parsed == uuid.Nil {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "%s cannot be the nil UUID", label)
	}
	return parsed, nil
}

// ParseCompanyID constructs a CompanyID from external input.
func ParseCompanyID(raw string) (CompanyID, error) {
	parsed, err := parseUUID(raw, "company id")
	return CompanyID(parsed), err
}

// ParseBoardID constructs a BoardID from external input.
func ParseBoardID(raw string) (BoardID, error) {
	parsed, err := parseUUID(raw, "board id")
	return BoardID(parsed), err
}

// ParseDirectorID constructs a DirectorID from external input.
func ParseDirectorID(raw string) (DirectorID, error) {
	parsed, err := parseUUID(raw, "director id")
	return DirectorID(parsed), err
}

// ParseShareholderID constructs a ShareholderID from external input.
func ParseShareholderID(raw string) (ShareholderID, error) {
	parsed, err := parseUUID(raw, "shareholder id")
	return ShareholderID(parsed), err
}
