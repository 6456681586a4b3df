package models

import (
	"slices"
	"time"

	"kaisha/pkg/domain"
	dErrors "kaisha/pkg/domain-errors"
)

// BoardStructure is the governance structure the articles adopt. It drives
// headcount and outside-director minimums.
type BoardStructure string

const (
	// StructureWithoutBoard is a company with directors but no constituted
	// board of directors.
	StructureWithoutBoard BoardStructure = "without_board"
	// StructureWithStatutoryAuditors is a board supervised by kansayaku.
	StructureWithStatutoryAuditors BoardStructure = "with_statutory_auditors"
	// StructureWithAuditCommittee is a board with an audit and supervisory
	// committee.
	StructureWithAuditCommittee BoardStructure = "with_audit_committee"
	// StructureWithThreeCommittees is a board with nominating, audit, and
	// compensation committees.
	StructureWithThreeCommittees BoardStructure = "with_three_committees"
)

// validStructures is the single source of truth for board structures.
var validStructures = map[BoardStructure]bool{
	StructureWithoutBoard:          true,
	StructureWithStatutoryAuditors: true,
	StructureWithAuditCommittee:    true,
	StructureWithThreeCommittees:   true,
}

// MinimumDirectors is the statutory active-director floor for a structure.
func (s BoardStructure) MinimumDirectors() int {
	if s == StructureWithoutBoard {
		return 1
	}
	return 3
}

// Board is the aggregate for a company's governing board: a keyed collection
// of directors plus the minuted meetings and resolutions.
//
// Invariants:
//   - active-director count meets the structure's minimum (1 without a
//     board, 3 otherwise)
//   - while any director is active, exactly one is flagged representative
//     and that director is itself active
//   - with_audit_committee requires at least 2 active outside directors;
//     with_three_committees requires outside directors to hold a majority
//
// Commands enforce only their own local precondition; global validity is the
// derived Validate query, checked on demand. Every command is pure: it
// returns a new Board snapshot (collections copied) and leaves the receiver
// untouched.
type Board struct {
	id               domain.BoardID
	companyID        domain.CompanyID
	structure        BoardStructure
	directors        map[domain.DirectorID]Director
	order            []domain.DirectorID
	representativeID domain.DirectorID
	meetings         []Meeting
	resolutions      []Resolution
	establishedDate  time.Time
}

// NewBoard validates and builds an empty board, emitting BoardEstablished.
func NewBoard(
	boardID domain.BoardID,
	companyID domain.CompanyID,
	structure BoardStructure,
	establishedDate time.Time,
) (Board, BoardEstablished, error) {
	if boardID.IsZero() {
		return Board{}, BoardEstablished{}, dErrors.New(dErrors.CodeInvalidInput, "board id is required")
	}
	if companyID.IsZero() {
		return Board{}, BoardEstablished{}, dErrors.New(dErrors.CodeInvalidInput, "company id is required")
	}
	if !validStructures[structure] {
		return Board{}, BoardEstablished{}, dErrors.Newf(dErrors.CodeInvalidInput, "invalid board structure %q", structure)
	}
	b := Board{
		id:              boardID,
		companyID:       companyID,
		structure:       structure,
		directors:       map[domain.DirectorID]Director{},
		establishedDate: establishedDate,
	}
	return b, newBoardEstablished(b), nil
}

// ID returns the board identifier.
func (b Board) ID() domain.BoardID { return b.id }

// CompanyID returns the owning company's identifier.
func (b Board) CompanyID() domain.CompanyID { return b.companyID }

// Structure returns the governance structure.
func (b Board) Structure() BoardStructure { return b.structure }

// EstablishedDate returns the date the board was constituted.
func (b Board) EstablishedDate() time.Time { return b.establishedDate }

// Director returns the director with the given id, if on the board.
func (b Board) Director(directorID domain.DirectorID) (Director, bool) {
	d, ok := b.directors[directorID]
	return d, ok
}

// Directors returns all directors, historical included, in appointment order.
func (b Board) Directors() []Director {
	out := make([]Director, 0, len(b.order))
	for _, directorID := range b.order {
		out = append(out, b.directors[directorID])
	}
	return out
}

// RepresentativeDirectorID returns the designated representative, if any.
func (b Board) RepresentativeDirectorID() (domain.DirectorID, bool) {
	return b.representativeID, !b.representativeID.IsZero()
}

// Meetings returns the minuted meetings in record order.
func (b Board) Meetings() []Meeting { return slices.Clone(b.meetings) }

// Resolutions returns the minuted resolutions in record order.
func (b Board) Resolutions() []Resolution { return slices.Clone(b.resolutions) }

// LatestMeeting returns the most recently recorded meeting, if any.
func (b Board) LatestMeeting() (Meeting, bool) {
	if len(b.meetings) == 0 {
		return Meeting{}, false
	}
	return b.meetings[len(b.meetings)-1], true
}

// ActiveDirectorCount counts directors in active service.
func (b Board) ActiveDirectorCount() int {
	count := 0
	for _, d := range b.directors {
		if d.IsActive() {
			count++
		}
	}
	return count
}

// OutsideDirectorCount counts active outside (or independent) directors.
func (b Board) OutsideDirectorCount() int {
	count := 0
	for _, d := range b.directors {
		if d.IsActive() && d.IsOutside() {
			count++
		}
	}
	return count
}

// Quorum is the majority of active directors, rounded up.
func (b Board) Quorum() int {
	return (b.ActiveDirectorCount() + 1) / 2
}

// AddDirector appoints a director to the board.
func (b Board) AddDirector(d Director) (Board, DirectorAppointed, error) {
	if _, exists := b.directors[d.ID]; exists {
		return Board{}, DirectorAppointed{}, dErrors.Wrap(
			&DirectorAlreadyOnBoardError{ID: d.ID},
			dErrors.CodeConflict, "director already appointed",
		)
	}
	b = b.clone()
	b.directors[d.ID] = d
	b.order = append(b.order, d.ID)
	return b, newDirectorAppointed(b, d), nil
}

// RemoveDirector marks a director resigned and deregisters them. The entry is
// retained for history. The sitting representative cannot be removed; a
// successor must be designated first.
func (b Board) RemoveDirector(directorID domain.DirectorID, removedAt time.Time) (Board, DirectorRemoved, error) {
	d, ok := b.directors[directorID]
	if !ok {
		return Board{}, DirectorRemoved{}, dErrors.Wrap(
			&DirectorNotOnBoardError{ID: directorID},
			dErrors.CodeNotFound, "director not on board",
		)
	}
	remaining := b.ActiveDirectorCount()
	if d.IsActive() {
		remaining--
	}
	if remaining == 0 {
		return Board{}, DirectorRemoved{}, dErrors.Wrap(
			&CannotRemoveLastDirectorError{},
			dErrors.CodeInvariantViolation, "board must retain at least one active director",
		)
	}
	if b.representativeID == directorID {
		return Board{}, DirectorRemoved{}, dErrors.Wrap(
			&CannotRemoveRepresentativeDirectorError{ID: directorID},
			dErrors.CodeInvariantViolation, "cannot remove the representative director",
		)
	}
	b = b.clone()
	b.directors[directorID] = d.Resign(removedAt)
	return b, newDirectorRemoved(b, directorID, removedAt), nil
}

// DesignateRepresentativeDirector designates the director with legal signing
// authority. The prior holder's flag is cleared as part of the same
// transition.
func (b Board) DesignateRepresentativeDirector(directorID domain.DirectorID, designatedAt time.Time) (Board, RepresentativeDirectorDesignated, error) {
	d, ok := b.directors[directorID]
	if !ok {
		return Board{}, RepresentativeDirectorDesignated{}, dErrors.Wrap(
			&DirectorNotOnBoardError{ID: directorID},
			dErrors.CodeNotFound, "director not on board",
		)
	}
	designated, err := d.DesignateAsRepresentative()
	if err != nil {
		return Board{}, RepresentativeDirectorDesignated{}, err
	}
	b = b.clone()
	previousID := b.representativeID
	if prev, ok := b.directors[previousID]; ok {
		b.directors[previousID] = prev.RemoveRepresentativeDesignation()
	}
	b.directors[directorID] = designated
	b.representativeID = directorID
	return b, newRepresentativeDesignated(b, directorID, previousID, designatedAt), nil
}

// RenewDirectorTerm starts a fresh term for a director, restoring active
// service.
func (b Board) RenewDirectorTerm(directorID domain.DirectorID, newTermYears int, renewedAt time.Time) (Board, DirectorTermRenewed, error) {
	d, ok := b.directors[directorID]
	if !ok {
		return Board{}, DirectorTermRenewed{}, dErrors.Wrap(
			&DirectorNotOnBoardError{ID: directorID},
			dErrors.CodeNotFound, "director not on board",
		)
	}
	renewed, err := d.RenewTerm(newTermYears, renewedAt)
	if err != nil {
		return Board{}, DirectorTermRenewed{}, err
	}
	b = b.clone()
	b.directors[directorID] = renewed
	return b, newDirectorTermRenewed(b, renewed, renewedAt), nil
}

// ExpireOverdueTerms marks every active director whose term has lapsed as of
// the given date. A lapsed representative loses the designation with the
// status.
func (b Board) ExpireOverdueTerms(asOf time.Time) Board {
	b = b.clone()
	for directorID, d := range b.directors {
		if d.IsActive() && !d.Term.ExpiresAt().After(asOf) {
			b.directors[directorID] = d.ExpireTerm()
			if b.representativeID == directorID {
				b.representativeID = domain.DirectorID{}
			}
		}
	}
	return b
}

// RecordMeeting minutes a meeting. Quorum is derived from attendance against
// the current active headcount and frozen with the record; recording never
// fails.
func (b Board) RecordMeeting(heldAt time.Time, meetingType MeetingType, attendees []Attendee) (Board, BoardMeetingHeld) {
	present := 0
	for _, a := range attendees {
		if a.Present {
			present++
		}
	}
	required := b.Quorum()
	meeting := Meeting{
		ID:             domain.NewMeetingID(),
		Type:           meetingType,
		HeldAt:         heldAt,
		Attendees:      slices.Clone(attendees),
		PresentCount:   present,
		QuorumRequired: required,
		QuorumMet:      present >= required,
	}
	b = b.clone()
	b.meetings = append(b.meetings, meeting)
	return b, newBoardMeetingHeld(b, meeting)
}

// PassResolution minutes a vote taken at the most recent meeting. The meeting
// must have been quorate. A tie or a zero-vote outcome records as rejected.
func (b Board) PassResolution(
	resolutionType ResolutionType,
	description string,
	votesFor, votesAgainst, abstentions int,
	resolvedAt time.Time,
) (Board, BoardResolutionPassed, error) {
	latest, ok := b.LatestMeeting()
	if !ok || !latest.QuorumMet {
		present := 0
		if ok {
			present = latest.PresentCount
		}
		return Board{}, BoardResolutionPassed{}, dErrors.Wrap(
			&QuorumNotMetError{Required: b.Quorum(), Present: present},
			dErrors.CodeInvariantViolation, "resolution requires a quorate meeting",
		)
	}
	resolution := Resolution{
		ID:           domain.NewResolutionID(),
		Type:         resolutionType,
		Description:  description,
		VotesFor:     votesFor,
		VotesAgainst: votesAgainst,
		Abstentions:  abstentions,
		Status:       resolutionOutcome(votesFor, votesAgainst),
		ResolvedAt:   resolvedAt,
	}
	b = b.clone()
	b.resolutions = append(b.resolutions, resolution)
	return b, newBoardResolutionPassed(b, resolution), nil
}

// Validate checks the board's global invariants: headcount minimum, a single
// active representative while any director is active, and the
// structure-specific outside-director rules. Commands do not run this
// eagerly; the orchestrating layer queries it where the sequence requires a
// valid board.
func (b Board) Validate() error {
	active := b.ActiveDirectorCount()
	if minimum := b.structure.MinimumDirectors(); active < minimum {
		return dErrors.Wrap(
			&InsufficientDirectorsError{Required: minimum, Actual: active},
			dErrors.CodeInvariantViolation, "board below minimum headcount",
		)
	}
	if active > 0 {
		rep, ok := b.directors[b.representativeID]
		if !ok || !rep.IsRepresentative {
			return dErrors.Wrap(
				&NoRepresentativeDirectorError{},
				dErrors.CodeInvariantViolation, "board requires a representative director",
			)
		}
		if !rep.IsActive() {
			return dErrors.Wrap(
				&RepresentativeNotActiveError{ID: rep.ID, Status: rep.Status},
				dErrors.CodeInvariantViolation, "representative director must be active",
			)
		}
	}
	outside := b.OutsideDirectorCount()
	switch b.structure {
	case StructureWithAuditCommittee:
		if outside < 2 {
			return dErrors.Wrap(
				&InsufficientOutsideDirectorsError{Required: 2, Actual: outside},
				dErrors.CodeInvariantViolation, "audit committee requires two outside directors",
			)
		}
	case StructureWithThreeCommittees:
		if outside*2 < active {
			return dErrors.Wrap(
				&OutsideMajorityRequiredError{Outside: outside, Total: active},
				dErrors.CodeInvariantViolation, "three-committee structure requires an outside majority",
			)
		}
	}
	return nil
}

// clone copies the board's collections so command results never share backing
// storage with the receiver snapshot.
func (b Board) clone() Board {
	directors := make(map[domain.DirectorID]Director, len(b.directors))
	for directorID, d := range b.directors {
		directors[directorID] = d
	}
	b.directors = directors
	b.order = slices.Clone(b.order)
	b.meetings = slices.Clone(b.meetings)
	b.resolutions = slices.Clone(b.resolutions)
	return b
}
