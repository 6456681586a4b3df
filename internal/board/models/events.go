package models

import (
	"time"

	"kaisha/pkg/domain"
	"kaisha/pkg/platform/events"
)

// Event names published by the board context.
const (
	EventNameBoardEstablished                 = "board_established"
	EventNameDirectorAppointed                = "director_appointed"
	EventNameDirectorRemoved                  = "director_removed"
	EventNameDirectorTermRenewed              = "director_term_renewed"
	EventNameRepresentativeDirectorDesignated = "representative_director_designated"
	EventNameBoardMeetingHeld                 = "board_meeting_held"
	EventNameBoardResolutionPassed            = "board_resolution_passed"
)

// BoardEstablished records the constitution of a board.
type BoardEstablished struct {
	Envelope        events.Envelope `json:"envelope"`
	BoardID         domain.BoardID  `json:"board_id"`
	Structure       BoardStructure  `json:"structure"`
	EstablishedDate time.Time       `json:"established_date"`
}

func (e BoardEstablished) EventName() string { return EventNameBoardEstablished }
func (e BoardEstablished) EventEnvelope() events.Envelope { return e.Envelope }

// DirectorAppointed records a director joining the board.
type DirectorAppointed struct {
	Envelope       events.Envelope        `json:"envelope"`
	BoardID        domain.BoardID         `json:"board_id"`
	DirectorID     domain.DirectorID      `json:"director_id"`
	Name           domain.PersonName      `json:"name"`
	Position       DirectorPosition       `json:"position"`
	Classification DirectorClassification `json:"classification"`
	TermYears      int                    `json:"term_years"`
	AppointedAt    time.Time              `json:"appointed_at"`
}

func (e DirectorAppointed) EventName() string { return EventNameDirectorAppointed }
func (e DirectorAppointed) EventEnvelope() events.Envelope { return e.Envelope }

// DirectorRemoved records a director leaving the board.
type DirectorRemoved struct {
	Envelope   events.Envelope   `json:"envelope"`
	BoardID    domain.BoardID    `json:"board_id"`
	DirectorID domain.DirectorID `json:"director_id"`
	RemovedAt  time.Time         `json:"removed_at"`
}

func (e DirectorRemoved) EventName() string { return EventNameDirectorRemoved }
func (e DirectorRemoved) EventEnvelope() events.Envelope { return e.Envelope }

// DirectorTermRenewed records a fresh term of office.
type DirectorTermRenewed struct {
	Envelope   events.Envelope   `json:"envelope"`
	BoardID    domain.BoardID    `json:"board_id"`
	DirectorID domain.DirectorID `json:"director_id"`
	TermYears  int               `json:"term_years"`
	RenewedAt  time.Time         `json:"renewed_at"`
}

func (e DirectorTermRenewed) EventName() string { return EventNameDirectorTermRenewed }
func (e DirectorTermRenewed) EventEnvelope() events.Envelope { return e.Envelope }

// RepresentativeDirectorDesignated records the transfer of signing authority.
// PreviousDirectorID is zero when the board had no prior representative.
type RepresentativeDirectorDesignated struct {
	Envelope           events.Envelope   `json:"envelope"`
	BoardID            domain.BoardID    `json:"board_id"`
	DirectorID         domain.DirectorID `json:"director_id"`
	PreviousDirectorID domain.DirectorID `json:"previous_director_id,omitzero"`
	DesignatedAt       time.Time         `json:"designated_at"`
}

func (e RepresentativeDirectorDesignated) EventName() string {
	return EventNameRepresentativeDirectorDesignated
}
func (e RepresentativeDirectorDesignated) EventEnvelope() events.Envelope { return e.Envelope }

// BoardMeetingHeld records a minuted meeting and its quorum outcome.
type BoardMeetingHeld struct {
	Envelope       events.Envelope  `json:"envelope"`
	BoardID        domain.BoardID   `json:"board_id"`
	MeetingID      domain.MeetingID `json:"meeting_id"`
	Type           MeetingType      `json:"type"`
	HeldAt         time.Time        `json:"held_at"`
	PresentCount   int              `json:"present_count"`
	QuorumRequired int              `json:"quorum_required"`
	QuorumMet      bool             `json:"quorum_met"`
}

func (e BoardMeetingHeld) EventName() string { return EventNameBoardMeetingHeld }
func (e BoardMeetingHeld) EventEnvelope() events.Envelope { return e.Envelope }

// BoardResolutionPassed records a vote and its outcome. The name follows the
// register's minute-book convention; rejected outcomes are carried with
// Status set accordingly.
type BoardResolutionPassed struct {
	Envelope     events.Envelope     `json:"envelope"`
	BoardID      domain.BoardID      `json:"board_id"`
	ResolutionID domain.ResolutionID `json:"resolution_id"`
	Type         ResolutionType      `json:"type"`
	Description  string              `json:"description"`
	VotesFor     int                 `json:"votes_for"`
	VotesAgainst int                 `json:"votes_against"`
	Abstentions  int                 `json:"abstentions"`
	Status       ResolutionStatus    `json:"status"`
	ResolvedAt   time.Time           `json:"resolved_at"`
}

func (e BoardResolutionPassed) EventName() string { return EventNameBoardResolutionPassed }
func (e BoardResolutionPassed) EventEnvelope() events.Envelope { return e.Envelope }

func newBoardEstablished(b Board) BoardEstablished {
	return BoardEstablished{
		Envelope:        events.NewEnvelope(b.companyID, b.establishedDate),
		BoardID:         b.id,
		Structure:       b.structure,
		EstablishedDate: b.establishedDate,
	}
}

func newDirectorAppointed(b Board, d Director) DirectorAppointed {
	return DirectorAppointed{
		Envelope:       events.NewEnvelope(b.companyID, d.Term.StartDate),
		BoardID:        b.id,
		DirectorID:     d.ID,
		Name:           d.Name,
		Position:       d.Position,
		Classification: d.Classification,
		TermYears:      d.Term.Years,
		AppointedAt:    d.Term.StartDate,
	}
}

func newDirectorRemoved(b Board, directorID domain.DirectorID, removedAt time.Time) DirectorRemoved {
	return DirectorRemoved{
		Envelope:   events.NewEnvelope(b.companyID, removedAt),
		BoardID:    b.id,
		DirectorID: directorID,
		RemovedAt:  removedAt,
	}
}

func newDirectorTermRenewed(b Board, d Director, renewedAt time.Time) DirectorTermRenewed {
	return DirectorTermRenewed{
		Envelope:   events.NewEnvelope(b.companyID, renewedAt),
		BoardID:    b.id,
		DirectorID: d.ID,
		TermYears:  d.Term.Years,
		RenewedAt:  renewedAt,
	}
}

func newRepresentativeDesignated(b Board, directorID, previousID domain.DirectorID, designatedAt time.Time) RepresentativeDirectorDesignated {
	return RepresentativeDirectorDesignated{
		Envelope:           events.NewEnvelope(b.companyID, designatedAt),
		BoardID:            b.id,
		DirectorID:         directorID,
		PreviousDirectorID: previousID,
		DesignatedAt:       designatedAt,
	}
}

func newBoardMeetingHeld(b Board, m Meeting) BoardMeetingHeld {
	return BoardMeetingHeld{
		Envelope:       events.NewEnvelope(b.companyID, m.HeldAt),
		BoardID:        b.id,
		MeetingID:      m.ID,
		Type:           m.Type,
		HeldAt:         m.HeldAt,
		PresentCount:   m.PresentCount,
		QuorumRequired: m.QuorumRequired,
		QuorumMet:      m.QuorumMet,
	}
}

func newBoardResolutionPassed(b Board, r Resolution) BoardResolutionPassed {
	return BoardResolutionPassed{
		Envelope:     events.NewEnvelope(b.companyID, r.ResolvedAt),
		BoardID:      b.id,
		ResolutionID: r.ID,
		Type:         r.Type,
		Description:  r.Description,
		VotesFor:     r.VotesFor,
		VotesAgainst: r.VotesAgainst,
		Abstentions:  r.Abstentions,
		Status:       r.Status,
		ResolvedAt:   r.ResolvedAt,
	}
}
