package models

import (
	"time"

	"kaisha/pkg/domain"
)

// MeetingType classifies a board meeting.
type MeetingType string

const (
	MeetingTypeRegular       MeetingType = "regular"
	MeetingTypeExtraordinary MeetingType = "extraordinary"
)

// Attendee is a director's attendance record for one meeting. Proxies do not
// count toward quorum.
type Attendee struct {
	DirectorID domain.DirectorID `json:"director_id"`
	Present    bool              `json:"present"`
}

// Meeting is the minuted record of a board meeting. QuorumRequired and
// QuorumMet are derived at recording time from the board's active headcount
// and frozen with the record, so a later change in headcount does not
// retroactively invalidate resolutions of a past meeting.
type Meeting struct {
	ID             domain.MeetingID `json:"id"`
	Type           MeetingType      `json:"type"`
	HeldAt         time.Time        `json:"held_at"`
	Attendees      []Attendee       `json:"attendees"`
	PresentCount   int              `json:"present_count"`
	QuorumRequired int              `json:"quorum_required"`
	QuorumMet      bool             `json:"quorum_met"`
}

// ResolutionType classifies what a board resolution decides.
type ResolutionType string

const (
	ResolutionTypeOrdinary                  ResolutionType = "ordinary"
	ResolutionTypeRepresentativeAppointment ResolutionType = "representative_appointment"
	ResolutionTypeShareTransferApproval     ResolutionType = "share_transfer_approval"
	ResolutionTypeCapitalPolicy             ResolutionType = "capital_policy"
)

// ResolutionStatus is the recorded outcome of a vote.
type ResolutionStatus string

const (
	ResolutionPassed   ResolutionStatus = "passed"
	ResolutionRejected ResolutionStatus = "rejected"
)

// Resolution is the minuted record of a board vote.
type Resolution struct {
	ID           domain.ResolutionID `json:"id"`
	Type         ResolutionType      `json:"type"`
	Description  string              `json:"description"`
	VotesFor     int                 `json:"votes_for"`
	VotesAgainst int                 `json:"votes_against"`
	Abstentions  int                 `json:"abstentions"`
	Status       ResolutionStatus    `json:"status"`
	ResolvedAt   time.Time           `json:"resolved_at"`
}

// resolutionOutcome applies the tie-break rule: a resolution passes only with
// strictly more votes for than against and at least one vote cast. Ties and
// zero-vote outcomes are rejected.
func resolutionOutcome(votesFor, votesAgainst int) ResolutionStatus {
	if votesFor > votesAgainst && votesFor+votesAgainst > 0 {
		return ResolutionPassed
	}
	return ResolutionRejected
}
