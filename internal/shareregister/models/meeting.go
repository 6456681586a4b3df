package models

import (
	"time"

	"kaisha/pkg/domain"
)

// ShareholderMeetingType classifies a general meeting of shareholders.
type ShareholderMeetingType string

const (
	MeetingAnnualGeneral        ShareholderMeetingType = "annual_general"
	MeetingExtraordinaryGeneral ShareholderMeetingType = "extraordinary_general"
)

// ShareholderMeeting is the minuted record of a general meeting.
type ShareholderMeeting struct {
	ID           domain.MeetingID       `json:"id"`
	Type         ShareholderMeetingType `json:"type"`
	HeldAt       time.Time              `json:"held_at"`
	VotesPresent int64                  `json:"votes_present"`
}

// ShareholderResolutionKind distinguishes the vote threshold a resolution
// needs.
type ShareholderResolutionKind string

const (
	// ResolutionOrdinary passes on a simple majority of votes cast.
	ResolutionOrdinary ShareholderResolutionKind = "ordinary"
	// ResolutionSpecial passes on a two-thirds supermajority.
	ResolutionSpecial ShareholderResolutionKind = "special"
)

// ResolutionStatus is the recorded outcome of a shareholder vote.
type ResolutionStatus string

const (
	ResolutionPassed   ResolutionStatus = "passed"
	ResolutionRejected ResolutionStatus = "rejected"
)

// ShareholderResolution is the minuted record of a shareholder vote.
type ShareholderResolution struct {
	ID           domain.ResolutionID       `json:"id"`
	Kind         ShareholderResolutionKind `json:"kind"`
	Description  string                    `json:"description"`
	VotesFor     int64                     `json:"votes_for"`
	VotesAgainst int64                     `json:"votes_against"`
	Status       ResolutionStatus          `json:"status"`
	ResolvedAt   time.Time                 `json:"resolved_at"`
}
