package models

import (
	"time"

	"kaisha/pkg/domain"
	"kaisha/pkg/platform/events"
)

// Event names published by the share-register context.
const (
	EventNameSharesIssued                = "shares_issued"
	EventNameSharesTransferred           = "shares_transferred"
	EventNameShareholderMeetingHeld      = "shareholder_meeting_held"
	EventNameShareholderResolutionPassed = "shareholder_resolution_passed"
)

// SharesIssued records an issuance and the resulting outstanding total.
type SharesIssued struct {
	Envelope      events.Envelope      `json:"envelope"`
	ShareholderID domain.ShareholderID `json:"shareholder_id"`
	Type          ShareholderType      `json:"type"`
	Count         int64                `json:"count"`
	Class         ShareClass           `json:"class"`
	IssuedAt      time.Time            `json:"issued_at"`
	IssuedTotal   int64                `json:"issued_total"`
}

func (e SharesIssued) EventName() string { return EventNameSharesIssued }
func (e SharesIssued) EventEnvelope() events.Envelope { return e.Envelope }

// SharesTransferred records a transfer between holders. The issued total is
// unchanged by construction.
type SharesTransferred struct {
	Envelope      events.Envelope      `json:"envelope"`
	FromID        domain.ShareholderID `json:"from_id"`
	ToID          domain.ShareholderID `json:"to_id"`
	Count         int64                `json:"count"`
	TransferredAt time.Time            `json:"transferred_at"`
}

func (e SharesTransferred) EventName() string { return EventNameSharesTransferred }
func (e SharesTransferred) EventEnvelope() events.Envelope { return e.Envelope }

// ShareholderMeetingHeld records a minuted general meeting.
type ShareholderMeetingHeld struct {
	Envelope     events.Envelope        `json:"envelope"`
	MeetingID    domain.MeetingID       `json:"meeting_id"`
	Type         ShareholderMeetingType `json:"type"`
	HeldAt       time.Time              `json:"held_at"`
	VotesPresent int64                  `json:"votes_present"`
}

func (e ShareholderMeetingHeld) EventName() string { return EventNameShareholderMeetingHeld }
func (e ShareholderMeetingHeld) EventEnvelope() events.Envelope { return e.Envelope }

// ShareholderResolutionPassed records a shareholder vote and its outcome.
type ShareholderResolutionPassed struct {
	Envelope     events.Envelope           `json:"envelope"`
	ResolutionID domain.ResolutionID       `json:"resolution_id"`
	Kind         ShareholderResolutionKind `json:"kind"`
	Description  string                    `json:"description"`
	VotesFor     int64                     `json:"votes_for"`
	VotesAgainst int64                     `json:"votes_against"`
	Status       ResolutionStatus          `json:"status"`
	ResolvedAt   time.Time                 `json:"resolved_at"`
}

func (e ShareholderResolutionPassed) EventName() string { return EventNameShareholderResolutionPassed }
func (e ShareholderResolutionPassed) EventEnvelope() events.Envelope { return e.Envelope }

func newSharesIssued(r ShareholderRegister, h Shareholding) SharesIssued {
	return SharesIssued{
		Envelope:      events.NewEnvelope(r.companyID, h.AcquisitionDate),
		ShareholderID: h.ShareholderID,
		Type:          h.Type,
		Count:         h.ShareCount,
		Class:         h.Class,
		IssuedAt:      h.AcquisitionDate,
		IssuedTotal:   r.issuedShares,
	}
}

func newSharesTransferred(r ShareholderRegister, fromID, toID domain.ShareholderID, count int64, transferredAt time.Time) SharesTransferred {
	return SharesTransferred{
		Envelope:      events.NewEnvelope(r.companyID, transferredAt),
		FromID:        fromID,
		ToID:          toID,
		Count:         count,
		TransferredAt: transferredAt,
	}
}

func newShareholderMeetingHeld(r ShareholderRegister, m ShareholderMeeting) ShareholderMeetingHeld {
	return ShareholderMeetingHeld{
		Envelope:     events.NewEnvelope(r.companyID, m.HeldAt),
		MeetingID:    m.ID,
		Type:         m.Type,
		HeldAt:       m.HeldAt,
		VotesPresent: m.VotesPresent,
	}
}

func newShareholderResolutionPassed(r ShareholderRegister, res ShareholderResolution) ShareholderResolutionPassed {
	return ShareholderResolutionPassed{
		Envelope:     events.NewEnvelope(r.companyID, res.ResolvedAt),
		ResolutionID: res.ID,
		Kind:         res.Kind,
		Description:  res.Description,
		VotesFor:     res.VotesFor,
		VotesAgainst: res.VotesAgainst,
		Status:       res.Status,
		ResolvedAt:   res.ResolvedAt,
	}
}
