package models

import (
	"time"

	"kaisha/pkg/domain"
)

// ShareholderType classifies the holder for reporting and withholding rules.
type ShareholderType string

const (
	ShareholderIndividual        ShareholderType = "individual"
	ShareholderDomesticCorporate ShareholderType = "domestic_corporate"
	ShareholderForeign           ShareholderType = "foreign"
)

// validShareholderTypes is the single source of truth for holder types.
var validShareholderTypes = map[ShareholderType]bool{
	ShareholderIndividual:        true,
	ShareholderDomesticCorporate: true,
	ShareholderForeign:           true,
}

// ShareClass identifies a class of shares under the articles.
type ShareClass string

const (
	ShareClassCommon    ShareClass = "common"
	ShareClassPreferred ShareClass = "preferred"
	ShareClassClassA    ShareClass = "class_a"
)

// VotingRights returns the votes per share a class carries. Preferred shares
// trade their vote for dividend priority.
func (c ShareClass) VotingRights() int {
	if c == ShareClassPreferred {
		return 0
	}
	return 1
}

// TransferRestriction is the articles' transfer policy.
type TransferRestriction string

const (
	NoRestriction               TransferRestriction = "no_restriction"
	RequiresBoardApproval       TransferRestriction = "requires_board_approval"
	RequiresShareholderApproval TransferRestriction = "requires_shareholder_approval"
	TransferProhibited          TransferRestriction = "prohibited"
)

// validRestrictions is the single source of truth for transfer policies.
var validRestrictions = map[TransferRestriction]bool{
	NoRestriction:               true,
	RequiresBoardApproval:       true,
	RequiresShareholderApproval: true,
	TransferProhibited:          true,
}

// Shareholding is one holder's entry in the register. A holding whose count
// reaches zero is removed from the register, not retained.
type Shareholding struct {
	ShareholderID        domain.ShareholderID `json:"shareholder_id"`
	Type                 ShareholderType      `json:"type"`
	ShareCount           int64                `json:"share_count"`
	Class                ShareClass           `json:"class"`
	AcquisitionDate      time.Time            `json:"acquisition_date"`
	VotingRightsPerShare int                  `json:"voting_rights_per_share"`
}

// VotingPower is the holding's total votes.
func (h Shareholding) VotingPower() int64 {
	return h.ShareCount * int64(h.VotingRightsPerShare)
}
