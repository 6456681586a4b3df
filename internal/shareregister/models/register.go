package models

import (
	"slices"
	"time"

	"kaisha/pkg/domain"
	dErrors "kaisha/pkg/domain-errors"
)

// ShareholderRegister is the aggregate for a company's share register.
//
// Invariants:
//   - issued shares equal the sum of all holdings at all times (conservation)
//   - issued shares never exceed authorized shares
//   - a holding is removed once its count reaches zero
//
// Issuance raises the issued total; transfers move count between holdings and
// leave the total unchanged. Every command is pure: it returns a new register
// snapshot (collections copied) and leaves the receiver untouched.
type ShareholderRegister struct {
	companyID        domain.CompanyID
	authorizedShares int64
	issuedShares     int64
	parValue         *domain.Money
	holdings         map[domain.ShareholderID]Shareholding
	order            []domain.ShareholderID
	restriction      TransferRestriction
	shareClasses     map[ShareClass]bool
	meetings         []ShareholderMeeting
	resolutions      []ShareholderResolution
}

// NewShareholderRegister validates and builds an empty register. parValue is
// nil for no-par shares.
func NewShareholderRegister(
	companyID domain.CompanyID,
	authorizedShares int64,
	restriction TransferRestriction,
	parValue *domain.Money,
) (ShareholderRegister, error) {
	if companyID.IsZero() {
		return ShareholderRegister{}, dErrors.New(dErrors.CodeInvalidInput, "company id is required")
	}
	if authorizedShares < 1 {
		return ShareholderRegister{}, dErrors.New(dErrors.CodeInvalidInput, "authorized shares must be positive")
	}
	if !validRestrictions[restriction] {
		return ShareholderRegister{}, dErrors.Newf(dErrors.CodeInvalidInput, "invalid transfer restriction %q", restriction)
	}
	if parValue != nil && (!parValue.IsJPY() || !parValue.IsPositive()) {
		return ShareholderRegister{}, dErrors.New(dErrors.CodeInvalidInput, "par value must be a positive yen amount")
	}
	return ShareholderRegister{
		companyID:        companyID,
		authorizedShares: authorizedShares,
		restriction:      restriction,
		parValue:         parValue,
		holdings:         map[domain.ShareholderID]Shareholding{},
		shareClasses:     map[ShareClass]bool{},
	}, nil
}

// CompanyID returns the identifier of the company whose shares are
// registered.
func (r ShareholderRegister) CompanyID() domain.CompanyID { return r.companyID }

// AuthorizedShares returns the articles' issuance ceiling.
func (r ShareholderRegister) AuthorizedShares() int64 { return r.authorizedShares }

// IssuedShares returns the outstanding total.
func (r ShareholderRegister) IssuedShares() int64 { return r.issuedShares }

// ParValue returns the par value, if the shares carry one.
func (r ShareholderRegister) ParValue() (domain.Money, bool) {
	if r.parValue == nil {
		return domain.Money{}, false
	}
	return *r.parValue, true
}

// TransferRestriction returns the articles' transfer policy.
func (r ShareholderRegister) TransferRestriction() TransferRestriction { return r.restriction }

// Shareholding returns one holder's entry, if present.
func (r ShareholderRegister) Shareholding(shareholderID domain.ShareholderID) (Shareholding, bool) {
	h, ok := r.holdings[shareholderID]
	return h, ok
}

// Shareholdings returns all entries in registration order.
func (r ShareholderRegister) Shareholdings() []Shareholding {
	out := make([]Shareholding, 0, len(r.order))
	for _, shareholderID := range r.order {
		out = append(out, r.holdings[shareholderID])
	}
	return out
}

// ShareClasses returns the classes issued so far, in no particular order.
func (r ShareholderRegister) ShareClasses() []ShareClass {
	out := make([]ShareClass, 0, len(r.shareClasses))
	for class := range r.shareClasses {
		out = append(out, class)
	}
	slices.Sort(out)
	return out
}

// Meetings returns the minuted shareholder meetings in record order.
func (r ShareholderRegister) Meetings() []ShareholderMeeting { return slices.Clone(r.meetings) }

// Resolutions returns the minuted shareholder resolutions in record order.
func (r ShareholderRegister) Resolutions() []ShareholderResolution {
	return slices.Clone(r.resolutions)
}

// IssueShares issues new shares to a fresh shareholder and registers the
// holding.
func (r ShareholderRegister) IssueShares(
	holderType ShareholderType,
	count int64,
	class ShareClass,
	issuedAt time.Time,
) (ShareholderRegister, SharesIssued, error) {
	if !validShareholderTypes[holderType] {
		return ShareholderRegister{}, SharesIssued{}, dErrors.Newf(dErrors.CodeInvalidInput, "invalid shareholder type %q", holderType)
	}
	if count < 1 {
		return ShareholderRegister{}, SharesIssued{}, dErrors.New(dErrors.CodeInvalidInput, "share count must be positive")
	}
	if r.issuedShares+count > r.authorizedShares {
		return ShareholderRegister{}, SharesIssued{}, dErrors.Wrap(
			&ExceedsAuthorizedSharesError{Authorized: r.authorizedShares, Issued: r.issuedShares, Requested: count},
			dErrors.CodeInvariantViolation, "issuance exceeds authorized shares",
		)
	}
	holding := Shareholding{
		ShareholderID:        domain.NewShareholderID(),
		Type:                 holderType,
		ShareCount:           count,
		Class:                class,
		AcquisitionDate:      issuedAt,
		VotingRightsPerShare: class.VotingRights(),
	}
	r = r.clone()
	r.holdings[holding.ShareholderID] = holding
	r.order = append(r.order, holding.ShareholderID)
	r.issuedShares += count
	r.shareClasses[class] = true
	return r, newSharesIssued(r, holding), nil
}

// TransferShares moves shares between holders. The issued total is unchanged;
// a source holding drained to zero is removed from the register.
//
// Only board approval is modelled as a command argument: under the
// shareholder-approval policy the approving resolution is minuted on this
// register before the transfer is recorded, so the command itself does not
// re-check it.
func (r ShareholderRegister) TransferShares(
	fromID, toID domain.ShareholderID,
	count int64,
	transferredAt time.Time,
	boardApproved bool,
) (ShareholderRegister, SharesTransferred, error) {
	if r.restriction == TransferProhibited {
		return ShareholderRegister{}, SharesTransferred{}, dErrors.Wrap(
			&InvalidShareTransferError{Reason: "articles prohibit transfer"},
			dErrors.CodeInvariantViolation, "share transfer prohibited",
		)
	}
	if r.restriction == RequiresBoardApproval && !boardApproved {
		return ShareholderRegister{}, SharesTransferred{}, dErrors.Wrap(
			&TransferNotApprovedError{},
			dErrors.CodeInvariantViolation, "share transfer not approved by the board",
		)
	}
	if fromID == toID {
		return ShareholderRegister{}, SharesTransferred{}, dErrors.Wrap(
			&CannotTransferToSelfError{ID: fromID},
			dErrors.CodeInvalidInput, "transfer source and target are the same holder",
		)
	}
	if count < 1 {
		return ShareholderRegister{}, SharesTransferred{}, dErrors.New(dErrors.CodeInvalidInput, "share count must be positive")
	}
	source, ok := r.holdings[fromID]
	if !ok {
		return ShareholderRegister{}, SharesTransferred{}, dErrors.Wrap(
			&ShareholderNotFoundError{ID: fromID},
			dErrors.CodeNotFound, "transferor not in register",
		)
	}
	if count > source.ShareCount {
		return ShareholderRegister{}, SharesTransferred{}, dErrors.Wrap(
			&InsufficientSharesError{Requested: count, Held: source.ShareCount},
			dErrors.CodeInvariantViolation, "transfer exceeds holding",
		)
	}

	r = r.clone()
	source.ShareCount -= count
	if source.ShareCount == 0 {
		delete(r.holdings, fromID)
		r.order = slices.DeleteFunc(r.order, func(shareholderID domain.ShareholderID) bool {
			return shareholderID == fromID
		})
	} else {
		r.holdings[fromID] = source
	}

	target, ok := r.holdings[toID]
	if !ok {
		// A transferee unknown to the register inherits the transferor's
		// classification until the register keeper corrects it.
		target = Shareholding{
			ShareholderID:        toID,
			Type:                 source.Type,
			Class:                source.Class,
			AcquisitionDate:      transferredAt,
			VotingRightsPerShare: source.VotingRightsPerShare,
		}
		r.order = append(r.order, toID)
	}
	target.ShareCount += count
	r.holdings[toID] = target

	return r, newSharesTransferred(r, fromID, toID, count, transferredAt), nil
}

// IncreaseAuthorizedShares raises the articles' issuance ceiling.
func (r ShareholderRegister) IncreaseAuthorizedShares(additional int64) (ShareholderRegister, error) {
	if additional < 1 {
		return ShareholderRegister{}, dErrors.New(dErrors.CodeInvalidInput, "additional authorized shares must be positive")
	}
	r = r.clone()
	r.authorizedShares += additional
	return r, nil
}

// RecordMeeting minutes a shareholder meeting; recording never fails.
func (r ShareholderRegister) RecordMeeting(
	heldAt time.Time,
	meetingType ShareholderMeetingType,
	votesPresent int64,
) (ShareholderRegister, ShareholderMeetingHeld) {
	meeting := ShareholderMeeting{
		ID:           domain.NewMeetingID(),
		Type:         meetingType,
		HeldAt:       heldAt,
		VotesPresent: votesPresent,
	}
	r = r.clone()
	r.meetings = append(r.meetings, meeting)
	return r, newShareholderMeetingHeld(r, meeting)
}

// PassResolution minutes a shareholder vote. Ordinary resolutions need a
// simple majority of votes cast; special resolutions need two thirds.
func (r ShareholderRegister) PassResolution(
	kind ShareholderResolutionKind,
	description string,
	votesFor, votesAgainst int64,
	resolvedAt time.Time,
) (ShareholderRegister, ShareholderResolutionPassed, error) {
	if kind != ResolutionOrdinary && kind != ResolutionSpecial {
		return ShareholderRegister{}, ShareholderResolutionPassed{}, dErrors.Newf(dErrors.CodeInvalidInput, "invalid resolution kind %q", kind)
	}
	if votesFor < 0 || votesAgainst < 0 {
		return ShareholderRegister{}, ShareholderResolutionPassed{}, dErrors.New(dErrors.CodeInvalidInput, "vote counts cannot be negative")
	}
	passed := false
	switch kind {
	case ResolutionOrdinary:
		passed = OrdinaryResolutionPasses(votesFor, votesAgainst)
	case ResolutionSpecial:
		passed = SpecialResolutionPasses(votesFor, votesFor+votesAgainst)
	}
	status := ResolutionRejected
	if passed {
		status = ResolutionPassed
	}
	resolution := ShareholderResolution{
		ID:           domain.NewResolutionID(),
		Kind:         kind,
		Description:  description,
		VotesFor:     votesFor,
		VotesAgainst: votesAgainst,
		Status:       status,
		ResolvedAt:   resolvedAt,
	}
	r = r.clone()
	r.resolutions = append(r.resolutions, resolution)
	return r, newShareholderResolutionPassed(r, resolution), nil
}

// OwnershipPercentage is the holder's share of the issued total, as a
// percentage. Zero for unknown holders and empty registers.
func (r ShareholderRegister) OwnershipPercentage(shareholderID domain.ShareholderID) float64 {
	h, ok := r.holdings[shareholderID]
	if !ok || r.issuedShares == 0 {
		return 0
	}
	return float64(h.ShareCount) * 100 / float64(r.issuedShares)
}

// HasControllingInterest reports whether the holder owns a majority of issued
// shares.
func (r ShareholderRegister) HasControllingInterest(shareholderID domain.ShareholderID) bool {
	h, ok := r.holdings[shareholderID]
	return ok && h.ShareCount*2 > r.issuedShares
}

// HasBlockingMinority reports whether the holder owns more than a third of
// issued shares, enough to block special resolutions.
func (r ShareholderRegister) HasBlockingMinority(shareholderID domain.ShareholderID) bool {
	h, ok := r.holdings[shareholderID]
	return ok && h.ShareCount*3 > r.issuedShares
}

// DividendPerShare splits a total distribution evenly across issued shares,
// truncating to whole yen.
func (r ShareholderRegister) DividendPerShare(total domain.Money) (domain.Money, error) {
	if !total.IsJPY() {
		return domain.Money{}, dErrors.New(dErrors.CodeInvalidInput, "dividends are declared in yen")
	}
	if r.issuedShares == 0 {
		return domain.Money{}, dErrors.Wrap(
			&NoIssuedSharesError{},
			dErrors.CodeInvariantViolation, "cannot compute dividend per share",
		)
	}
	return domain.JPY(total.Amount / r.issuedShares), nil
}

// CheckConservation re-derives the conservation invariant: the issued total
// must equal the sum of all holdings. It can only fail on a snapshot built by
// bypassing the constructors.
func (r ShareholderRegister) CheckConservation() error {
	var sum int64
	for _, h := range r.holdings {
		sum += h.ShareCount
	}
	if sum != r.issuedShares {
		return dErrors.Newf(dErrors.CodeInvariantViolation,
			"issued shares %d do not match holdings total %d", r.issuedShares, sum)
	}
	return nil
}

// OrdinaryResolutionPasses applies the simple-majority rule.
func OrdinaryResolutionPasses(votesFor, votesAgainst int64) bool {
	return votesFor > votesAgainst
}

// SpecialResolutionPasses applies the two-thirds supermajority rule. A
// zero-vote outcome fails.
func SpecialResolutionPasses(votesFor, totalVotes int64) bool {
	return totalVotes > 0 && votesFor*3 >= totalVotes*2
}

// clone copies the register's collections so command results never share
// backing storage with the receiver snapshot.
func (r ShareholderRegister) clone() ShareholderRegister {
	holdings := make(map[domain.ShareholderID]Shareholding, len(r.holdings))
	for shareholderID, h := range r.holdings {
		holdings[shareholderID] = h
	}
	r.holdings = holdings
	classes := make(map[ShareClass]bool, len(r.shareClasses))
	for class, ok := range r.shareClasses {
		classes[class] = ok
	}
	r.shareClasses = classes
	r.order = slices.Clone(r.order)
	r.meetings = slices.Clone(r.meetings)
	r.resolutions = slices.Clone(r.resolutions)
	return r
}
