package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"kaisha/pkg/domain"
	dErrors "kaisha/pkg/domain-errors"
)

var issuedAt = time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

func newTestRegister(t *testing.T, authorized int64, restriction TransferRestriction) ShareholderRegister {
	t.Helper()
	r, err := NewShareholderRegister(domain.NewCompanyID(), authorized, restriction, nil)
	require.NoError(t, err)
	return r
}

func issueTo(t *testing.T, r ShareholderRegister, count int64) (ShareholderRegister, domain.ShareholderID) {
	t.Helper()
	r2, ev, err := r.IssueShares(ShareholderIndividual, count, ShareClassCommon, issuedAt)
	require.NoError(t, err)
	return r2, ev.ShareholderID
}

func TestNewShareholderRegister(t *testing.T) {
	t.Run("builds an empty register", func(t *testing.T) {
		companyID := domain.NewCompanyID()
		parValue := domain.JPY(500)
		r, err := NewShareholderRegister(companyID, 10_000, RequiresBoardApproval, &parValue)
		require.NoError(t, err)

		assert.Equal(t, companyID, r.CompanyID())
		assert.EqualValues(t, 10_000, r.AuthorizedShares())
		assert.Zero(t, r.IssuedShares())
		assert.Empty(t, r.Shareholdings())

		pv, ok := r.ParValue()
		require.True(t, ok)
		assert.EqualValues(t, 500, pv.Amount)
	})

	t.Run("no-par shares carry no par value", func(t *testing.T) {
		r := newTestRegister(t, 1_000, NoRestriction)
		_, ok := r.ParValue()
		assert.False(t, ok)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		usd := domain.Money{Amount: 500, Currency: "USD"}
		tests := []struct {
			name        string
			companyID   domain.CompanyID
			authorized  int64
			restriction TransferRestriction
			parValue    *domain.Money
		}{
			{name: "zero company id", authorized: 1_000, restriction: NoRestriction},
			{name: "zero authorized shares", companyID: domain.NewCompanyID(), restriction: NoRestriction},
			{name: "unknown restriction", companyID: domain.NewCompanyID(), authorized: 1_000, restriction: TransferRestriction("umm")},
			{name: "foreign-currency par value", companyID: domain.NewCompanyID(), authorized: 1_000, restriction: NoRestriction, parValue: &usd},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := NewShareholderRegister(tt.companyID, tt.authorized, tt.restriction, tt.parValue)
				require.Error(t, err)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
			})
		}
	})
}

func TestIssueShares(t *testing.T) {
	t.Run("issuance registers a fresh holder", func(t *testing.T) {
		r := newTestRegister(t, 10_000, NoRestriction)
		r2, ev, err := r.IssueShares(ShareholderDomesticCorporate, 3_000, ShareClassCommon, issuedAt)
		require.NoError(t, err)

		assert.EqualValues(t, 3_000, ev.Count)
		assert.EqualValues(t, 3_000, ev.IssuedTotal)
		assert.False(t, ev.ShareholderID.IsZero())

		holding, ok := r2.Shareholding(ev.ShareholderID)
		require.True(t, ok)
		assert.EqualValues(t, 3_000, holding.ShareCount)
		assert.Equal(t, 1, holding.VotingRightsPerShare)
		require.NoError(t, r2.CheckConservation())

		// The receiver snapshot is untouched.
		assert.Zero(t, r.IssuedShares())
	})

	t.Run("preferred shares carry no vote", func(t *testing.T) {
		r := newTestRegister(t, 10_000, NoRestriction)
		r2, ev, err := r.IssueShares(ShareholderIndividual, 500, ShareClassPreferred, issuedAt)
		require.NoError(t, err)

		holding, _ := r2.Shareholding(ev.ShareholderID)
		assert.Equal(t, 0, holding.VotingRightsPerShare)
		assert.Zero(t, holding.VotingPower())
		assert.ElementsMatch(t, []ShareClass{ShareClassPreferred}, r2.ShareClasses())
	})

	t.Run("issuance cannot exceed the authorized ceiling", func(t *testing.T) {
		r := newTestRegister(t, 1_000, NoRestriction)
		r, _ = issueTo(t, r, 800)

		_, _, err := r.IssueShares(ShareholderIndividual, 300, ShareClassCommon, issuedAt)
		require.Error(t, err)
		var detail *ExceedsAuthorizedSharesError
		require.ErrorAs(t, err, &detail)
		assert.EqualValues(t, 1_000, detail.Authorized)
		assert.EqualValues(t, 800, detail.Issued)
		assert.EqualValues(t, 300, detail.Requested)

		// Issuing exactly to the ceiling is allowed.
		full, _ := issueTo(t, r, 200)
		assert.EqualValues(t, 1_000, full.IssuedShares())
	})

	t.Run("raising the ceiling unblocks issuance", func(t *testing.T) {
		r := newTestRegister(t, 1_000, NoRestriction)
		r, _ = issueTo(t, r, 1_000)

		_, _, err := r.IssueShares(ShareholderIndividual, 1, ShareClassCommon, issuedAt)
		require.Error(t, err)

		r, err = r.IncreaseAuthorizedShares(500)
		require.NoError(t, err)
		r, _ = issueTo(t, r, 500)
		assert.EqualValues(t, 1_500, r.IssuedShares())
		require.NoError(t, r.CheckConservation())
	})

	t.Run("rejects non-positive counts", func(t *testing.T) {
		r := newTestRegister(t, 1_000, NoRestriction)
		_, _, err := r.IssueShares(ShareholderIndividual, 0, ShareClassCommon, issuedAt)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}

func TestTransferShares(t *testing.T) {
	transferredAt := issuedAt.AddDate(0, 6, 0)

	t.Run("transfer conserves the issued total", func(t *testing.T) {
		r := newTestRegister(t, 10_000, NoRestriction)
		r, fromID := issueTo(t, r, 600)
		r, toID := issueTo(t, r, 400)

		r2, ev, err := r.TransferShares(fromID, toID, 250, transferredAt, false)
		require.NoError(t, err)
		assert.EqualValues(t, 250, ev.Count)

		from, _ := r2.Shareholding(fromID)
		to, _ := r2.Shareholding(toID)
		assert.EqualValues(t, 350, from.ShareCount)
		assert.EqualValues(t, 650, to.ShareCount)
		assert.EqualValues(t, 1_000, r2.IssuedShares())
		require.NoError(t, r2.CheckConservation())
	})

	t.Run("a drained holding leaves the register", func(t *testing.T) {
		r := newTestRegister(t, 10_000, NoRestriction)
		r, fromID := issueTo(t, r, 100)
		r, toID := issueTo(t, r, 100)

		r2, _, err := r.TransferShares(fromID, toID, 100, transferredAt, false)
		require.NoError(t, err)

		_, ok := r2.Shareholding(fromID)
		assert.False(t, ok)
		assert.Len(t, r2.Shareholdings(), 1)
		require.NoError(t, r2.CheckConservation())
	})

	t.Run("an unknown transferee inherits the transferor's classification", func(t *testing.T) {
		r := newTestRegister(t, 10_000, NoRestriction)
		r2, ev, err := r.IssueShares(ShareholderForeign, 100, ShareClassClassA, issuedAt)
		require.NoError(t, err)

		newcomer := domain.NewShareholderID()
		r3, _, err := r2.TransferShares(ev.ShareholderID, newcomer, 40, transferredAt, false)
		require.NoError(t, err)

		holding, ok := r3.Shareholding(newcomer)
		require.True(t, ok)
		assert.Equal(t, ShareholderForeign, holding.Type)
		assert.Equal(t, ShareClassClassA, holding.Class)
		assert.Equal(t, transferredAt, holding.AcquisitionDate)
	})

	t.Run("insufficient shares leave the register unchanged", func(t *testing.T) {
		r := newTestRegister(t, 10_000, NoRestriction)
		r, fromID := issueTo(t, r, 100)
		r, toID := issueTo(t, r, 50)

		_, _, err := r.TransferShares(fromID, toID, 150, transferredAt, false)
		require.Error(t, err)
		var detail *InsufficientSharesError
		require.ErrorAs(t, err, &detail)
		assert.EqualValues(t, 150, detail.Requested)
		assert.EqualValues(t, 100, detail.Held)

		from, _ := r.Shareholding(fromID)
		assert.EqualValues(t, 100, from.ShareCount)
		require.NoError(t, r.CheckConservation())
	})

	t.Run("board-approval policy gates the transfer", func(t *testing.T) {
		r := newTestRegister(t, 10_000, RequiresBoardApproval)
		r, fromID := issueTo(t, r, 100)
		r, toID := issueTo(t, r, 100)

		_, _, err := r.TransferShares(fromID, toID, 10, transferredAt, false)
		require.Error(t, err)
		var detail *TransferNotApprovedError
		assert.ErrorAs(t, err, &detail)

		approved, _, err := r.TransferShares(fromID, toID, 10, transferredAt, true)
		require.NoError(t, err)
		require.NoError(t, approved.CheckConservation())
	})

	t.Run("prohibited articles block every transfer", func(t *testing.T) {
		r := newTestRegister(t, 10_000, TransferProhibited)
		r, fromID := issueTo(t, r, 100)
		r, toID := issueTo(t, r, 100)

		_, _, err := r.TransferShares(fromID, toID, 10, transferredAt, true)
		require.Error(t, err)
		var detail *InvalidShareTransferError
		assert.ErrorAs(t, err, &detail)
	})

	t.Run("self-transfer is refused", func(t *testing.T) {
		r := newTestRegister(t, 10_000, NoRestriction)
		r, fromID := issueTo(t, r, 100)

		_, _, err := r.TransferShares(fromID, fromID, 10, transferredAt, false)
		require.Error(t, err)
		var detail *CannotTransferToSelfError
		assert.ErrorAs(t, err, &detail)
	})

	t.Run("unknown transferor is not found", func(t *testing.T) {
		r := newTestRegister(t, 10_000, NoRestriction)
		r, toID := issueTo(t, r, 100)

		_, _, err := r.TransferShares(domain.NewShareholderID(), toID, 10, transferredAt, false)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func TestOwnershipThresholds(t *testing.T) {
	r := newTestRegister(t, 10_000, NoRestriction)
	r, major := issueTo(t, r, 510)
	r, blocker := issueTo(t, r, 340)
	r, minor := issueTo(t, r, 150)

	t.Run("ownership percentage", func(t *testing.T) {
		assert.InDelta(t, 51.0, r.OwnershipPercentage(major), 1e-9)
		assert.InDelta(t, 34.0, r.OwnershipPercentage(blocker), 1e-9)
		assert.Zero(t, r.OwnershipPercentage(domain.NewShareholderID()))
	})

	t.Run("controlling interest needs a strict majority", func(t *testing.T) {
		assert.True(t, r.HasControllingInterest(major))
		assert.False(t, r.HasControllingInterest(blocker))
	})

	t.Run("blocking minority needs strictly over a third", func(t *testing.T) {
		assert.True(t, r.HasBlockingMinority(major))
		assert.True(t, r.HasBlockingMinority(blocker))
		assert.False(t, r.HasBlockingMinority(minor))
	})

	t.Run("exactly one third does not block", func(t *testing.T) {
		r := newTestRegister(t, 10_000, NoRestriction)
		r, third := issueTo(t, r, 100)
		r, _ = issueTo(t, r, 200)
		assert.False(t, r.HasBlockingMinority(third))
	})

	t.Run("exactly half does not control", func(t *testing.T) {
		r := newTestRegister(t, 10_000, NoRestriction)
		r, half := issueTo(t, r, 100)
		r, _ = issueTo(t, r, 100)
		assert.False(t, r.HasControllingInterest(half))
	})
}

func TestResolutionThresholds(t *testing.T) {
	t.Run("ordinary majority", func(t *testing.T) {
		assert.True(t, OrdinaryResolutionPasses(51, 49))
		assert.False(t, OrdinaryResolutionPasses(50, 50))
		assert.False(t, OrdinaryResolutionPasses(0, 0))
	})

	t.Run("special supermajority", func(t *testing.T) {
		assert.True(t, SpecialResolutionPasses(67, 100))
		assert.True(t, SpecialResolutionPasses(2, 3))
		assert.False(t, SpecialResolutionPasses(66, 100))
		assert.False(t, SpecialResolutionPasses(0, 0))
	})
}

func TestShareholderMeetingsAndResolutions(t *testing.T) {
	heldAt := issuedAt.AddDate(1, 2, 0)

	t.Run("meetings are minuted in order", func(t *testing.T) {
		r := newTestRegister(t, 10_000, NoRestriction)
		r, ev := r.RecordMeeting(heldAt, MeetingAnnualGeneral, 900)
		r, _ = r.RecordMeeting(heldAt.AddDate(0, 1, 0), MeetingExtraordinaryGeneral, 400)

		assert.Equal(t, MeetingAnnualGeneral, ev.Type)
		assert.EqualValues(t, 900, ev.VotesPresent)
		require.Len(t, r.Meetings(), 2)
		assert.Equal(t, MeetingExtraordinaryGeneral, r.Meetings()[1].Type)
	})

	t.Run("resolution outcomes follow the kind's threshold", func(t *testing.T) {
		tests := []struct {
			name         string
			kind         ShareholderResolutionKind
			votesFor     int64
			votesAgainst int64
			status       ResolutionStatus
		}{
			{name: "ordinary majority passes", kind: ResolutionOrdinary, votesFor: 51, votesAgainst: 49, status: ResolutionPassed},
			{name: "ordinary tie rejects", kind: ResolutionOrdinary, votesFor: 50, votesAgainst: 50, status: ResolutionRejected},
			{name: "special two thirds passes", kind: ResolutionSpecial, votesFor: 67, votesAgainst: 33, status: ResolutionPassed},
			{name: "special just under two thirds rejects", kind: ResolutionSpecial, votesFor: 66, votesAgainst: 34, status: ResolutionRejected},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				r := newTestRegister(t, 10_000, NoRestriction)
				r2, ev, err := r.PassResolution(tt.kind, "amend articles", tt.votesFor, tt.votesAgainst, heldAt)
				require.NoError(t, err)
				assert.Equal(t, tt.status, ev.Status)
				require.Len(t, r2.Resolutions(), 1)
				assert.Equal(t, tt.status, r2.Resolutions()[0].Status)
			})
		}
	})

	t.Run("rejects an unknown kind and negative votes", func(t *testing.T) {
		r := newTestRegister(t, 10_000, NoRestriction)
		_, _, err := r.PassResolution(ShareholderResolutionKind("acclamation"), "x", 1, 0, heldAt)
		require.Error(t, err)

		_, _, err = r.PassResolution(ResolutionOrdinary, "x", -1, 0, heldAt)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}

func TestDividendPerShare(t *testing.T) {
	t.Run("truncates to whole yen", func(t *testing.T) {
		r := newTestRegister(t, 10_000, NoRestriction)
		r, _ = issueTo(t, r, 300)

		per, err := r.DividendPerShare(domain.JPY(1_000))
		require.NoError(t, err)
		assert.EqualValues(t, 3, per.Amount)
		assert.True(t, per.IsJPY())
	})

	t.Run("empty register cannot distribute", func(t *testing.T) {
		r := newTestRegister(t, 10_000, NoRestriction)
		_, err := r.DividendPerShare(domain.JPY(1_000))
		require.Error(t, err)
		var detail *NoIssuedSharesError
		assert.ErrorAs(t, err, &detail)
	})

	t.Run("foreign currency is refused", func(t *testing.T) {
		r := newTestRegister(t, 10_000, NoRestriction)
		r, _ = issueTo(t, r, 100)
		_, err := r.DividendPerShare(domain.Money{Amount: 1_000, Currency: "USD"})
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}

// RegisterConservationSuite drives longer command sequences and re-checks the
// conservation law after every step.
type RegisterConservationSuite struct {
	suite.Suite

	register ShareholderRegister
	founder  domain.ShareholderID
	investor domain.ShareholderID
}

func TestRegisterConservationSuite(t *testing.T) {
	suite.Run(t, new(RegisterConservationSuite))
}

func (s *RegisterConservationSuite) SetupTest() {
	r, err := NewShareholderRegister(domain.NewCompanyID(), 100_000, NoRestriction, nil)
	s.Require().NoError(err)

	r, founded, err := r.IssueShares(ShareholderIndividual, 6_000, ShareClassCommon, issuedAt)
	s.Require().NoError(err)
	r, invested, err := r.IssueShares(ShareholderDomesticCorporate, 4_000, ShareClassCommon, issuedAt)
	s.Require().NoError(err)

	s.register = r
	s.founder = founded.ShareholderID
	s.investor = invested.ShareholderID
}

func (s *RegisterConservationSuite) TestIssueTransferSequence() {
	r := s.register
	when := issuedAt

	for i := 0; i < 5; i++ {
		when = when.AddDate(0, 1, 0)

		var err error
		r, _, err = r.IssueShares(ShareholderForeign, 1_000, ShareClassCommon, when)
		s.Require().NoError(err)
		s.Require().NoError(r.CheckConservation())

		r, _, err = r.TransferShares(s.founder, s.investor, 500, when, false)
		s.Require().NoError(err)
		s.Require().NoError(r.CheckConservation())
	}

	s.EqualValues(15_000, r.IssuedShares())
	founder, ok := r.Shareholding(s.founder)
	s.Require().True(ok)
	s.EqualValues(3_500, founder.ShareCount)
}

func (s *RegisterConservationSuite) TestFailedCommandsLeaveNoTrace() {
	before := s.register

	_, _, err := s.register.TransferShares(s.founder, s.investor, 7_000, issuedAt, false)
	s.Require().Error(err)

	_, _, err = s.register.IssueShares(ShareholderIndividual, 200_000, ShareClassCommon, issuedAt)
	s.Require().Error(err)

	s.EqualValues(10_000, before.IssuedShares())
	s.Require().NoError(before.CheckConservation())
	founder, ok := before.Shareholding(s.founder)
	s.Require().True(ok)
	s.EqualValues(6_000, founder.ShareCount)
}

func (s *RegisterConservationSuite) TestReturnedCollectionsAreCopies() {
	holdings := s.register.Shareholdings()
	s.Require().NotEmpty(holdings)
	holdings[0].ShareCount = 0

	fresh, ok := s.register.Shareholding(holdings[0].ShareholderID)
	s.Require().True(ok)
	s.NotZero(fresh.ShareCount)
	s.Require().NoError(s.register.CheckConservation())
}

func (s *RegisterConservationSuite) TestControlShiftsWithTransfers() {
	s.True(s.register.HasControllingInterest(s.founder))
	s.False(s.register.HasControllingInterest(s.investor))

	r, _, err := s.register.TransferShares(s.founder, s.investor, 2_000, issuedAt.AddDate(1, 0, 0), false)
	s.Require().NoError(err)

	s.False(r.HasControllingInterest(s.founder))
	s.True(r.HasControllingInterest(s.investor))
	s.True(r.HasBlockingMinority(s.founder))
}
