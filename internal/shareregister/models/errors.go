package models

import (
	"fmt"

	"kaisha/pkg/domain"
)

// Closed error taxonomy for the share-register context, wrapped with
// pkg/domain-errors codes at the command boundary.

// ExceedsAuthorizedSharesError reports an issuance above the authorized
// ceiling.
type ExceedsAuthorizedSharesError struct {
	Authorized int64
	Issued     int64
	Requested  int64
}

func (e *ExceedsAuthorizedSharesError) Error() string {
	return fmt.Sprintf("issuing %d shares exceeds authorized %d (issued %d)", e.Requested, e.Authorized, e.Issued)
}

// TransferNotApprovedError reports a transfer lacking the board approval the
// articles require.
type TransferNotApprovedError struct{}

func (e *TransferNotApprovedError) Error() string {
	return "share transfer requires board approval"
}

// InvalidShareTransferError reports a transfer the articles prohibit.
type InvalidShareTransferError struct {
	Reason string
}

func (e *InvalidShareTransferError) Error() string {
	return "invalid share transfer: " + e.Reason
}

// CannotTransferToSelfError reports a transfer where source and target are
// the same holder.
type CannotTransferToSelfError struct {
	ID domain.ShareholderID
}

func (e *CannotTransferToSelfError) Error() string {
	return fmt.Sprintf("shareholder %s cannot transfer shares to itself", e.ID)
}

// ShareholderNotFoundError reports a reference to a holder absent from the
// register.
type ShareholderNotFoundError struct {
	ID domain.ShareholderID
}

func (e *ShareholderNotFoundError) Error() string {
	return fmt.Sprintf("shareholder %s is not in the register", e.ID)
}

// InsufficientSharesError reports a transfer above the source holding.
type InsufficientSharesError struct {
	Requested int64
	Held      int64
}

func (e *InsufficientSharesError) Error() string {
	return fmt.Sprintf("cannot transfer %d shares, holder has %d", e.Requested, e.Held)
}

// NoIssuedSharesError reports a per-share computation on an empty register.
type NoIssuedSharesError struct{}

func (e *NoIssuedSharesError) Error() string {
	return "register has no issued shares"
}
