package models

import (
	"fmt"
)

// Closed error taxonomy for the company context, wrapped with
// pkg/domain-errors codes at the command boundary.

// CompanyNotActiveError reports a command that requires active status.
type CompanyNotActiveError struct {
	Status CompanyStatus
}

func (e *CompanyNotActiveError) Error() string {
	return fmt.Sprintf("company is not active (status %s)", e.Status)
}

// InvalidStatusTransitionError reports a lifecycle edge the state machine
// does not allow.
type InvalidStatusTransitionError struct {
	From CompanyStatus
	To   CompanyStatus
}

func (e *InvalidStatusTransitionError) Error() string {
	return fmt.Sprintf("cannot transition company from %s to %s", e.From, e.To)
}

// InsufficientCapitalError reports capital below the statutory minimum for
// the entity type. Amounts are yen.
type InsufficientCapitalError struct {
	Minimum  int64
	Provided int64
}

func (e *InsufficientCapitalError) Error() string {
	return fmt.Sprintf("capital of %d yen is below the statutory minimum of %d", e.Provided, e.Minimum)
}

// InsufficientNetAssetsError reports a dividend blocked by the net-asset
// floor. Amounts are yen.
type InsufficientNetAssetsError struct {
	Required int64
	Actual   int64
}

func (e *InsufficientNetAssetsError) Error() string {
	return fmt.Sprintf("net assets of %d yen are below the %d required for dividends", e.Actual, e.Required)
}

// SealNotRegisteredError reports an operation on a seal the company has not
// registered.
type SealNotRegisteredError struct {
	Type SealType
}

func (e *SealNotRegisteredError) Error() string {
	return fmt.Sprintf("%s seal is not registered", e.Type)
}

// SealRequiredError reports the retirement of a seal the company's status
// requires.
type SealRequiredError struct {
	Type SealType
}

func (e *SealRequiredError) Error() string {
	return fmt.Sprintf("an active company must keep its %s seal registered", e.Type)
}
