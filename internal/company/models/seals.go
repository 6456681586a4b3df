package models

import "time"

// SealType identifies a corporate seal.
type SealType string

const (
	// SealRepresentative is the jitsuin registered with the legal affairs
	// bureau; it carries the company's signing authority.
	SealRepresentative SealType = "representative"
	// SealBank is the ginkoin registered with the company's bank.
	SealBank SealType = "bank"
	// SealAcknowledgment is the mitomein used for routine acknowledgments.
	// It needs no registration and is not tracked on the company snapshot;
	// RegisterSeal accepts it for the event trail only.
	SealAcknowledgment SealType = "acknowledgment"
)

// validSealTypes is the single source of truth for seal types.
var validSealTypes = map[SealType]bool{
	SealRepresentative: true,
	SealBank:           true,
	SealAcknowledgment: true,
}

// RegisteredSeal is one seal's registration record. The zero value means the
// seal is not registered.
type RegisteredSeal struct {
	Registered   bool      `json:"registered"`
	RegisteredAt time.Time `json:"registered_at,omitzero"`
	Bureau       string    `json:"bureau,omitempty"`
}

// CorporateSeals holds the company's tracked seal registrations. The
// acknowledgment seal is deliberately absent (see SealAcknowledgment).
type CorporateSeals struct {
	Representative RegisteredSeal `json:"representative"`
	Bank           RegisteredSeal `json:"bank"`
}
