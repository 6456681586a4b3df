// Package events defines the transport-agnostic contract between the
// corporate core and its external consumers. Commands that represent a fact
// return exactly one DomainEvent alongside the new aggregate snapshot; how
// those events reach the financial, HR, compliance, and operations contexts
// (bus, outbox, retries, ordering) is the caller's concern and plugs in
// behind the Publisher port.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	id "kaisha/pkg/domain"
)

// Envelope carries the metadata common to every domain event.
type Envelope struct {
	EventID       uuid.UUID    `json:"event_id"`
	OccurredAt    time.Time    `json:"occurred_at"`
	CompanyID     id.CompanyID `json:"company_id"`
	CorrelationID string       `json:"correlation_id,omitempty"`
	CausationID   string       `json:"causation_id,omitempty"`
	UserID        string       `json:"user_id,omitempty"`
}

// NewEnvelope stamps a fresh envelope for a fact that occurred at the given
// time. Correlation, causation, and user attribution are attached by the
// orchestrating layer via the With* copies.
func NewEnvelope(companyID id.CompanyID, occurredAt time.Time) Envelope {
	return Envelope{
		EventID:    uuid.New(),
		OccurredAt: occurredAt.UTC(),
		CompanyID:  companyID,
	}
}

// WithCorrelation returns a copy carrying the correlation identifier.
func (e Envelope) WithCorrelation(correlationID string) Envelope {
	e.CorrelationID = correlationID
	return e
}

// WithCausation returns a copy carrying the causing event's identifier.
func (e Envelope) WithCausation(causationID string) Envelope {
	e.CausationID = causationID
	return e
}

// WithUser returns a copy attributing the fact to a user.
func (e Envelope) WithUser(userID string) Envelope {
	e.UserID = userID
	return e
}

// DomainEvent is an immutable fact emitted by an aggregate command.
type DomainEvent interface {
	// EventName is the stable, consumer-facing name of the fact.
	EventName() string
	// EventEnvelope returns the event's metadata envelope.
	EventEnvelope() Envelope
}

// Publisher delivers events to external consumers. Implementations live
// outside this module; delivery, retry, and cross-aggregate ordering are
// theirs to guarantee.
type Publisher interface {
	Publish(ctx context.Context, evts ...DomainEvent) error
}

// Recorder is an in-memory Publisher for tests and sample wiring. It keeps
// events in publish order.
type Recorder struct {
	published []DomainEvent
}

// NewRecorder builds an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Publish appends the events to the recording.
func (r *Recorder) Publish(_ context.Context, evts ...DomainEvent) error {
	r.published = append(r.published, evts...)
	return nil
}

// Published returns the recorded events in publish order.
func (r *Recorder) Published() []DomainEvent {
	out := make([]DomainEvent, len(r.published))
	copy(out, r.published)
	return out
}

// Names returns the event names in publish order.
func (r *Recorder) Names() []string {
	names := make([]string, len(r.published))
	for i, evt := range r.published {
		names[i] = evt.EventName()
	}
	return names
}
