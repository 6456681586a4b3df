package events

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kaisha/pkg/domain"
)

type fakeEvent struct {
	name     string
	envelope Envelope
}

func (e fakeEvent) EventName() string { return e.name }
func (e fakeEvent) EventEnvelope() Envelope { return e.envelope }

func TestNewEnvelope(t *testing.T) {
	companyID := domain.NewCompanyID()
	occurredAt := time.Date(2026, 4, 1, 9, 0, 0, 0, time.FixedZone("JST", 9*3600))

	envelope := NewEnvelope(companyID, occurredAt)

	assert.NotEqual(t, uuid.Nil, envelope.EventID)
	assert.Equal(t, companyID, envelope.CompanyID)
	assert.Equal(t, time.UTC, envelope.OccurredAt.Location())
	assert.True(t, envelope.OccurredAt.Equal(occurredAt))

	t.Run("event ids are unique", func(t *testing.T) {
		other := NewEnvelope(companyID, occurredAt)
		assert.NotEqual(t, envelope.EventID, other.EventID)
	})
}

func TestEnvelopeAttribution(t *testing.T) {
	base := NewEnvelope(domain.NewCompanyID(), time.Now())

	enriched := base.
		WithCorrelation("corr-1").
		WithCausation("cause-1").
		WithUser("user-1")

	assert.Equal(t, "corr-1", enriched.CorrelationID)
	assert.Equal(t, "cause-1", enriched.CausationID)
	assert.Equal(t, "user-1", enriched.UserID)
	// The With* helpers copy; the base envelope is untouched.
	assert.Empty(t, base.CorrelationID)
	assert.Empty(t, base.CausationID)
	assert.Empty(t, base.UserID)
}

func TestRecorder(t *testing.T) {
	recorder := NewRecorder()
	envelope := NewEnvelope(domain.NewCompanyID(), time.Now())

	require.NoError(t, recorder.Publish(context.Background(),
		fakeEvent{name: "first", envelope: envelope},
		fakeEvent{name: "second", envelope: envelope},
	))
	require.NoError(t, recorder.Publish(context.Background(),
		fakeEvent{name: "third", envelope: envelope},
	))

	assert.Equal(t, []string{"first", "second", "third"}, recorder.Names())
	assert.Len(t, recorder.Published(), 3)
}
