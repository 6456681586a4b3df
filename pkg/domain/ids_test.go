package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "kaisha/pkg/domain-errors"
)

// TestParseID_Invariants validates the parsing invariant:
// "IDs must be valid, non-empty, non-nil UUIDs"
func TestParseID_Invariants(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseCompanyID("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects invalid format", func(t *testing.T) {
		_, err := ParseDirectorID("not-a-uuid")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects nil UUID", func(t *testing.T) {
		_, err := ParseShareholderID(uuid.Nil.String())
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("accepts valid UUID", func(t *testing.T) {
		validUUID := uuid.New()
		companyID, err := ParseCompanyID(validUUID.String())
		require.NoError(t, err)
		assert.Equal(t, CompanyID(validUUID), companyID)
	})

	t.Run("round-trips through String", func(t *testing.T) {
		boardID := NewBoardID()
		parsed, err := ParseBoardID(boardID.String())
		require.NoError(t, err)
		assert.Equal(t, boardID, parsed)
	})
}

// TestTypeDistinction verifies the compiler enforces type safety.
func TestTypeDistinction(t *testing.T) {
	companyID := CompanyID(uuid.New())
	boardID := BoardID(uuid.New())

	// These would fail to compile if types were interchangeable:
	// var _ CompanyID = boardID   // compile error
	// var _ BoardID = companyID   // compile error

	assert.NotEqual(t, uuid.UUID(companyID), uuid.UUID(boardID))
}

func TestIsZero(t *testing.T) {
	assert.True(t, CompanyID{}.IsZero())
	assert.True(t, DirectorID{}.IsZero())
	assert.False(t, NewCompanyID().IsZero())
	assert.False(t, NewDirectorID().IsZero())
}
