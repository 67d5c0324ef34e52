package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erasmusedu/erasmus-portal/internal/pkg/apperrors"
)

func TestFinalizePassesWithAllFields(t *testing.T) {
	b := NewBuilder("user")
	name := b.Require("name", "  Ana  ")
	email := b.RequireEmail("email", "ana@erasmus.com")
	b.RequirePositive("capacity", 20)

	require.NoError(t, b.Finalize())
	assert.Equal(t, "Ana", name, "required values come back trimmed")
	assert.Equal(t, "ana@erasmus.com", email)
}

func TestFinalizeCollectsEveryFailure(t *testing.T) {
	b := NewBuilder("class")
	b.Require("name", "   ")
	b.RequireEmail("email", "not-an-email")
	b.RequirePositive("capacity", 0)
	b.RequireOneOf("status", "paused", "active", "inactive")
	b.Check("role", false)

	err := b.Finalize()
	require.Error(t, err)

	var fieldsErr *FieldsError
	require.True(t, errors.As(err, &fieldsErr))
	assert.Equal(t, "class", fieldsErr.Entity)
	assert.Equal(t, []string{"name", "email", "capacity", "status", "role"}, fieldsErr.Fields)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestRequireOneOfAcceptsListedValue(t *testing.T) {
	b := NewBuilder("record")
	got := b.RequireOneOf("type", "income", "income", "expense")

	assert.Equal(t, "income", got)
	assert.NoError(t, b.Finalize())
}
