package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erasmusedu/erasmus-portal/internal/app/models/dto"
	"github.com/erasmusedu/erasmus-portal/internal/pkg/apperrors"
	"github.com/erasmusedu/erasmus-portal/internal/registry"
	"github.com/erasmusedu/erasmus-portal/internal/seed"
)

func newTestInventoryService(t *testing.T) InventoryService {
	t.Helper()
	reg := registry.New()
	seed.Apply(reg)
	return NewInventoryService(reg)
}

func TestAdjustStepsQuantity(t *testing.T) {
	svc := newTestInventoryService(t)

	item, err := svc.Adjust("i1", 1)
	require.NoError(t, err)
	assert.Equal(t, 46, item.Quantity)

	item, err = svc.Adjust("i1", -6)
	require.NoError(t, err)
	assert.Equal(t, 40, item.Quantity)
}

func TestAdjustClampsAtZero(t *testing.T) {
	svc := newTestInventoryService(t)

	item, err := svc.Adjust("i1", -1000)
	require.NoError(t, err)
	assert.Equal(t, 0, item.Quantity)

	// A further decrement stays at zero.
	item, err = svc.Adjust("i1", -1)
	require.NoError(t, err)
	assert.Equal(t, 0, item.Quantity)
}

func TestAdjustUnknownItem(t *testing.T) {
	svc := newTestInventoryService(t)

	_, err := svc.Adjust("missing", 1)
	assert.ErrorIs(t, err, apperrors.ErrInventoryNotFound)
}

func TestCreateItem(t *testing.T) {
	svc := newTestInventoryService(t)

	item, err := svc.CreateItem(dto.InventoryItemRequest{
		Name:        "Marcadores",
		Quantity:    12,
		MinQuantity: 4,
		Category:    "Escritório",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.False(t, item.BelowMinimum())

	items := svc.ListItems()
	require.Len(t, items, 2)
	assert.Equal(t, item.ID, items[1].ID)
}

func TestCreateItemValidation(t *testing.T) {
	svc := newTestInventoryService(t)

	_, err := svc.CreateItem(dto.InventoryItemRequest{Quantity: -1})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
