package services

import (
	"github.com/google/uuid"

	"github.com/erasmusedu/erasmus-portal/internal/app/models"
	"github.com/erasmusedu/erasmus-portal/internal/app/models/dto"
	"github.com/erasmusedu/erasmus-portal/internal/pkg/apperrors"
	"github.com/erasmusedu/erasmus-portal/internal/pkg/validation"
	"github.com/erasmusedu/erasmus-portal/internal/registry"
)

// InventoryService implements the staff dashboard's stock management.
// Quantities move through stepper adjustments and never go below zero.
type InventoryService interface {
	ListItems() []models.InventoryItem
	CreateItem(req dto.InventoryItemRequest) (*models.InventoryItem, error)
	// Adjust adds delta to an item's quantity, clamping the result at zero.
	Adjust(id string, delta int) (*models.InventoryItem, error)
}

type inventoryServiceImpl struct {
	reg *registry.Registry
}

// NewInventoryService creates the stock view-model over the shared registry.
func NewInventoryService(reg *registry.Registry) InventoryService {
	return &inventoryServiceImpl{reg: reg}
}

func (s *inventoryServiceImpl) ListItems() []models.InventoryItem {
	return s.reg.InventoryItems()
}

func (s *inventoryServiceImpl) CreateItem(req dto.InventoryItemRequest) (*models.InventoryItem, error) {
	b := validation.NewBuilder("inventoryItem")
	name := b.Require("name", req.Name)
	category := b.Require("category", req.Category)
	b.Check("quantity", req.Quantity >= 0)
	b.Check("minQuantity", req.MinQuantity >= 0)
	if err := b.Finalize(); err != nil {
		return nil, err
	}

	item := models.InventoryItem{
		ID:          uuid.NewString(),
		Name:        name,
		Quantity:    req.Quantity,
		MinQuantity: req.MinQuantity,
		Category:    category,
	}

	s.reg.UpdateInventoryItems(func(items []models.InventoryItem) []models.InventoryItem {
		return append(items, item)
	})
	return &item, nil
}

func (s *inventoryServiceImpl) Adjust(id string, delta int) (*models.InventoryItem, error) {
	var updated *models.InventoryItem
	s.reg.UpdateInventoryItems(func(items []models.InventoryItem) []models.InventoryItem {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			next := items[i].Quantity + delta
			if next < 0 {
				next = 0
			}
			items[i].Quantity = next
			item := items[i]
			updated = &item
			break
		}
		return items
	})

	if updated == nil {
		return nil, apperrors.ErrInventoryNotFound
	}
	return updated, nil
}
