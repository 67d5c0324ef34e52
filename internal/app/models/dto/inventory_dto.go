package dto

// InventoryItemRequest carries stock item fields for create and update.
type InventoryItemRequest struct {
	Name        string `json:"name" example:"Resmas de Papel A4"`
	Quantity    int    `json:"quantity" example:"45"`
	MinQuantity int    `json:"minQuantity" example:"10"`
	Category    string `json:"category" example:"Escritório"`
}

// AdjustQuantityRequest steps an item quantity. Delta is typically ±1; the
// resulting quantity is floor-clamped at zero.
type AdjustQuantityRequest struct {
	Delta int `json:"delta" binding:"required" example:"1"`
}
