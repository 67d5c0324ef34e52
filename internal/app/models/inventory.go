package models

// InventoryItem is a stock item managed by the staff dashboard. Quantity is
// mutated through ±1 stepper actions and is floor-clamped at zero.
type InventoryItem struct {
	ID          string `json:"id" example:"i1"`
	Name        string `json:"name" example:"Resmas de Papel A4"`
	Quantity    int    `json:"quantity" example:"45"`
	MinQuantity int    `json:"minQuantity" example:"10"`
	Category    string `json:"category" example:"Escritório"`
}

// BelowMinimum reports whether the item fell under its restock threshold.
func (i InventoryItem) BelowMinimum() bool {
	return i.Quantity < i.MinQuantity
}
