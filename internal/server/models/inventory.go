package models

type InventoryItem struct {
	ID        int64  `json:"id"`
	ItemType  string `json:"item_type"`
	Quantity  int    `json:"quantity"`
	Threshold int    `json:"threshold"`
}

// LowStock reports whether the quantity has fallen below the reorder threshold.
func (i *InventoryItem) LowStock() bool {
	return i.Quantity < i.Threshold
}
