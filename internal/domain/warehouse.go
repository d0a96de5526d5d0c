package domain

// Warehouse is a top-level storage site.
type Warehouse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// WarehouseRequest creates or renames a warehouse.
type WarehouseRequest struct {
	Name string `json:"name"`
}
