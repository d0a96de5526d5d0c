package domain

// Floor is a level inside a warehouse. Listing endpoints return the parent
// warehouse by name, not by id.
type Floor struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	WarehouseName string `json:"warehouseName"`
}

// FloorRequest creates or updates a floor inside a warehouse.
type FloorRequest struct {
	Name        string `json:"name"`
	WarehouseID int    `json:"warehouseId"`
}
