package domain

// Room is a storage room on a floor.
type Room struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	FloorName     string `json:"floorName"`
	WarehouseName string `json:"warehouseName"`
}

// RoomRequest creates or updates a room; the floor determines the warehouse.
type RoomRequest struct {
	Name    string `json:"name"`
	FloorID int    `json:"floorId"`
}
