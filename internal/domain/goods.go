package domain

// Goods is a stocked item with its full storage location denormalized into
// names, matching the listing endpoint's wrapper shape.
type Goods struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Quantity      int    `json:"quantity"`
	Unit          string `json:"unit"`
	CategoryName  string `json:"categoryName"`
	RoomName      string `json:"roomName"`
	FloorName     string `json:"floorName"`
	WarehouseName string `json:"warehouseName"`
	CreatedBy     string `json:"createdBy"`
	CreateDate    string `json:"createDate,omitempty"`
	UpdateDate    string `json:"updateDate,omitempty"`
}

// GoodsRequest creates or updates a stocked item by location ids.
type GoodsRequest struct {
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	Unit        string `json:"unit"`
	CategoryID  int    `json:"categoryId"`
	RoomID      int    `json:"roomId"`
	FloorID     int    `json:"floorId"`
	WarehouseID int    `json:"warehouseId"`
}
