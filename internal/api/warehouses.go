package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shahidulislam-dev/warehouse-console/internal/domain"
)

const warehouseBase = "/api/warehouse"

// CreateWarehouse creates a warehouse and returns the backend's message.
func (c *Client) CreateWarehouse(ctx context.Context, req domain.WarehouseRequest) (string, error) {
	var msg string
	if err := c.do(ctx, http.MethodPost, warehouseBase+"/create", req, &msg); err != nil {
		return "", err
	}
	return msg, nil
}

// GetAllWarehouses lists every warehouse.
func (c *Client) GetAllWarehouses(ctx context.Context) ([]domain.Warehouse, error) {
	var warehouses []domain.Warehouse
	if err := c.do(ctx, http.MethodGet, warehouseBase+"/get/all", nil, &warehouses); err != nil {
		return nil, err
	}
	return warehouses, nil
}

// GetWarehouse fetches one warehouse by id.
func (c *Client) GetWarehouse(ctx context.Context, id int) (*domain.Warehouse, error) {
	var warehouse domain.Warehouse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/get/%d", warehouseBase, id), nil, &warehouse); err != nil {
		return nil, err
	}
	return &warehouse, nil
}

// UpdateWarehouse renames a warehouse.
func (c *Client) UpdateWarehouse(ctx context.Context, id int, req domain.WarehouseRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("%s/update/%d", warehouseBase, id), req, nil)
}

// DeleteWarehouse removes a warehouse. Admin and up.
func (c *Client) DeleteWarehouse(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/delete/%d", warehouseBase, id), nil, nil)
}
