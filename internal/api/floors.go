package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shahidulislam-dev/warehouse-console/internal/domain"
)

const floorBase = "/api/floor"

// CreateFloor creates a floor inside a warehouse.
func (c *Client) CreateFloor(ctx context.Context, req domain.FloorRequest) (string, error) {
	var msg string
	if err := c.do(ctx, http.MethodPost, floorBase+"/create", req, &msg); err != nil {
		return "", err
	}
	return msg, nil
}

// GetAllFloors lists every floor across warehouses.
func (c *Client) GetAllFloors(ctx context.Context) ([]domain.Floor, error) {
	var floors []domain.Floor
	if err := c.do(ctx, http.MethodGet, floorBase+"/get/all", nil, &floors); err != nil {
		return nil, err
	}
	return floors, nil
}

// GetFloorsByWarehouse lists the floors of one warehouse.
func (c *Client) GetFloorsByWarehouse(ctx context.Context, warehouseID int) ([]domain.Floor, error) {
	var floors []domain.Floor
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/get/by-warehouse/%d", floorBase, warehouseID), nil, &floors); err != nil {
		return nil, err
	}
	return floors, nil
}

// GetFloor fetches one floor by id.
func (c *Client) GetFloor(ctx context.Context, id int) (*domain.Floor, error) {
	var floor domain.Floor
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/get/%d", floorBase, id), nil, &floor); err != nil {
		return nil, err
	}
	return &floor, nil
}

// UpdateFloor updates a floor's name or parent warehouse.
func (c *Client) UpdateFloor(ctx context.Context, id int, req domain.FloorRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("%s/update/%d", floorBase, id), req, nil)
}

// DeleteFloor removes a floor. Admin and up.
func (c *Client) DeleteFloor(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/delete/%d", floorBase, id), nil, nil)
}
