package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shahidulislam-dev/warehouse-console/internal/domain"
)

const roomBase = "/api/room"

// CreateRoom creates a room on a floor.
func (c *Client) CreateRoom(ctx context.Context, req domain.RoomRequest) (string, error) {
	var msg string
	if err := c.do(ctx, http.MethodPost, roomBase+"/create", req, &msg); err != nil {
		return "", err
	}
	return msg, nil
}

// GetAllRooms lists every room.
func (c *Client) GetAllRooms(ctx context.Context) ([]domain.Room, error) {
	var rooms []domain.Room
	if err := c.do(ctx, http.MethodGet, roomBase+"/get/all", nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// GetRoomsByWarehouse lists the rooms of one warehouse.
func (c *Client) GetRoomsByWarehouse(ctx context.Context, warehouseID int) ([]domain.Room, error) {
	var rooms []domain.Room
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/get/by-warehouse/%d", roomBase, warehouseID), nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// GetRoomsByFloor lists the rooms of one floor within a warehouse.
func (c *Client) GetRoomsByFloor(ctx context.Context, floorID, warehouseID int) ([]domain.Room, error) {
	var rooms []domain.Room
	path := fmt.Sprintf("%s/get/by/floor/%d/warehouse/%d", roomBase, floorID, warehouseID)
	if err := c.do(ctx, http.MethodGet, path, nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// GetRoom fetches one room by id.
func (c *Client) GetRoom(ctx context.Context, id int) (*domain.Room, error) {
	var room domain.Room
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/get/%d", roomBase, id), nil, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

// UpdateRoom updates a room's name or parent floor.
func (c *Client) UpdateRoom(ctx context.Context, id int, req domain.RoomRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("%s/update/%d", roomBase, id), req, nil)
}

// DeleteRoom removes a room. Admin and up.
func (c *Client) DeleteRoom(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/delete/%d", roomBase, id), nil, nil)
}
