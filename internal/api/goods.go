package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shahidulislam-dev/warehouse-console/internal/domain"
)

const goodsBase = "/api/goods"

// CreateGoods stocks a new item.
func (c *Client) CreateGoods(ctx context.Context, req domain.GoodsRequest) (string, error) {
	var msg string
	if err := c.do(ctx, http.MethodPost, goodsBase+"/create", req, &msg); err != nil {
		return "", err
	}
	return msg, nil
}

// GetAllGoods lists every stocked item.
func (c *Client) GetAllGoods(ctx context.Context) ([]domain.Goods, error) {
	var goods []domain.Goods
	if err := c.do(ctx, http.MethodGet, goodsBase+"/get/all", nil, &goods); err != nil {
		return nil, err
	}
	return goods, nil
}

// GetGoodsByWarehouse lists the items stocked in one warehouse.
func (c *Client) GetGoodsByWarehouse(ctx context.Context, warehouseID int) ([]domain.Goods, error) {
	var goods []domain.Goods
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/get/warehouse/%d", goodsBase, warehouseID), nil, &goods); err != nil {
		return nil, err
	}
	return goods, nil
}

// GetGoods fetches one item by id.
func (c *Client) GetGoods(ctx context.Context, id int) (*domain.Goods, error) {
	var item domain.Goods
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/get/%d", goodsBase, id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateGoods updates a stocked item.
func (c *Client) UpdateGoods(ctx context.Context, id int, req domain.GoodsRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("%s/update/%d", goodsBase, id), req, nil)
}

// DeleteGoods removes a stocked item. Admin and up.
func (c *Client) DeleteGoods(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/delete/%d", goodsBase, id), nil, nil)
}
