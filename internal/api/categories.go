package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shahidulislam-dev/warehouse-console/internal/domain"
)

const categoryBase = "/api/goods-category"

// CreateCategory creates a goods category.
func (c *Client) CreateCategory(ctx context.Context, name string) (string, error) {
	var msg string
	if err := c.do(ctx, http.MethodPost, categoryBase+"/create", domain.CategoryRequest{Name: name}, &msg); err != nil {
		return "", err
	}
	return msg, nil
}

// GetAllCategories lists every category.
func (c *Client) GetAllCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := c.do(ctx, http.MethodGet, categoryBase+"/all", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetCategory fetches one category by id.
func (c *Client) GetCategory(ctx context.Context, id int) (*domain.Category, error) {
	var category domain.Category
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", categoryBase, id), nil, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory renames a category.
func (c *Client) UpdateCategory(ctx context.Context, id int, name string) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("%s/update/%d", categoryBase, id), domain.CategoryRequest{Name: name}, nil)
}

// DeleteCategory removes a category. Admin and up.
func (c *Client) DeleteCategory(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/delete/%d", categoryBase, id), nil, nil)
}
