package client

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"todolist-api/domain/dto"
)

func (c *Client) ListCategories(ctx context.Context, page, perPage int) (*Page[dto.CategoryResponse], error) {
	return listPage[dto.CategoryResponse](ctx, c, "/categories", pageQuery(page, perPage))
}

func (c *Client) GetCategory(ctx context.Context, id uuid.UUID) (*dto.CategoryResponse, error) {
	var out dto.CategoryResponse
	if _, err := c.do(ctx, http.MethodGet, "/categories/"+id.String(), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	var out dto.CategoryResponse
	if _, err := c.do(ctx, http.MethodPost, "/categories", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id uuid.UUID, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	var out dto.CategoryResponse
	if _, err := c.do(ctx, http.MethodPut, "/categories/"+id.String(), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	_, err := c.do(ctx, http.MethodDelete, "/categories/"+id.String(), nil, nil, nil)
	return err
}
