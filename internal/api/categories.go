package api

import (
	"context"
	"net/http"

	"github.com/employee7007-droid/construct-deal/internal/models"
)

// CategoryClient talks to the /categories resource domain.
type CategoryClient struct {
	c *Client
}

func (cc *CategoryClient) List(ctx context.Context, p CategoryListParams) ([]models.Category, error) {
	var out struct {
		Categories []models.Category `json:"categories"`
	}
	if err := cc.c.query(ctx, "/categories", p.Values(), []Tag{TagCategory}, &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

// Tree returns the full category hierarchy with children nested.
func (cc *CategoryClient) Tree(ctx context.Context) ([]models.Category, error) {
	var out struct {
		Categories []models.Category `json:"categories"`
	}
	if err := cc.c.query(ctx, "/categories/tree", nil, []Tag{TagCategory}, &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

func (cc *CategoryClient) Create(ctx context.Context, in models.Category) (*models.Category, error) {
	var out struct {
		Category models.Category `json:"category"`
	}
	if err := cc.c.mutate(ctx, http.MethodPost, "/categories", in, &out, TagCategory); err != nil {
		return nil, err
	}
	return &out.Category, nil
}

func (cc *CategoryClient) Update(ctx context.Context, id string, in models.Category) (*models.Category, error) {
	var out struct {
		Category models.Category `json:"category"`
	}
	if err := cc.c.mutate(ctx, http.MethodPut, "/categories/"+id, in, &out, TagCategory); err != nil {
		return nil, err
	}
	return &out.Category, nil
}

func (cc *CategoryClient) Delete(ctx context.Context, id string) error {
	return cc.c.mutate(ctx, http.MethodDelete, "/categories/"+id, nil, nil, TagCategory)
}
