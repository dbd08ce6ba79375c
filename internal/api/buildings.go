package api

import (
	"context"
	"net/http"

	"github.com/employee7007-droid/construct-deal/internal/models"
)

// BuildingClient talks to the /buildings resource domain.
type BuildingClient struct {
	c *Client
}

func (b *BuildingClient) List(ctx context.Context, p Page) ([]models.Building, error) {
	var out struct {
		Buildings []models.Building `json:"buildings"`
	}
	if err := b.c.query(ctx, "/buildings", p.Values(), []Tag{TagBuilding}, &out); err != nil {
		return nil, err
	}
	return out.Buildings, nil
}

func (b *BuildingClient) Get(ctx context.Context, id string) (*models.Building, error) {
	var out struct {
		Building models.Building `json:"building"`
	}
	if err := b.c.query(ctx, "/buildings/"+id, nil, []Tag{TagBuilding}, &out); err != nil {
		return nil, err
	}
	return &out.Building, nil
}

func (b *BuildingClient) Create(ctx context.Context, in models.Building) (*models.Building, error) {
	var out struct {
		Building models.Building `json:"building"`
	}
	if err := b.c.mutate(ctx, http.MethodPost, "/buildings", in, &out, TagBuilding); err != nil {
		return nil, err
	}
	return &out.Building, nil
}

func (b *BuildingClient) Update(ctx context.Context, id string, in models.Building) (*models.Building, error) {
	var out struct {
		Building models.Building `json:"building"`
	}
	if err := b.c.mutate(ctx, http.MethodPut, "/buildings/"+id, in, &out, TagBuilding); err != nil {
		return nil, err
	}
	return &out.Building, nil
}

func (b *BuildingClient) Delete(ctx context.Context, id string) error {
	return b.c.mutate(ctx, http.MethodDelete, "/buildings/"+id, nil, nil, TagBuilding)
}
