package api

import (
	"context"
	"net/http"

	"github.com/employee7007-droid/construct-deal/internal/models"
)

// RatingClient talks to the /ratings resource domain.
type RatingClient struct {
	c *Client
}

func (rc *RatingClient) Create(ctx context.Context, in models.CreateRating) (*models.Rating, error) {
	var out struct {
		Rating models.Rating `json:"rating"`
	}
	// vendor rating averages change with each new rating
	if err := rc.c.mutate(ctx, http.MethodPost, "/ratings", in, &out, TagRating, TagVendor); err != nil {
		return nil, err
	}
	return &out.Rating, nil
}

// ForVendor lists published ratings for a vendor profile page.
func (rc *RatingClient) ForVendor(ctx context.Context, vendorID string, p Page) ([]models.Rating, error) {
	var out struct {
		Ratings []models.Rating `json:"ratings"`
	}
	if err := rc.c.query(ctx, "/ratings/vendors/"+vendorID, p.Values(), []Tag{TagRating}, &out); err != nil {
		return nil, err
	}
	return out.Ratings, nil
}
