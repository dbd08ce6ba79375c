package api

import (
	"context"
	"net/http"

	"github.com/employee7007-droid/construct-deal/internal/models"
)

// OrganizationClient talks to the /organizations resource domain.
type OrganizationClient struct {
	c *Client
}

func (oc *OrganizationClient) Get(ctx context.Context, id string) (*models.Organization, error) {
	var out struct {
		Organization models.Organization `json:"organization"`
	}
	if err := oc.c.query(ctx, "/organizations/"+id, nil, []Tag{TagOrganization}, &out); err != nil {
		return nil, err
	}
	return &out.Organization, nil
}

func (oc *OrganizationClient) Update(ctx context.Context, id string, in models.Organization) (*models.Organization, error) {
	var out struct {
		Organization models.Organization `json:"organization"`
	}
	if err := oc.c.mutate(ctx, http.MethodPut, "/organizations/"+id, in, &out, TagOrganization); err != nil {
		return nil, err
	}
	return &out.Organization, nil
}

func (oc *OrganizationClient) AddPreferredVendor(ctx context.Context, id, vendorID string) error {
	body := map[string]string{"vendorId": vendorID}
	return oc.c.mutate(ctx, http.MethodPost, "/organizations/"+id+"/preferred-vendors", body, nil, TagOrganization)
}

func (oc *OrganizationClient) RemovePreferredVendor(ctx context.Context, id, vendorID string) error {
	return oc.c.mutate(ctx, http.MethodDelete, "/organizations/"+id+"/preferred-vendors/"+vendorID, nil, nil, TagOrganization)
}
