package api

import (
	"context"
	"io"
	"net/http"

	"github.com/employee7007-droid/construct-deal/internal/models"
)

// VendorClient talks to the /vendors resource domain.
type VendorClient struct {
	c *Client
}

// VendorList is the unwrapped data of GET /vendors.
type VendorList struct {
	Vendors    []models.Vendor   `json:"vendors"`
	Pagination models.Pagination `json:"pagination"`
}

func (v *VendorClient) List(ctx context.Context, p VendorListParams) (*VendorList, error) {
	var out VendorList
	if err := v.c.query(ctx, "/vendors", p.Values(), []Tag{TagVendor}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (v *VendorClient) Get(ctx context.Context, id string) (*models.Vendor, error) {
	var out struct {
		Vendor models.Vendor `json:"vendor"`
	}
	if err := v.c.query(ctx, "/vendors/"+id, nil, []Tag{TagVendor}, &out); err != nil {
		return nil, err
	}
	return &out.Vendor, nil
}

func (v *VendorClient) Create(ctx context.Context, in models.Vendor) (*models.Vendor, error) {
	var out struct {
		Vendor models.Vendor `json:"vendor"`
	}
	if err := v.c.mutate(ctx, http.MethodPost, "/vendors", in, &out, TagVendor); err != nil {
		return nil, err
	}
	return &out.Vendor, nil
}

func (v *VendorClient) Update(ctx context.Context, id string, in models.Vendor) (*models.Vendor, error) {
	var out struct {
		Vendor models.Vendor `json:"vendor"`
	}
	if err := v.c.mutate(ctx, http.MethodPut, "/vendors/"+id, in, &out, TagVendor); err != nil {
		return nil, err
	}
	return &out.Vendor, nil
}

func (v *VendorClient) UploadKYCDocument(ctx context.Context, id, filename string, src io.Reader) error {
	return v.c.Upload(ctx, "/vendors/"+id+"/kyc-documents", "documents", filename, src, TagVendor)
}

func (v *VendorClient) Approve(ctx context.Context, id string) error {
	return v.c.mutate(ctx, http.MethodPost, "/vendors/"+id+"/approve", nil, nil, TagVendor)
}

func (v *VendorClient) Reject(ctx context.Context, id, reason string) error {
	body := map[string]string{"reason": reason}
	return v.c.mutate(ctx, http.MethodPost, "/vendors/"+id+"/reject", body, nil, TagVendor)
}

// Pending lists vendors awaiting KYC review.
func (v *VendorClient) Pending(ctx context.Context, p Page) (*VendorList, error) {
	var out VendorList
	if err := v.c.query(ctx, "/vendors/pending", p.Values(), []Tag{TagVendor}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
