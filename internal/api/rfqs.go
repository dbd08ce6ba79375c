package api

import (
	"context"
	"io"
	"net/http"

	"github.com/employee7007-droid/construct-deal/internal/models"
)

// RFQClient talks to the /rfqs resource domain.
type RFQClient struct {
	c *Client
}

// RFQList is the unwrapped data of GET /rfqs.
type RFQList struct {
	RFQs       []models.RFQ      `json:"rfqs"`
	Pagination models.Pagination `json:"pagination"`
}

func (r *RFQClient) List(ctx context.Context, p RFQListParams) (*RFQList, error) {
	var out RFQList
	if err := r.c.query(ctx, "/rfqs", p.Values(), []Tag{TagRFQ}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *RFQClient) Get(ctx context.Context, id string) (*models.RFQ, error) {
	var out struct {
		RFQ models.RFQ `json:"rfq"`
	}
	if err := r.c.query(ctx, "/rfqs/"+id, nil, []Tag{TagRFQ}, &out); err != nil {
		return nil, err
	}
	return &out.RFQ, nil
}

func (r *RFQClient) Create(ctx context.Context, in models.CreateRFQ) (*models.RFQ, error) {
	var out struct {
		RFQ models.RFQ `json:"rfq"`
	}
	if err := r.c.mutate(ctx, http.MethodPost, "/rfqs", in, &out, TagRFQ); err != nil {
		return nil, err
	}
	return &out.RFQ, nil
}

func (r *RFQClient) Update(ctx context.Context, id string, in models.CreateRFQ) (*models.RFQ, error) {
	var out struct {
		RFQ models.RFQ `json:"rfq"`
	}
	if err := r.c.mutate(ctx, http.MethodPut, "/rfqs/"+id, in, &out, TagRFQ); err != nil {
		return nil, err
	}
	return &out.RFQ, nil
}

func (r *RFQClient) Publish(ctx context.Context, id string) error {
	return r.c.mutate(ctx, http.MethodPost, "/rfqs/"+id+"/publish", nil, nil, TagRFQ)
}

func (r *RFQClient) Close(ctx context.Context, id string) error {
	return r.c.mutate(ctx, http.MethodPost, "/rfqs/"+id+"/close", nil, nil, TagRFQ)
}

func (r *RFQClient) Cancel(ctx context.Context, id, reason string) error {
	body := map[string]string{"reason": reason}
	return r.c.mutate(ctx, http.MethodPost, "/rfqs/"+id+"/cancel", body, nil, TagRFQ)
}

func (r *RFQClient) AddAddendum(ctx context.Context, id, title, description string) error {
	body := map[string]string{"title": title, "description": description}
	return r.c.mutate(ctx, http.MethodPost, "/rfqs/"+id+"/addenda", body, nil, TagRFQ)
}

func (r *RFQClient) UploadAttachment(ctx context.Context, id, filename string, src io.Reader) error {
	return r.c.Upload(ctx, "/rfqs/"+id+"/attachments", "files", filename, src, TagRFQ)
}
