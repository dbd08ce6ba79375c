package api

import (
	"context"
	"io"
	"net/http"

	"github.com/employee7007-droid/construct-deal/internal/models"
)

// DisputeClient talks to the /disputes resource domain.
type DisputeClient struct {
	c *Client
}

// DisputeList is the unwrapped data of GET /disputes.
type DisputeList struct {
	Disputes   []models.Dispute  `json:"disputes"`
	Pagination models.Pagination `json:"pagination"`
}

func (dc *DisputeClient) Create(ctx context.Context, in models.CreateDispute) (*models.Dispute, error) {
	var out struct {
		Dispute models.Dispute `json:"dispute"`
	}
	if err := dc.c.mutate(ctx, http.MethodPost, "/disputes", in, &out, TagDispute); err != nil {
		return nil, err
	}
	return &out.Dispute, nil
}

func (dc *DisputeClient) List(ctx context.Context, p StatusListParams) (*DisputeList, error) {
	var out DisputeList
	if err := dc.c.query(ctx, "/disputes", p.Values(), []Tag{TagDispute}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (dc *DisputeClient) Get(ctx context.Context, id string) (*models.Dispute, error) {
	var out struct {
		Dispute models.Dispute `json:"dispute"`
	}
	if err := dc.c.query(ctx, "/disputes/"+id, nil, []Tag{TagDispute}, &out); err != nil {
		return nil, err
	}
	return &out.Dispute, nil
}

func (dc *DisputeClient) UploadEvidence(ctx context.Context, id, filename string, src io.Reader) error {
	return dc.c.Upload(ctx, "/disputes/"+id+"/evidence", "files", filename, src, TagDispute)
}

// Resolve closes a dispute with a resolution note. Resolution may unblock the
// underlying contract, so its cache is invalidated too.
func (dc *DisputeClient) Resolve(ctx context.Context, id, resolution string) error {
	body := map[string]string{"resolution": resolution}
	return dc.c.mutate(ctx, http.MethodPost, "/disputes/"+id+"/resolve", body, nil, TagDispute, TagContract)
}
