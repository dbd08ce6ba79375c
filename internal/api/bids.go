package api

import (
	"context"
	"io"
	"net/http"

	"github.com/employee7007-droid/construct-deal/internal/models"
)

// BidClient talks to the /bids resource domain.
type BidClient struct {
	c *Client
}

func (b *BidClient) Submit(ctx context.Context, rfqID string, in models.SubmitBid) (*models.Bid, error) {
	var out struct {
		Bid models.Bid `json:"bid"`
	}
	if err := b.c.mutate(ctx, http.MethodPost, "/bids/rfqs/"+rfqID, in, &out, TagBid); err != nil {
		return nil, err
	}
	return &out.Bid, nil
}

// ForRFQ lists all bids received for one RFQ.
func (b *BidClient) ForRFQ(ctx context.Context, rfqID string) ([]models.Bid, error) {
	var out struct {
		Bids []models.Bid `json:"bids"`
	}
	if err := b.c.query(ctx, "/bids/rfqs/"+rfqID, nil, []Tag{TagBid}, &out); err != nil {
		return nil, err
	}
	return out.Bids, nil
}

// Comparison returns the server-scored comparison matrix for an RFQ. Scores
// and ranking are canonical on the backend; rows are rendered as-is.
func (b *BidClient) Comparison(ctx context.Context, rfqID string) ([]models.ComparisonRow, error) {
	var out struct {
		Comparison []models.ComparisonRow `json:"comparison"`
	}
	if err := b.c.query(ctx, "/bids/rfqs/"+rfqID+"/comparison", nil, []Tag{TagBid}, &out); err != nil {
		return nil, err
	}
	return out.Comparison, nil
}

func (b *BidClient) Get(ctx context.Context, id string) (*models.Bid, error) {
	var out struct {
		Bid models.Bid `json:"bid"`
	}
	if err := b.c.query(ctx, "/bids/"+id, nil, []Tag{TagBid}, &out); err != nil {
		return nil, err
	}
	return &out.Bid, nil
}

func (b *BidClient) Update(ctx context.Context, id string, in models.SubmitBid) (*models.Bid, error) {
	var out struct {
		Bid models.Bid `json:"bid"`
	}
	if err := b.c.mutate(ctx, http.MethodPut, "/bids/"+id, in, &out, TagBid); err != nil {
		return nil, err
	}
	return &out.Bid, nil
}

func (b *BidClient) Withdraw(ctx context.Context, id string) error {
	return b.c.mutate(ctx, http.MethodPost, "/bids/"+id+"/withdraw", nil, nil, TagBid)
}

func (b *BidClient) UploadAttachment(ctx context.Context, id, filename string, src io.Reader) error {
	return b.c.Upload(ctx, "/bids/"+id+"/attachments", "files", filename, src, TagBid)
}
