package api

import (
	"context"
	"net/http"

	"github.com/employee7007-droid/construct-deal/internal/models"
)

// ContractClient talks to the /contracts resource domain.
type ContractClient struct {
	c *Client
}

// ContractList is the unwrapped data of GET /contracts.
type ContractList struct {
	Contracts  []models.Contract `json:"contracts"`
	Pagination models.Pagination `json:"pagination"`
}

// Award creates a contract from a winning bid. Invalidates contracts plus the
// RFQ and bid caches, since both change status as a side effect.
func (cc *ContractClient) Award(ctx context.Context, rfqID, bidID string) (*models.Contract, error) {
	body := map[string]string{"rfqId": rfqID, "bidId": bidID}
	var out struct {
		Contract models.Contract `json:"contract"`
	}
	if err := cc.c.mutate(ctx, http.MethodPost, "/contracts/award", body, &out, TagContract, TagRFQ, TagBid); err != nil {
		return nil, err
	}
	return &out.Contract, nil
}

func (cc *ContractClient) List(ctx context.Context, p StatusListParams) (*ContractList, error) {
	var out ContractList
	if err := cc.c.query(ctx, "/contracts", p.Values(), []Tag{TagContract}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (cc *ContractClient) Get(ctx context.Context, id string) (*models.Contract, error) {
	var out struct {
		Contract models.Contract `json:"contract"`
	}
	if err := cc.c.query(ctx, "/contracts/"+id, nil, []Tag{TagContract}, &out); err != nil {
		return nil, err
	}
	return &out.Contract, nil
}

func (cc *ContractClient) Accept(ctx context.Context, id string) error {
	return cc.c.mutate(ctx, http.MethodPost, "/contracts/"+id+"/accept", nil, nil, TagContract)
}

func (cc *ContractClient) Decline(ctx context.Context, id, reason string) error {
	body := map[string]string{"reason": reason}
	return cc.c.mutate(ctx, http.MethodPost, "/contracts/"+id+"/decline", body, nil, TagContract)
}

// ReportProgress records milestone completion percentage from the vendor side.
func (cc *ContractClient) ReportProgress(ctx context.Context, id, milestoneID string, percentage int) error {
	body := map[string]interface{}{"percentage": percentage}
	return cc.c.mutate(ctx, http.MethodPost, "/contracts/"+id+"/milestones/"+milestoneID+"/progress", body, nil, TagContract)
}

func (cc *ContractClient) ApproveMilestone(ctx context.Context, id, milestoneID string) error {
	return cc.c.mutate(ctx, http.MethodPost, "/contracts/"+id+"/milestones/"+milestoneID+"/approve", nil, nil, TagContract)
}

func (cc *ContractClient) RejectMilestone(ctx context.Context, id, milestoneID, reason string) error {
	body := map[string]string{"reason": reason}
	return cc.c.mutate(ctx, http.MethodPost, "/contracts/"+id+"/milestones/"+milestoneID+"/reject", body, nil, TagContract)
}
