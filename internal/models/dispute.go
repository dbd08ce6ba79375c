package models

import "time"

// Dispute statuses as used by the backend lifecycle.
const (
	DisputeStatusOpen        = "open"
	DisputeStatusUnderReview = "under_review"
	DisputeStatusResolved    = "resolved"
)

// Dispute is a disagreement raised against a contract or invoice.
type Dispute struct {
	ID          string    `json:"id"`
	ContractID  string    `json:"contractId"`
	RaisedBy    string    `json:"raisedBy"`
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Resolution  string    `json:"resolution,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateDispute is the payload for POST /disputes.
type CreateDispute struct {
	ContractID  string `json:"contractId"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
}
