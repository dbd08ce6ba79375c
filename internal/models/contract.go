package models

import "time"

// Contract statuses as used by the backend lifecycle.
const (
	ContractStatusPendingAcceptance = "pending_acceptance"
	ContractStatusActive            = "active"
	ContractStatusDeclined          = "declined"
	ContractStatusCompleted         = "completed"
	ContractStatusTerminated        = "terminated"
)

// Milestone is one deliverable tracked under a contract.
type Milestone struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Amount     float64   `json:"amount"`
	DueDate    time.Time `json:"dueDate"`
	Status     string    `json:"status"`
	Percentage int       `json:"percentage"`
}

// Contract binds an awarded bid to its RFQ.
type Contract struct {
	ID         string      `json:"id"`
	RFQID      string      `json:"rfqId"`
	RFQTitle   string      `json:"rfqTitle"`
	BidID      string      `json:"bidId"`
	VendorID   string      `json:"vendorId"`
	VendorName string      `json:"vendorName"`
	Amount     float64     `json:"amount"`
	Status     string      `json:"status"`
	Milestones []Milestone `json:"milestones"`
	StartDate  time.Time   `json:"startDate"`
	EndDate    time.Time   `json:"endDate"`
	CreatedAt  time.Time   `json:"createdAt"`
}
