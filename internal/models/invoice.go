package models

import "time"

// Invoice statuses as used by the backend lifecycle.
const (
	InvoiceStatusSubmitted = "submitted"
	InvoiceStatusApproved  = "approved"
	InvoiceStatusRejected  = "rejected"
	InvoiceStatusPaid      = "paid"
)

// Invoice is a vendor invoice raised against a contract milestone.
type Invoice struct {
	ID          string    `json:"id"`
	Number      string    `json:"number"`
	ContractID  string    `json:"contractId"`
	MilestoneID string    `json:"milestoneId,omitempty"`
	VendorName  string    `json:"vendorName"`
	Amount      float64   `json:"amount"`
	TaxAmount   float64   `json:"taxAmount"`
	Status      string    `json:"status"`
	DueDate     time.Time `json:"dueDate"`
	PaidAt      *time.Time `json:"paidAt,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateInvoice is the payload for POST /invoices.
type CreateInvoice struct {
	ContractID  string  `json:"contractId"`
	MilestoneID string  `json:"milestoneId,omitempty"`
	Amount      float64 `json:"amount"`
	TaxAmount   float64 `json:"taxAmount,omitempty"`
	DueDate     string  `json:"dueDate"`
}
