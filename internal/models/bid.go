package models

import "time"

// Bid is a vendor's priced response to an RFQ.
type Bid struct {
	ID           string    `json:"id"`
	RFQID        string    `json:"rfqId"`
	VendorID     string    `json:"vendorId"`
	VendorName   string    `json:"vendorName"`
	TotalAmount  float64   `json:"totalAmount"`
	TimelineDays int       `json:"timelineDays"`
	ValidityDays int       `json:"validityDays"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SubmitBid is the payload for POST /bids/rfqs/:rfqId.
type SubmitBid struct {
	TotalAmount  float64 `json:"totalAmount"`
	TimelineDays int     `json:"timelineDays"`
	ValidityDays int     `json:"validityDays"`
	Notes        string  `json:"notes,omitempty"`
}

// ComparisonRow is one scored bid from the comparison endpoint. All scores
// are computed server-side; the gateway renders them as-is.
type ComparisonRow struct {
	ID           string    `json:"id"`
	VendorName   string    `json:"vendorName"`
	TotalAmount  float64   `json:"totalAmount"`
	TimelineDays int       `json:"timelineDays"`
	ValidityDays int       `json:"validityDays"`
	PriceScore   float64   `json:"priceScore"`
	TimelineScore float64  `json:"timelineScore"`
	TotalScore   float64   `json:"totalScore"`
	CreatedAt    time.Time `json:"createdAt"`
}
