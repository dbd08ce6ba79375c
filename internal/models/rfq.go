package models

import "time"

// RFQ statuses as used by the backend lifecycle.
const (
	RFQStatusDraft     = "draft"
	RFQStatusPublished = "published"
	RFQStatusActive    = "active"
	RFQStatusClosed    = "closed"
	RFQStatusCancelled = "cancelled"
)

// BOQItem is one line of the bill of quantities attached to an RFQ.
type BOQItem struct {
	Description    string  `json:"description"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
	Specifications string  `json:"specifications,omitempty"`
}

// EvaluationWeights are the percentage weights used by the backend when
// scoring bids. The gateway only displays them and checks the sum; the
// canonical scoring happens server-side.
type EvaluationWeights struct {
	Price          int `json:"price"`
	Timeline       int `json:"timeline"`
	Experience     int `json:"experience"`
	Warranty       int `json:"warranty"`
	Sustainability int `json:"sustainability"`
}

// Total returns the weight sum; a valid set totals 100.
func (w EvaluationWeights) Total() int {
	return w.Price + w.Timeline + w.Experience + w.Warranty + w.Sustainability
}

// RFQ is a request for quotation as returned by the backend.
type RFQ struct {
	ID                string            `json:"id"`
	Title             string            `json:"title"`
	Description       string            `json:"description"`
	CategoryID        string            `json:"categoryId"`
	BuildingID        string            `json:"buildingId"`
	Status            string            `json:"status"`
	Visibility        string            `json:"visibility"`
	EstBudgetMin      float64           `json:"estBudgetMin"`
	EstBudgetMax      float64           `json:"estBudgetMax"`
	CloseDate         time.Time         `json:"closeDate"`
	BOQItems          []BOQItem         `json:"boqItems"`
	EvaluationWeights EvaluationWeights `json:"evaluationWeights"`
	BidCount          int               `json:"bidCount"`
	CreatedAt         time.Time         `json:"createdAt"`
}

// Addendum is a clarification published against an open RFQ.
type Addendum struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateRFQ is the payload for POST /rfqs.
type CreateRFQ struct {
	Title             string            `json:"title"`
	Description       string            `json:"description"`
	CategoryID        string            `json:"categoryId"`
	BuildingID        string            `json:"buildingId"`
	EstBudgetMin      float64           `json:"estBudgetMin,omitempty"`
	EstBudgetMax      float64           `json:"estBudgetMax,omitempty"`
	CloseDate         string            `json:"closeDate"`
	Visibility        string            `json:"visibility"`
	EvaluationWeights EvaluationWeights `json:"evaluationWeights"`
	BOQItems          []BOQItem         `json:"boqItems"`
}
