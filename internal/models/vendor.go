package models

// KYC verification states for a vendor profile.
const (
	KYCPending  = "pending"
	KYCApproved = "approved"
	KYCRejected = "rejected"
)

// Vendor is a supplier profile listed on the marketplace.
type Vendor struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	City       string   `json:"city"`
	Categories []string `json:"categories"`
	Rating     float64  `json:"rating"`
	RatingCount int     `json:"ratingCount"`
	KYCStatus  string   `json:"kycStatus"`
	Featured   bool     `json:"featured"`
	About      string   `json:"about,omitempty"`
	Phone      string   `json:"phone,omitempty"`
	Email      string   `json:"email,omitempty"`
}
