package models

// Organization is a buyer-side company owning buildings and RFQs.
type Organization struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	City             string   `json:"city"`
	PreferredVendors []string `json:"preferredVendors,omitempty"`
}
