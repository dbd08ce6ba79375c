package models

// Building is a managed property an RFQ can be raised for.
type Building struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Units   int    `json:"units"`
}
