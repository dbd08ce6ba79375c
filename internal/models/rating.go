package models

import "time"

// Rating is post-contract feedback left for a counterparty.
type Rating struct {
	ID         string    `json:"id"`
	ContractID string    `json:"contractId"`
	RateeID    string    `json:"rateeId"`
	Stars      int       `json:"stars"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CreateRating is the payload for POST /ratings.
type CreateRating struct {
	ContractID string `json:"contractId"`
	RateeID    string `json:"rateeId"`
	Stars      int    `json:"stars"`
	Comment    string `json:"comment,omitempty"`
}
