package models

import "time"

// Asset represents an appreciating holding (savings, investments, property).
type Asset struct {
	ID           string    `json:"id" firestore:"-"`
	OwnerID      string    `json:"ownerId" firestore:"ownerId"`
	Name         string    `json:"name" firestore:"name"`
	CurrentValue float64   `json:"currentValue" firestore:"currentValue"`
	AnnualAPY    float64   `json:"annualAPY" firestore:"annualAPY"`
	Notes        string    `json:"notes,omitempty" firestore:"notes,omitempty"`
	Version      int64     `json:"version" firestore:"version"`
	CreatedAt    time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" firestore:"updatedAt"`
}
