package models

import "time"

// PlanMonth is one entry in a plan's ordered month list.
type PlanMonth struct {
	Month    string  `json:"month" firestore:"month"`
	Income   float64 `json:"income" firestore:"income"`
	Expenses float64 `json:"expenses" firestore:"expenses"`
	Notes    string  `json:"notes,omitempty" firestore:"notes,omitempty"`
}

// Plan represents a long-range financial plan owned by a single user.
type Plan struct {
	ID          string      `json:"id" firestore:"-"`
	OwnerID     string      `json:"ownerId" firestore:"ownerId"`
	Name        string      `json:"name" firestore:"name"`
	Description string      `json:"description,omitempty" firestore:"description,omitempty"`
	IsActive    bool        `json:"isActive" firestore:"isActive"`
	Months      []PlanMonth `json:"months" firestore:"months"`
	Version     int64       `json:"version" firestore:"version"`
	CreatedAt   time.Time   `json:"createdAt" firestore:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt" firestore:"updatedAt"`
}
