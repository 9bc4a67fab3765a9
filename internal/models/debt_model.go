package models

import "time"

// Debt represents an outstanding liability with a repayment schedule.
type Debt struct {
	ID             string    `json:"id" firestore:"-"`
	OwnerID        string    `json:"ownerId" firestore:"ownerId"`
	Name           string    `json:"name" firestore:"name"`
	CurrentBalance float64   `json:"currentBalance" firestore:"currentBalance"`
	InterestRate   float64   `json:"interestRate" firestore:"interestRate"`
	MinimumPayment float64   `json:"minimumPayment" firestore:"minimumPayment"`
	Notes          string    `json:"notes,omitempty" firestore:"notes,omitempty"`
	Version        int64     `json:"version" firestore:"version"`
	CreatedAt      time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt" firestore:"updatedAt"`
}
