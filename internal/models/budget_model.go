package models

import "time"

// LineItem is a single income or expense line in a budget.
type LineItem struct {
	Name   string  `json:"name" firestore:"name"`
	Amount float64 `json:"amount" firestore:"amount"`
}

// Budget represents a monthly budget with income and expense line items.
type Budget struct {
	ID        string     `json:"id" firestore:"-"`
	OwnerID   string     `json:"ownerId" firestore:"ownerId"`
	Name      string     `json:"name" firestore:"name"`
	IsActive  bool       `json:"isActive" firestore:"isActive"`
	Income    []LineItem `json:"income" firestore:"income"`
	Expenses  []LineItem `json:"expenses" firestore:"expenses"`
	Version   int64      `json:"version" firestore:"version"`
	CreatedAt time.Time  `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt" firestore:"updatedAt"`
}
