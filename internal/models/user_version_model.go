package models

import "time"

// UserVersion is an append-only snapshot of a user's aggregate version
// counters, consumed by clients for cache invalidation. A new document is
// written on every user create and update; each snapshot copies the prior
// resource counters and merges in the incremented global counter.
type UserVersion struct {
	ID        string           `json:"id" firestore:"-"`
	UserID    string           `json:"userId" firestore:"userId"`
	Global    int64            `json:"global" firestore:"global"`
	Resources map[string]int64 `json:"resources" firestore:"resources"`
	CreatedAt time.Time        `json:"createdAt" firestore:"createdAt"`
}
