package models

import "time"

// User represents a user profile. The Firebase Auth UID doubles as the
// document ID and the owner identity, so OwnerID always equals ID.
type User struct {
	ID            string    `json:"id" firestore:"-"`
	OwnerID       string    `json:"ownerId" firestore:"ownerId"`
	DisplayName   string    `json:"displayName" firestore:"displayName"`
	Email         string    `json:"email" firestore:"email"`
	Birthday      string    `json:"birthday" firestore:"birthday"`
	RetirementAge int       `json:"retirementAge" firestore:"retirementAge"`
	Version       int64     `json:"version" firestore:"version"`
	CreatedAt     time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// Auto-provision defaults used when a profile is synthesized from token
// claims on first authenticated read.
const (
	DefaultEmail         = "unknown@example.com"
	DefaultDisplayName   = "User"
	DefaultBirthday      = "1990-01-01"
	DefaultRetirementAge = 65
)
