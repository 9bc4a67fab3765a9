package core

import "errors"

// Family-specific not-found errors. An owner mismatch is reported with the
// same error as true absence, so callers cannot distinguish foreign records
// from missing ones.
var (
	ErrUserNotFound     = errors.New("User not found")
	ErrPlanNotFound     = errors.New("Plan not found")
	ErrBudgetNotFound   = errors.New("Budget not found")
	ErrAssetNotFound    = errors.New("Asset not found")
	ErrDebtNotFound     = errors.New("Debt not found")
	ErrSnapshotNotFound = errors.New("Version snapshot not found")

	// ErrUserAlreadyExists is returned when an explicit create collides with
	// an existing profile for the same identity.
	ErrUserAlreadyExists = errors.New("User already exists")
)
