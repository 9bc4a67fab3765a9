package db

import (
	"context"

	"fintrack-backend-go/internal/models"
)

// Every repository follows the same contract: GetByID performs no ownership
// filtering (ownership is the service layer's concern), ListByOwner queries
// the ownerId secondary index, Create assigns the document ID and stamps
// version 1 with equal createdAt/updatedAt, Update merges the given fields
// and increments the version counter, Delete is idempotent. Store failures
// propagate unchanged; no retries happen at this layer.

// UserRepository defines storage operations for user profiles. Create uses
// the caller-supplied ID (the Firebase Auth UID) as the document ID instead
// of generating one.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.User, error)
	Delete(ctx context.Context, id string) error
}

// PlanRepository defines storage operations for plans.
type PlanRepository interface {
	GetByID(ctx context.Context, id string) (*models.Plan, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Plan, error)
	Create(ctx context.Context, plan *models.Plan) (*models.Plan, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Plan, error)
	Delete(ctx context.Context, id string) error
}

// BudgetRepository defines storage operations for budgets.
type BudgetRepository interface {
	GetByID(ctx context.Context, id string) (*models.Budget, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Budget, error)
	Create(ctx context.Context, budget *models.Budget) (*models.Budget, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Budget, error)
	Delete(ctx context.Context, id string) error
}

// AssetRepository defines storage operations for assets.
type AssetRepository interface {
	GetByID(ctx context.Context, id string) (*models.Asset, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Asset, error)
	Create(ctx context.Context, asset *models.Asset) (*models.Asset, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Asset, error)
	Delete(ctx context.Context, id string) error
}

// DebtRepository defines storage operations for debts.
type DebtRepository interface {
	GetByID(ctx context.Context, id string) (*models.Debt, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Debt, error)
	Create(ctx context.Context, debt *models.Debt) (*models.Debt, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Debt, error)
	Delete(ctx context.Context, id string) error
}

// UserVersionRepository stores append-only version snapshots. Snapshots are
// never updated or deleted; Latest returns the most recent one by creation
// time, or ErrNotFound if none exists.
type UserVersionRepository interface {
	Append(ctx context.Context, snapshot *models.UserVersion) (*models.UserVersion, error)
	Latest(ctx context.Context, userID string) (*models.UserVersion, error)
}
