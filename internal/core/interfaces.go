package core

import (
	"context"

	"fintrack-backend-go/internal/models"
)

// UserService defines operations on the caller's own profile.
type UserService interface {
	// GetOrProvision retrieves the caller's profile, synthesizing one from
	// token claims with documented defaults if it does not exist yet. This is
	// the only implicit-creation path in the system. The returned bool is
	// true when a profile was created.
	GetOrProvision(ctx context.Context, identity Identity) (*models.User, bool, error)
	Create(ctx context.Context, identity Identity, req models.CreateUserRequest) (*models.User, error)
	Update(ctx context.Context, userID string, fields map[string]interface{}) (*models.User, error)
	LatestVersionSnapshot(ctx context.Context, userID string) (*models.UserVersion, error)
}

// PlanService defines operations on plans, all scoped to the owner identity.
type PlanService interface {
	List(ctx context.Context, ownerID string) ([]*models.Plan, error)
	Get(ctx context.Context, ownerID, planID string) (*models.Plan, error)
	Create(ctx context.Context, ownerID string, req models.CreatePlanRequest) (*models.Plan, error)
	Update(ctx context.Context, ownerID, planID string, fields map[string]interface{}) (*models.Plan, error)
	Delete(ctx context.Context, ownerID, planID string) error
}

// BudgetService defines operations on budgets, all scoped to the owner identity.
type BudgetService interface {
	List(ctx context.Context, ownerID string) ([]*models.Budget, error)
	Get(ctx context.Context, ownerID, budgetID string) (*models.Budget, error)
	Create(ctx context.Context, ownerID string, req models.CreateBudgetRequest) (*models.Budget, error)
	Update(ctx context.Context, ownerID, budgetID string, fields map[string]interface{}) (*models.Budget, error)
	Delete(ctx context.Context, ownerID, budgetID string) error
}

// AssetService defines operations on assets, all scoped to the owner identity.
type AssetService interface {
	List(ctx context.Context, ownerID string) ([]*models.Asset, error)
	Get(ctx context.Context, ownerID, assetID string) (*models.Asset, error)
	Create(ctx context.Context, ownerID string, req models.CreateAssetRequest) (*models.Asset, error)
	Update(ctx context.Context, ownerID, assetID string, fields map[string]interface{}) (*models.Asset, error)
	Delete(ctx context.Context, ownerID, assetID string) error
}

// DebtService defines operations on debts, all scoped to the owner identity.
type DebtService interface {
	List(ctx context.Context, ownerID string) ([]*models.Debt, error)
	Get(ctx context.Context, ownerID, debtID string) (*models.Debt, error)
	Create(ctx context.Context, ownerID string, req models.CreateDebtRequest) (*models.Debt, error)
	Update(ctx context.Context, ownerID, debtID string, fields map[string]interface{}) (*models.Debt, error)
	Delete(ctx context.Context, ownerID, debtID string) error
}

// FeedbackService generates structured budget feedback via the generative
// text backend.
type FeedbackService interface {
	Generate(ctx context.Context, req models.FeedbackRequest) (*models.BudgetFeedback, error)
}
