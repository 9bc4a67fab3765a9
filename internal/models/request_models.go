package models

// Request bodies for create endpoints. Required-field presence is checked
// against the raw decoded body with a truthiness test (see api.ValidateRequired),
// not with binding tags, so these structs carry no "required" bindings.

// CreateUserRequest is the body for POST /users.
type CreateUserRequest struct {
	DisplayName   string `json:"displayName"`
	Email         string `json:"email"`
	Birthday      string `json:"birthday"`
	RetirementAge int    `json:"retirementAge"`
}

// CreatePlanRequest is the body for POST /plans.
type CreatePlanRequest struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	IsActive    *bool       `json:"isActive"` // pointer: true unless explicitly false
	Months      []PlanMonth `json:"months"`
}

// CreateBudgetRequest is the body for POST /budgets.
type CreateBudgetRequest struct {
	Name     string     `json:"name"`
	IsActive *bool      `json:"isActive"`
	Income   []LineItem `json:"income"`
	Expenses []LineItem `json:"expenses"`
}

// CreateAssetRequest is the body for POST /assets.
type CreateAssetRequest struct {
	Name         string  `json:"name"`
	CurrentValue float64 `json:"currentValue"`
	AnnualAPY    float64 `json:"annualAPY"`
	Notes        string  `json:"notes"`
}

// CreateDebtRequest is the body for POST /debts.
type CreateDebtRequest struct {
	Name           string  `json:"name"`
	CurrentBalance float64 `json:"currentBalance"`
	InterestRate   float64 `json:"interestRate"`
	MinimumPayment float64 `json:"minimumPayment"`
	Notes          string  `json:"notes"`
}

// FeedbackRequest is the body for POST /budgets/feedback.
type FeedbackRequest struct {
	BudgetName    string     `json:"budgetName"`
	Income        []LineItem `json:"income"`
	Expenses      []LineItem `json:"expenses"`
	TotalIncome   float64    `json:"totalIncome"`
	TotalExpenses float64    `json:"totalExpenses"`
}

// BudgetFeedback is the structured result distilled from the generative
// backend's free-text reply.
type BudgetFeedback struct {
	Improvements []string `json:"improvements"`
	Strengths    []string `json:"strengths"`
	Summary      string   `json:"summary"`
}
