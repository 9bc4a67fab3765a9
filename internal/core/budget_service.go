package core

import (
	"context"
	"errors"
	"fmt"

	"fintrack-backend-go/internal/db"
	"fintrack-backend-go/internal/models"
)

// budgetService implements the BudgetService interface.
type budgetService struct {
	budgetRepo db.BudgetRepository
}

// NewBudgetService creates a new BudgetService instance.
func NewBudgetService(budgetRepo db.BudgetRepository) BudgetService {
	return &budgetService{budgetRepo: budgetRepo}
}

func (s *budgetService) List(ctx context.Context, ownerID string) ([]*models.Budget, error) {
	budgets, err := s.budgetRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets for owner '%s': %w", ownerID, err)
	}
	return budgets, nil
}

func (s *budgetService) Get(ctx context.Context, ownerID, budgetID string) (*models.Budget, error) {
	budget, err := s.budgetRepo.GetByID(ctx, budgetID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget '%s': %w", budgetID, err)
	}
	if budget.OwnerID != ownerID {
		return nil, ErrBudgetNotFound
	}
	return budget, nil
}

// Create builds a budget with income and expense lines defaulting to empty
// lists when omitted.
func (s *budgetService) Create(ctx context.Context, ownerID string, req models.CreateBudgetRequest) (*models.Budget, error) {
	budget := &models.Budget{
		OwnerID:  ownerID,
		Name:     req.Name,
		IsActive: req.IsActive == nil || *req.IsActive,
		Income:   req.Income,
		Expenses: req.Expenses,
	}
	if budget.Income == nil {
		budget.Income = []models.LineItem{}
	}
	if budget.Expenses == nil {
		budget.Expenses = []models.LineItem{}
	}

	created, err := s.budgetRepo.Create(ctx, budget)
	if err != nil {
		return nil, fmt.Errorf("failed to create budget for owner '%s': %w", ownerID, err)
	}
	return created, nil
}

func (s *budgetService) Update(ctx context.Context, ownerID, budgetID string, fields map[string]interface{}) (*models.Budget, error) {
	if _, err := s.Get(ctx, ownerID, budgetID); err != nil {
		return nil, err
	}
	updated, err := s.budgetRepo.Update(ctx, budgetID, StripProtectedFields(fields))
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to update budget '%s': %w", budgetID, err)
	}
	return updated, nil
}

func (s *budgetService) Delete(ctx context.Context, ownerID, budgetID string) error {
	if _, err := s.Get(ctx, ownerID, budgetID); err != nil {
		return err
	}
	if err := s.budgetRepo.Delete(ctx, budgetID); err != nil {
		return fmt.Errorf("failed to delete budget '%s': %w", budgetID, err)
	}
	return nil
}
