package core

import (
	"context"
	"errors"
	"fmt"

	"fintrack-backend-go/internal/db"
	"fintrack-backend-go/internal/models"
)

// debtService implements the DebtService interface.
type debtService struct {
	debtRepo db.DebtRepository
}

// NewDebtService creates a new DebtService instance.
func NewDebtService(debtRepo db.DebtRepository) DebtService {
	return &debtService{debtRepo: debtRepo}
}

func (s *debtService) List(ctx context.Context, ownerID string) ([]*models.Debt, error) {
	debts, err := s.debtRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts for owner '%s': %w", ownerID, err)
	}
	return debts, nil
}

func (s *debtService) Get(ctx context.Context, ownerID, debtID string) (*models.Debt, error) {
	debt, err := s.debtRepo.GetByID(ctx, debtID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrDebtNotFound
		}
		return nil, fmt.Errorf("failed to get debt '%s': %w", debtID, err)
	}
	if debt.OwnerID != ownerID {
		return nil, ErrDebtNotFound
	}
	return debt, nil
}

func (s *debtService) Create(ctx context.Context, ownerID string, req models.CreateDebtRequest) (*models.Debt, error) {
	debt := &models.Debt{
		OwnerID:        ownerID,
		Name:           req.Name,
		CurrentBalance: req.CurrentBalance,
		InterestRate:   req.InterestRate,
		MinimumPayment: req.MinimumPayment,
		Notes:          req.Notes,
	}

	created, err := s.debtRepo.Create(ctx, debt)
	if err != nil {
		return nil, fmt.Errorf("failed to create debt for owner '%s': %w", ownerID, err)
	}
	return created, nil
}

func (s *debtService) Update(ctx context.Context, ownerID, debtID string, fields map[string]interface{}) (*models.Debt, error) {
	if _, err := s.Get(ctx, ownerID, debtID); err != nil {
		return nil, err
	}
	updated, err := s.debtRepo.Update(ctx, debtID, StripProtectedFields(fields))
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrDebtNotFound
		}
		return nil, fmt.Errorf("failed to update debt '%s': %w", debtID, err)
	}
	return updated, nil
}

func (s *debtService) Delete(ctx context.Context, ownerID, debtID string) error {
	if _, err := s.Get(ctx, ownerID, debtID); err != nil {
		return err
	}
	if err := s.debtRepo.Delete(ctx, debtID); err != nil {
		return fmt.Errorf("failed to delete debt '%s': %w", debtID, err)
	}
	return nil
}
