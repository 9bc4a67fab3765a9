package core

import (
	"context"
	"errors"
	"fmt"

	"fintrack-backend-go/internal/db"
	"fintrack-backend-go/internal/models"
)

// planService implements the PlanService interface.
type planService struct {
	planRepo db.PlanRepository
}

// NewPlanService creates a new PlanService instance.
func NewPlanService(planRepo db.PlanRepository) PlanService {
	return &planService{planRepo: planRepo}
}

func (s *planService) List(ctx context.Context, ownerID string) ([]*models.Plan, error) {
	plans, err := s.planRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans for owner '%s': %w", ownerID, err)
	}
	return plans, nil
}

// Get fetches a plan and enforces ownership. A foreign plan is reported as
// not found.
func (s *planService) Get(ctx context.Context, ownerID, planID string) (*models.Plan, error) {
	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("failed to get plan '%s': %w", planID, err)
	}
	if plan.OwnerID != ownerID {
		return nil, ErrPlanNotFound
	}
	return plan, nil
}

func (s *planService) Create(ctx context.Context, ownerID string, req models.CreatePlanRequest) (*models.Plan, error) {
	plan := &models.Plan{
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive == nil || *req.IsActive,
		Months:      req.Months,
	}
	if plan.Months == nil {
		plan.Months = []models.PlanMonth{}
	}

	created, err := s.planRepo.Create(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("failed to create plan for owner '%s': %w", ownerID, err)
	}
	return created, nil
}

func (s *planService) Update(ctx context.Context, ownerID, planID string, fields map[string]interface{}) (*models.Plan, error) {
	if _, err := s.Get(ctx, ownerID, planID); err != nil {
		return nil, err
	}
	updated, err := s.planRepo.Update(ctx, planID, StripProtectedFields(fields))
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("failed to update plan '%s': %w", planID, err)
	}
	return updated, nil
}

func (s *planService) Delete(ctx context.Context, ownerID, planID string) error {
	if _, err := s.Get(ctx, ownerID, planID); err != nil {
		return err
	}
	if err := s.planRepo.Delete(ctx, planID); err != nil {
		return fmt.Errorf("failed to delete plan '%s': %w", planID, err)
	}
	return nil
}
