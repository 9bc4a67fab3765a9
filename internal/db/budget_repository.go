package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"fintrack-backend-go/internal/models"
)

const budgetsCollection = "budgets"

// firestoreBudgetRepository implements the BudgetRepository interface using Firestore.
type firestoreBudgetRepository struct {
	client *firestore.Client
}

// NewFirestoreBudgetRepository creates a new instance of firestoreBudgetRepository.
func NewFirestoreBudgetRepository(client *firestore.Client) BudgetRepository {
	return &firestoreBudgetRepository{client: client}
}

func (r *firestoreBudgetRepository) GetByID(ctx context.Context, id string) (*models.Budget, error) {
	if id == "" {
		return nil, errors.New("budget ID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(budgetsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("budget with ID '%s' not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get budget with ID '%s': %w", id, err)
	}

	var budget models.Budget
	if err := docSnap.DataTo(&budget); err != nil {
		return nil, fmt.Errorf("failed to decode budget data for ID '%s': %w", id, err)
	}
	budget.ID = docSnap.Ref.ID
	return &budget, nil
}

func (r *firestoreBudgetRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Budget, error) {
	if ownerID == "" {
		return nil, errors.New("ownerID cannot be empty for ListByOwner operation")
	}
	iter := r.client.Collection(budgetsCollection).
		Where("ownerId", "==", ownerID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	budgets := []*models.Budget{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate budgets for owner '%s': %w", ownerID, err)
		}
		var budget models.Budget
		if err := doc.DataTo(&budget); err != nil {
			return nil, fmt.Errorf("failed to decode budget data (ID: %s): %w", doc.Ref.ID, err)
		}
		budget.ID = doc.Ref.ID
		budgets = append(budgets, &budget)
	}
	return budgets, nil
}

func (r *firestoreBudgetRepository) Create(ctx context.Context, budget *models.Budget) (*models.Budget, error) {
	docRef := r.client.Collection(budgetsCollection).NewDoc()
	budget.ID = docRef.ID

	now := time.Now().UTC()
	budget.Version = 1
	budget.CreatedAt = now
	budget.UpdatedAt = now

	if _, err := docRef.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}
	return budget, nil
}

func (r *firestoreBudgetRepository) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Budget, error) {
	if id == "" {
		return nil, errors.New("budget ID cannot be empty for Update operation")
	}
	docRef := r.client.Collection(budgetsCollection).Doc(id)
	if _, err := docRef.Update(ctx, buildUpdates(fields, time.Now().UTC())); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("budget with ID '%s' not found for update: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update budget with ID '%s': %w", id, err)
	}
	return r.GetByID(ctx, id)
}

func (r *firestoreBudgetRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("budget ID cannot be empty for Delete operation")
	}
	if _, err := r.client.Collection(budgetsCollection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete budget with ID '%s': %w", id, err)
	}
	return nil
}
