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

const debtsCollection = "debts"

// firestoreDebtRepository implements the DebtRepository interface using Firestore.
type firestoreDebtRepository struct {
	client *firestore.Client
}

// NewFirestoreDebtRepository creates a new instance of firestoreDebtRepository.
func NewFirestoreDebtRepository(client *firestore.Client) DebtRepository {
	return &firestoreDebtRepository{client: client}
}

func (r *firestoreDebtRepository) GetByID(ctx context.Context, id string) (*models.Debt, error) {
	if id == "" {
		return nil, errors.New("debt ID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(debtsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("debt with ID '%s' not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get debt with ID '%s': %w", id, err)
	}

	var debt models.Debt
	if err := docSnap.DataTo(&debt); err != nil {
		return nil, fmt.Errorf("failed to decode debt data for ID '%s': %w", id, err)
	}
	debt.ID = docSnap.Ref.ID
	return &debt, nil
}

func (r *firestoreDebtRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Debt, error) {
	if ownerID == "" {
		return nil, errors.New("ownerID cannot be empty for ListByOwner operation")
	}
	iter := r.client.Collection(debtsCollection).
		Where("ownerId", "==", ownerID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	debts := []*models.Debt{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate debts for owner '%s': %w", ownerID, err)
		}
		var debt models.Debt
		if err := doc.DataTo(&debt); err != nil {
			return nil, fmt.Errorf("failed to decode debt data (ID: %s): %w", doc.Ref.ID, err)
		}
		debt.ID = doc.Ref.ID
		debts = append(debts, &debt)
	}
	return debts, nil
}

func (r *firestoreDebtRepository) Create(ctx context.Context, debt *models.Debt) (*models.Debt, error) {
	docRef := r.client.Collection(debtsCollection).NewDoc()
	debt.ID = docRef.ID

	now := time.Now().UTC()
	debt.Version = 1
	debt.CreatedAt = now
	debt.UpdatedAt = now

	if _, err := docRef.Create(ctx, debt); err != nil {
		return nil, fmt.Errorf("failed to create debt: %w", err)
	}
	return debt, nil
}

func (r *firestoreDebtRepository) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Debt, error) {
	if id == "" {
		return nil, errors.New("debt ID cannot be empty for Update operation")
	}
	docRef := r.client.Collection(debtsCollection).Doc(id)
	if _, err := docRef.Update(ctx, buildUpdates(fields, time.Now().UTC())); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("debt with ID '%s' not found for update: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update debt with ID '%s': %w", id, err)
	}
	return r.GetByID(ctx, id)
}

func (r *firestoreDebtRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("debt ID cannot be empty for Delete operation")
	}
	if _, err := r.client.Collection(debtsCollection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete debt with ID '%s': %w", id, err)
	}
	return nil
}
