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

const plansCollection = "plans"

// firestorePlanRepository implements the PlanRepository interface using Firestore.
type firestorePlanRepository struct {
	client *firestore.Client
}

// NewFirestorePlanRepository creates a new instance of firestorePlanRepository.
func NewFirestorePlanRepository(client *firestore.Client) PlanRepository {
	return &firestorePlanRepository{client: client}
}

func (r *firestorePlanRepository) GetByID(ctx context.Context, id string) (*models.Plan, error) {
	if id == "" {
		return nil, errors.New("plan ID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(plansCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("plan with ID '%s' not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get plan with ID '%s': %w", id, err)
	}

	var plan models.Plan
	if err := docSnap.DataTo(&plan); err != nil {
		return nil, fmt.Errorf("failed to decode plan data for ID '%s': %w", id, err)
	}
	plan.ID = docSnap.Ref.ID
	return &plan, nil
}

// ListByOwner retrieves all plans owned by a specific user, newest first.
func (r *firestorePlanRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Plan, error) {
	if ownerID == "" {
		return nil, errors.New("ownerID cannot be empty for ListByOwner operation")
	}
	iter := r.client.Collection(plansCollection).
		Where("ownerId", "==", ownerID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	plans := []*models.Plan{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate plans for owner '%s': %w", ownerID, err)
		}
		var plan models.Plan
		if err := doc.DataTo(&plan); err != nil {
			return nil, fmt.Errorf("failed to decode plan data (ID: %s): %w", doc.Ref.ID, err)
		}
		plan.ID = doc.Ref.ID
		plans = append(plans, &plan)
	}
	return plans, nil
}

// Create persists a new plan with an auto-generated document ID.
func (r *firestorePlanRepository) Create(ctx context.Context, plan *models.Plan) (*models.Plan, error) {
	docRef := r.client.Collection(plansCollection).NewDoc()
	plan.ID = docRef.ID

	now := time.Now().UTC()
	plan.Version = 1
	plan.CreatedAt = now
	plan.UpdatedAt = now

	if _, err := docRef.Create(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to create plan: %w", err)
	}
	return plan, nil
}

func (r *firestorePlanRepository) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Plan, error) {
	if id == "" {
		return nil, errors.New("plan ID cannot be empty for Update operation")
	}
	docRef := r.client.Collection(plansCollection).Doc(id)
	if _, err := docRef.Update(ctx, buildUpdates(fields, time.Now().UTC())); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("plan with ID '%s' not found for update: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update plan with ID '%s': %w", id, err)
	}
	return r.GetByID(ctx, id)
}

func (r *firestorePlanRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("plan ID cannot be empty for Delete operation")
	}
	if _, err := r.client.Collection(plansCollection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete plan with ID '%s': %w", id, err)
	}
	return nil
}
