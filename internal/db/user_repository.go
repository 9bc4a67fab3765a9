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

const usersCollection = "users"

// firestoreUserRepository implements the UserRepository interface using Firestore.
type firestoreUserRepository struct {
	client *firestore.Client
}

// NewFirestoreUserRepository creates a new instance of firestoreUserRepository.
func NewFirestoreUserRepository(client *firestore.Client) UserRepository {
	return &firestoreUserRepository{client: client}
}

// GetByID retrieves a user document by its ID (the Firebase Auth UID).
func (r *firestoreUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if id == "" {
		return nil, errors.New("user ID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(usersCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("user with ID '%s' not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user with ID '%s': %w", id, err)
	}

	var user models.User
	if err := docSnap.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to decode user data for ID '%s': %w", id, err)
	}
	user.ID = docSnap.Ref.ID
	return &user, nil
}

// ListByOwner retrieves user documents via the ownerId index. For users the
// owner is the profile itself, so the result holds at most one record.
func (r *firestoreUserRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.User, error) {
	if ownerID == "" {
		return nil, errors.New("ownerID cannot be empty for ListByOwner operation")
	}
	iter := r.client.Collection(usersCollection).Where("ownerId", "==", ownerID).Documents(ctx)
	defer iter.Stop()

	users := []*models.User{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate users for owner '%s': %w", ownerID, err)
		}
		var user models.User
		if err := doc.DataTo(&user); err != nil {
			return nil, fmt.Errorf("failed to decode user data (ID: %s): %w", doc.Ref.ID, err)
		}
		user.ID = doc.Ref.ID
		users = append(users, &user)
	}
	return users, nil
}

// Create persists a new user keyed by user.ID, which must be set to the
// Firebase Auth UID by the caller. Version starts at 1 and both timestamps
// are stamped to the same instant.
func (r *firestoreUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if user.ID == "" {
		return nil, errors.New("user ID cannot be empty for Create operation")
	}
	now := time.Now().UTC()
	user.Version = 1
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := r.client.Collection(usersCollection).Doc(user.ID).Create(ctx, user); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil, fmt.Errorf("user with ID '%s' already exists: %w", user.ID, err)
		}
		return nil, fmt.Errorf("failed to create user with ID '%s': %w", user.ID, err)
	}
	return user, nil
}

// Update merges the given fields into the stored user, bumps the version
// counter by one and refreshes updatedAt, then returns the updated record.
func (r *firestoreUserRepository) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.User, error) {
	if id == "" {
		return nil, errors.New("user ID cannot be empty for Update operation")
	}
	docRef := r.client.Collection(usersCollection).Doc(id)
	if _, err := docRef.Update(ctx, buildUpdates(fields, time.Now().UTC())); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("user with ID '%s' not found for update: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update user with ID '%s': %w", id, err)
	}
	return r.GetByID(ctx, id)
}

// Delete removes a user document. Deleting an absent document is not an error.
func (r *firestoreUserRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("user ID cannot be empty for Delete operation")
	}
	if _, err := r.client.Collection(usersCollection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete user with ID '%s': %w", id, err)
	}
	return nil
}
