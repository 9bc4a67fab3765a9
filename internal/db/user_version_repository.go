package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"fintrack-backend-go/internal/models"
)

const userVersionsCollection = "userVersions"

// firestoreUserVersionRepository implements the UserVersionRepository
// interface using Firestore. Snapshots are append-only; nothing here mutates
// or deletes existing documents.
type firestoreUserVersionRepository struct {
	client *firestore.Client
}

// NewFirestoreUserVersionRepository creates a new instance of firestoreUserVersionRepository.
func NewFirestoreUserVersionRepository(client *firestore.Client) UserVersionRepository {
	return &firestoreUserVersionRepository{client: client}
}

// Append writes a new snapshot document with an auto-generated ID.
func (r *firestoreUserVersionRepository) Append(ctx context.Context, snapshot *models.UserVersion) (*models.UserVersion, error) {
	if snapshot.UserID == "" {
		return nil, errors.New("snapshot userID cannot be empty for Append operation")
	}
	docRef := r.client.Collection(userVersionsCollection).NewDoc()
	snapshot.ID = docRef.ID
	snapshot.CreatedAt = time.Now().UTC()

	if _, err := docRef.Create(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("failed to append version snapshot for user '%s': %w", snapshot.UserID, err)
	}
	return snapshot, nil
}

// Latest returns the most recent snapshot for the given user, or ErrNotFound
// if the user has none yet.
func (r *firestoreUserVersionRepository) Latest(ctx context.Context, userID string) (*models.UserVersion, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty for Latest operation")
	}
	iter := r.client.Collection(userVersionsCollection).
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, fmt.Errorf("no version snapshot for user '%s': %w", userID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query version snapshots for user '%s': %w", userID, err)
	}

	var snapshot models.UserVersion
	if err := doc.DataTo(&snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode version snapshot (ID: %s): %w", doc.Ref.ID, err)
	}
	snapshot.ID = doc.Ref.ID
	return &snapshot, nil
}
