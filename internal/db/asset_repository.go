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

const assetsCollection = "assets"

// firestoreAssetRepository implements the AssetRepository interface using Firestore.
type firestoreAssetRepository struct {
	client *firestore.Client
}

// NewFirestoreAssetRepository creates a new instance of firestoreAssetRepository.
func NewFirestoreAssetRepository(client *firestore.Client) AssetRepository {
	return &firestoreAssetRepository{client: client}
}

func (r *firestoreAssetRepository) GetByID(ctx context.Context, id string) (*models.Asset, error) {
	if id == "" {
		return nil, errors.New("asset ID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(assetsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("asset with ID '%s' not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get asset with ID '%s': %w", id, err)
	}

	var asset models.Asset
	if err := docSnap.DataTo(&asset); err != nil {
		return nil, fmt.Errorf("failed to decode asset data for ID '%s': %w", id, err)
	}
	asset.ID = docSnap.Ref.ID
	return &asset, nil
}

func (r *firestoreAssetRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Asset, error) {
	if ownerID == "" {
		return nil, errors.New("ownerID cannot be empty for ListByOwner operation")
	}
	iter := r.client.Collection(assetsCollection).
		Where("ownerId", "==", ownerID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	assets := []*models.Asset{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate assets for owner '%s': %w", ownerID, err)
		}
		var asset models.Asset
		if err := doc.DataTo(&asset); err != nil {
			return nil, fmt.Errorf("failed to decode asset data (ID: %s): %w", doc.Ref.ID, err)
		}
		asset.ID = doc.Ref.ID
		assets = append(assets, &asset)
	}
	return assets, nil
}

func (r *firestoreAssetRepository) Create(ctx context.Context, asset *models.Asset) (*models.Asset, error) {
	docRef := r.client.Collection(assetsCollection).NewDoc()
	asset.ID = docRef.ID

	now := time.Now().UTC()
	asset.Version = 1
	asset.CreatedAt = now
	asset.UpdatedAt = now

	if _, err := docRef.Create(ctx, asset); err != nil {
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}
	return asset, nil
}

func (r *firestoreAssetRepository) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Asset, error) {
	if id == "" {
		return nil, errors.New("asset ID cannot be empty for Update operation")
	}
	docRef := r.client.Collection(assetsCollection).Doc(id)
	if _, err := docRef.Update(ctx, buildUpdates(fields, time.Now().UTC())); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("asset with ID '%s' not found for update: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update asset with ID '%s': %w", id, err)
	}
	return r.GetByID(ctx, id)
}

func (r *firestoreAssetRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("asset ID cannot be empty for Delete operation")
	}
	if _, err := r.client.Collection(assetsCollection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete asset with ID '%s': %w", id, err)
	}
	return nil
}
