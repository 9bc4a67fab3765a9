package core

import (
	"context"
	"errors"
	"fmt"

	"fintrack-backend-go/internal/db"
	"fintrack-backend-go/internal/models"
)

// assetService implements the AssetService interface.
type assetService struct {
	assetRepo db.AssetRepository
}

// NewAssetService creates a new AssetService instance.
func NewAssetService(assetRepo db.AssetRepository) AssetService {
	return &assetService{assetRepo: assetRepo}
}

func (s *assetService) List(ctx context.Context, ownerID string) ([]*models.Asset, error) {
	assets, err := s.assetRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets for owner '%s': %w", ownerID, err)
	}
	return assets, nil
}

func (s *assetService) Get(ctx context.Context, ownerID, assetID string) (*models.Asset, error) {
	asset, err := s.assetRepo.GetByID(ctx, assetID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, fmt.Errorf("failed to get asset '%s': %w", assetID, err)
	}
	if asset.OwnerID != ownerID {
		return nil, ErrAssetNotFound
	}
	return asset, nil
}

func (s *assetService) Create(ctx context.Context, ownerID string, req models.CreateAssetRequest) (*models.Asset, error) {
	asset := &models.Asset{
		OwnerID:      ownerID,
		Name:         req.Name,
		CurrentValue: req.CurrentValue,
		AnnualAPY:    req.AnnualAPY,
		Notes:        req.Notes,
	}

	created, err := s.assetRepo.Create(ctx, asset)
	if err != nil {
		return nil, fmt.Errorf("failed to create asset for owner '%s': %w", ownerID, err)
	}
	return created, nil
}

func (s *assetService) Update(ctx context.Context, ownerID, assetID string, fields map[string]interface{}) (*models.Asset, error) {
	if _, err := s.Get(ctx, ownerID, assetID); err != nil {
		return nil, err
	}
	updated, err := s.assetRepo.Update(ctx, assetID, StripProtectedFields(fields))
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, fmt.Errorf("failed to update asset '%s': %w", assetID, err)
	}
	return updated, nil
}

func (s *assetService) Delete(ctx context.Context, ownerID, assetID string) error {
	if _, err := s.Get(ctx, ownerID, assetID); err != nil {
		return err
	}
	if err := s.assetRepo.Delete(ctx, assetID); err != nil {
		return fmt.Errorf("failed to delete asset '%s': %w", assetID, err)
	}
	return nil
}
