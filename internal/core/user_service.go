package core

import (
	"context"
	"errors"
	"fmt"

	"fintrack-backend-go/internal/db"
	"fintrack-backend-go/internal/models"
)

// Resource-family keys tracked in a user's version snapshot.
var snapshotFamilies = []string{"users", "plans", "budgets", "assets", "debts"}

// userService implements the UserService interface.
type userService struct {
	userRepo    db.UserRepository
	versionRepo db.UserVersionRepository
}

// NewUserService creates a new UserService instance.
func NewUserService(userRepo db.UserRepository, versionRepo db.UserVersionRepository) UserService {
	return &userService{
		userRepo:    userRepo,
		versionRepo: versionRepo,
	}
}

// GetOrProvision retrieves the caller's profile, creating one from token
// claims if absent. The profile is keyed by the identity subject itself, not
// a generated ID, so repeated calls converge on the same document.
func (s *userService) GetOrProvision(ctx context.Context, identity Identity) (*models.User, bool, error) {
	user, err := s.userRepo.GetByID(ctx, identity.Subject)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to get user '%s': %w", identity.Subject, err)
	}

	newUser := &models.User{
		ID:            identity.Subject,
		OwnerID:       identity.Subject,
		DisplayName:   identity.DisplayName,
		Email:         identity.Email,
		Birthday:      identity.Birthday,
		RetirementAge: models.DefaultRetirementAge,
	}
	if newUser.DisplayName == "" {
		newUser.DisplayName = models.DefaultDisplayName
	}
	if newUser.Email == "" {
		newUser.Email = models.DefaultEmail
	}
	if newUser.Birthday == "" {
		newUser.Birthday = models.DefaultBirthday
	}

	created, err := s.userRepo.Create(ctx, newUser)
	if err != nil {
		return nil, false, fmt.Errorf("failed to auto-provision user '%s': %w", identity.Subject, err)
	}
	if err := s.appendVersionSnapshot(ctx, created); err != nil {
		return nil, false, err
	}
	return created, true, nil
}

// Create handles the explicit POST /users path.
func (s *userService) Create(ctx context.Context, identity Identity, req models.CreateUserRequest) (*models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, identity.Subject); err == nil {
		return nil, ErrUserAlreadyExists
	} else if !errors.Is(err, db.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing user '%s': %w", identity.Subject, err)
	}

	newUser := &models.User{
		ID:            identity.Subject,
		OwnerID:       identity.Subject,
		DisplayName:   req.DisplayName,
		Email:         req.Email,
		Birthday:      req.Birthday,
		RetirementAge: req.RetirementAge,
	}
	if newUser.Birthday == "" {
		newUser.Birthday = models.DefaultBirthday
	}
	if newUser.RetirementAge == 0 {
		newUser.RetirementAge = models.DefaultRetirementAge
	}

	created, err := s.userRepo.Create(ctx, newUser)
	if err != nil {
		return nil, fmt.Errorf("failed to create user '%s': %w", identity.Subject, err)
	}
	if err := s.appendVersionSnapshot(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

// Update applies a partial update to the caller's own profile and appends a
// fresh version snapshot.
func (s *userService) Update(ctx context.Context, userID string, fields map[string]interface{}) (*models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user '%s' for update: %w", userID, err)
	}

	updated, err := s.userRepo.Update(ctx, userID, StripProtectedFields(fields))
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update user '%s': %w", userID, err)
	}
	if err := s.appendVersionSnapshot(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// LatestVersionSnapshot returns the newest snapshot for the user.
func (s *userService) LatestVersionSnapshot(ctx context.Context, userID string) (*models.UserVersion, error) {
	snapshot, err := s.versionRepo.Latest(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to load version snapshot for user '%s': %w", userID, err)
	}
	return snapshot, nil
}

// appendVersionSnapshot writes a new snapshot derived from the latest one:
// the prior resource counters are carried over, the users counter takes the
// profile's current version, and the global counter advances by one.
// Snapshots are appended, never overwritten.
func (s *userService) appendVersionSnapshot(ctx context.Context, user *models.User) error {
	resources := make(map[string]int64, len(snapshotFamilies))
	for _, family := range snapshotFamilies {
		resources[family] = 0
	}
	var global int64 = 1

	prior, err := s.versionRepo.Latest(ctx, user.ID)
	if err == nil {
		for family, counter := range prior.Resources {
			resources[family] = counter
		}
		global = prior.Global + 1
	} else if !errors.Is(err, db.ErrNotFound) {
		return fmt.Errorf("failed to load prior version snapshot for user '%s': %w", user.ID, err)
	}
	resources["users"] = user.Version

	if _, err := s.versionRepo.Append(ctx, &models.UserVersion{
		UserID:    user.ID,
		Global:    global,
		Resources: resources,
	}); err != nil {
		return fmt.Errorf("failed to append version snapshot for user '%s': %w", user.ID, err)
	}
	return nil
}
