package profile

import (
	"NutriPlan-Backend/domain"
	"NutriPlan-Backend/entities"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type (
	ProfileService interface {
		CompleteProfile(ctx context.Context, req domain.CompleteProfileRequest) (*entities.UserProfile, string, error)
		GetProfile(ctx context.Context, userID string) (*entities.UserProfile, error)
	}

	profileService struct {
		profileRepository ProfileRepository
	}
)

func NewProfileService(profileRepository ProfileRepository) ProfileService {
	return &profileService{profileRepository: profileRepository}
}

// CompleteProfile creates the profile on first submission and afterwards only
// fills attributes that are still unset. A value that has been stored once is
// never overwritten.
func (s *profileService) CompleteProfile(ctx context.Context, req domain.CompleteProfileRequest) (*entities.UserProfile, string, error) {
	if req.UserID == "" {
		return nil, "", domain.ErrMissingUserID
	}

	existing, err := s.profileRepository.GetByUserID(ctx, req.UserID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", domain.ErrCheckingExistingUser
	}

	now := time.Now().UTC()

	if existing == nil || errors.Is(err, gorm.ErrRecordNotFound) {
		if req.Email == "" || req.Name == "" {
			return nil, "", domain.ErrMissingEmailOrName
		}
		created := &entities.UserProfile{
			UserID:           req.UserID,
			Email:            req.Email,
			Name:             req.Name,
			Height:           req.Height,
			Weight:           req.Weight,
			DateOfBirth:      req.DateOfBirth,
			Gender:           req.Gender,
			HealthConditions: normalizeConditions(req.HealthConditions),
			DateCreated:      now,
			LastUpdated:      now,
		}
		if err := s.profileRepository.Create(ctx, created); err != nil {
			return nil, "", domain.ErrFailedToSaveProfile
		}
		return created, domain.MessageUserCreated, nil
	}

	changed := false
	if req.Email != "" && existing.Email == "" {
		existing.Email = req.Email
		changed = true
	}
	if req.Name != "" && existing.Name == "" {
		existing.Name = req.Name
		changed = true
	}
	if req.Height != nil && existing.Height == nil {
		existing.Height = req.Height
		changed = true
	}
	if req.Weight != nil && existing.Weight == nil {
		existing.Weight = req.Weight
		changed = true
	}
	if req.DateOfBirth != "" && existing.DateOfBirth == "" {
		existing.DateOfBirth = req.DateOfBirth
		changed = true
	}
	if req.Gender != "" && existing.Gender == "" {
		existing.Gender = req.Gender
		changed = true
	}
	if len(req.HealthConditions) > 0 && existing.HealthConditions == nil {
		existing.HealthConditions = normalizeConditions(req.HealthConditions)
		changed = true
	}

	if !changed {
		return existing, domain.MessageUserExists, nil
	}

	existing.LastUpdated = now
	if err := s.profileRepository.Update(ctx, existing); err != nil {
		return nil, "", domain.ErrFailedToUpdateUser
	}
	return existing, domain.MessageAttributesAdded, nil
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (*entities.UserProfile, error) {
	profile, err := s.profileRepository.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// Comma splitting of bare-string payloads already happened during decoding;
// here we only guarantee a non-nil slice for storage.
func normalizeConditions(conditions domain.HealthConditions) []string {
	if len(conditions) == 0 {
		return []string{}
	}
	return conditions
}
