package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "profilecat/internal/errors"
	"profilecat/internal/models"
)

// profileService handles the parent profiles of categories.
type profileService struct {
	db *gorm.DB
}

// NewProfileService creates a new ProfileServicer.
func NewProfileService(db *gorm.DB) ProfileServicer {
	return &profileService{db: db}
}

// CreateProfile creates a new profile.
func (s *profileService) CreateProfile(name string) (*models.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithFields(apperrors.ErrValidation, "profile name is required",
			map[string]string{"name": "This field may not be blank."})
	}

	profile := &models.Profile{Name: name}
	if err := s.db.Create(profile).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return profile, nil
}

// GetProfile retrieves a profile by ID.
func (s *profileService) GetProfile(profileID string) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.Where("id = ?", profileID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &profile, nil
}

// DeleteProfile deletes a profile. Its categories, domains and items are
// removed by ON DELETE CASCADE.
func (s *profileService) DeleteProfile(profileID string) error {
	result := s.db.Where("id = ?", profileID).Delete(&models.Profile{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrProfileNotFound
	}
	return nil
}
