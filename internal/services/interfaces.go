package services

import (
	"profilecat/internal/models"
)

// CategoryInput carries the client-writable fields of a category. A nil
// field was not provided by the client and keeps its stored value.
type CategoryInput struct {
	Name          *string
	NameAr        *string
	Description   *string
	DescriptionAr *string
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	ListCategories(query CategoryQuery) ([]models.CategorySummary, error)
	GetCategory(categoryID string) (*models.CategorySummary, error)
	CreateCategory(profileID string, input CategoryInput) (*models.CategorySummary, error)
	UpdateCategory(categoryID string, input CategoryInput) (*models.CategorySummary, error)
	DeleteCategory(categoryID string) (*models.Category, error)
}

// ProfileServicer defines the contract for profile-related business logic.
type ProfileServicer interface {
	CreateProfile(name string) (*models.Profile, error)
	GetProfile(profileID string) (*models.Profile, error)
	DeleteProfile(profileID string) error
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(profileID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
