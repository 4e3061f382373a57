package services

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "profilecat/internal/errors"
	"profilecat/internal/models"
)

const missingNameMessage = "Either 'name' or 'name_ar' must be provided"

// categoryService handles category-related business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// applyTo merges the provided fields over c, trimming surrounding whitespace.
func (in CategoryInput) applyTo(c *models.Category) {
	if in.Name != nil {
		c.Name = strings.TrimSpace(*in.Name)
	}
	if in.NameAr != nil {
		c.NameAr = strings.TrimSpace(*in.NameAr)
	}
	if in.Description != nil {
		c.Description = strings.TrimSpace(*in.Description)
	}
	if in.DescriptionAr != nil {
		c.DescriptionAr = strings.TrimSpace(*in.DescriptionAr)
	}
}

// columns returns the trimmed values of the provided fields keyed by column.
func (in CategoryInput) columns() map[string]interface{} {
	var c models.Category
	in.applyTo(&c)

	updates := make(map[string]interface{}, 4)
	if in.Name != nil {
		updates["name"] = c.Name
	}
	if in.NameAr != nil {
		updates["name_ar"] = c.NameAr
	}
	if in.Description != nil {
		updates["description"] = c.Description
	}
	if in.DescriptionAr != nil {
		updates["description_ar"] = c.DescriptionAr
	}
	return updates
}

// validateNames enforces that a category keeps at least one name.
func validateNames(c *models.Category) error {
	if c.HasName() {
		return nil
	}
	return apperrors.WithFields(apperrors.ErrValidation, missingNameMessage, map[string]string{
		"name":    missingNameMessage,
		"name_ar": missingNameMessage,
	})
}

// ListCategories returns the categories matching query, newest first, with their counts.
func (s *categoryService) ListCategories(query CategoryQuery) ([]models.CategorySummary, error) {
	summaries, err := findSummaries(s.db, query)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return summaries, nil
}

// GetCategory retrieves a single category with its counts.
func (s *categoryService) GetCategory(categoryID string) (*models.CategorySummary, error) {
	summaries, err := findSummaries(s.db, CategoryQuery{CategoryID: categoryID})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if len(summaries) == 0 {
		return nil, apperrors.ErrCategoryNotFound
	}
	return &summaries[0], nil
}

// CreateCategory creates a new category owned by profileID.
func (s *categoryService) CreateCategory(profileID string, input CategoryInput) (*models.CategorySummary, error) {
	category := &models.Category{ProfileID: profileID}
	input.applyTo(category)

	if err := validateNames(category); err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.Profile{}).Where("id = ?", profileID).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		return nil, apperrors.WithFields(apperrors.ErrValidation, "Invalid profile", map[string]string{
			"profile": "profile " + profileID + " does not exist",
		})
	}

	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &models.CategorySummary{Category: *category}, nil
}

// UpdateCategory merges input over the stored category, validates the merged
// result and persists it. Fields absent from input keep their stored values.
// The row is locked for the read-merge-write and only provided columns are written.
func (s *categoryService) UpdateCategory(categoryID string, input CategoryInput) (*models.CategorySummary, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var stored models.Category
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", categoryID).Limit(1).Find(&stored)
		if result.Error != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrCategoryNotFound
		}

		merged := stored
		input.applyTo(&merged)
		if err := validateNames(&merged); err != nil {
			return err
		}

		updates := input.columns()
		if len(updates) == 0 {
			updates["updated_at"] = tx.NowFunc()
		}
		if err := tx.Model(&models.Category{}).Where("id = ?", categoryID).Updates(updates).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetCategory(categoryID)
}

// DeleteCategory deletes a category and, through the foreign keys, its
// domains and items. The deleted category is returned.
func (s *categoryService) DeleteCategory(categoryID string) (*models.Category, error) {
	var category models.Category
	result := s.db.Where("id = ?", categoryID).Limit(1).Find(&category)
	if result.Error != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.ErrCategoryNotFound
	}

	if err := s.db.Delete(&category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}
