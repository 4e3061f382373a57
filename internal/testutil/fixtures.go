package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"profilecat/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestProfile creates a profile with a unique name.
func CreateTestProfile(t *testing.T, db *gorm.DB) *models.Profile {
	t.Helper()

	profile := &models.Profile{Name: fmt.Sprintf("Profile %d", nextID())}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to create test profile: %v", err)
	}
	return profile
}

// CreateTestCategory creates a category with a unique French name.
func CreateTestCategory(t *testing.T, db *gorm.DB, profileID string) *models.Category {
	t.Helper()
	return CreateTestCategoryWith(t, db, &models.Category{
		ProfileID: profileID,
		Name:      fmt.Sprintf("Catégorie %d", nextID()),
	})
}

// CreateTestCategoryWith persists the given category as-is.
func CreateTestCategoryWith(t *testing.T, db *gorm.DB, category *models.Category) *models.Category {
	t.Helper()

	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestDomain creates a domain inside the given category.
func CreateTestDomain(t *testing.T, db *gorm.DB, categoryID string) *models.Domain {
	t.Helper()

	domain := &models.Domain{
		ProfileCategoryID: categoryID,
		Name:              fmt.Sprintf("Domaine %d", nextID()),
	}
	if err := db.Create(domain).Error; err != nil {
		t.Fatalf("failed to create test domain: %v", err)
	}
	return domain
}

// CreateTestItem creates an item inside the given domain.
func CreateTestItem(t *testing.T, db *gorm.DB, domainID string) *models.Item {
	t.Helper()

	item := &models.Item{
		ProfileDomainID: domainID,
		Name:            fmt.Sprintf("Item %d", nextID()),
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create test item: %v", err)
	}
	return item
}
