package services

import (
	"gorm.io/gorm"

	"profilecat/internal/models"
)

// CategoryQuery describes which categories to load.
// Empty fields apply no filter.
type CategoryQuery struct {
	ProfileID  string
	CategoryID string
}

// Scope returns a GORM scope applying the filters and the default
// newest-first ordering.
func (q CategoryQuery) Scope() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if q.ProfileID != "" {
			db = db.Where("profile_categories.profile_id = ?", q.ProfileID)
		}
		if q.CategoryID != "" {
			db = db.Where("profile_categories.id = ?", q.CategoryID)
		}
		return db.Order("profile_categories.created_at DESC").Order("profile_categories.id DESC")
	}
}

// categoryCounts is one row of the distinct-count aggregation.
type categoryCounts struct {
	CategoryID   string
	DomainsCount int64
	ItemsCount   int64
}

// countRelated computes distinct domain and item counts per category. Domains
// are joined to items, so counts must be DISTINCT to survive the fan-out.
func countRelated(db *gorm.DB, categoryIDs []string) (map[string]categoryCounts, error) {
	counts := make(map[string]categoryCounts, len(categoryIDs))
	if len(categoryIDs) == 0 {
		return counts, nil
	}

	var rows []categoryCounts
	err := db.Table("profile_domains").
		Select("profile_domains.profile_category_id AS category_id, "+
			"COUNT(DISTINCT profile_domains.id) AS domains_count, "+
			"COUNT(DISTINCT profile_items.id) AS items_count").
		Joins("LEFT JOIN profile_items ON profile_items.profile_domain_id = profile_domains.id").
		Where("profile_domains.profile_category_id IN ?", categoryIDs).
		Group("profile_domains.profile_category_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.CategoryID] = row
	}
	return counts, nil
}

// findSummaries runs q and attaches the related counts to every category.
func findSummaries(db *gorm.DB, q CategoryQuery) ([]models.CategorySummary, error) {
	var categories []models.Category
	if err := db.Model(&models.Category{}).Scopes(q.Scope()).Find(&categories).Error; err != nil {
		return nil, err
	}

	ids := make([]string, len(categories))
	for i := range categories {
		ids[i] = categories[i].ID
	}
	counts, err := countRelated(db, ids)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.CategorySummary, len(categories))
	for i := range categories {
		c := counts[categories[i].ID]
		summaries[i] = models.CategorySummary{
			Category:     categories[i],
			DomainsCount: c.DomainsCount,
			ItemsCount:   c.ItemsCount,
		}
	}
	return summaries, nil
}
