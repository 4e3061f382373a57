package models

import "strings"

// Category is a bilingual grouping of domains that belongs to a profile.
type Category struct {
	Base
	ProfileID     string `gorm:"type:uuid;not null;index" json:"profile"`
	Name          string `gorm:"size:100" json:"name"`
	NameAr        string `gorm:"size:100" json:"name_ar"`
	Description   string `json:"description"`
	DescriptionAr string `json:"description_ar"`

	// Relationships
	Profile *Profile `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName keeps the table name used by the original schema.
func (Category) TableName() string {
	return "profile_categories"
}

// NameFor returns the name to display for lang, falling back to the other
// language when the preferred one is empty.
func (c *Category) NameFor(lang Language) string {
	return lang.pick(c.Name, c.NameAr)
}

// DescriptionFor applies the same fallback rule as NameFor to the descriptions.
func (c *Category) DescriptionFor(lang Language) string {
	return lang.pick(c.Description, c.DescriptionAr)
}

// HasName reports whether at least one of the name fields is non-blank.
func (c *Category) HasName() bool {
	return strings.TrimSpace(c.Name) != "" || strings.TrimSpace(c.NameAr) != ""
}

func (c *Category) String() string {
	if c.Name != "" {
		return c.Name
	}
	if c.NameAr != "" {
		return c.NameAr
	}
	return "Category " + c.ID
}

// CategorySummary is a category annotated with counts computed at query time.
type CategorySummary struct {
	Category
	DomainsCount int64 `json:"domains_count"`
	ItemsCount   int64 `json:"items_count"`
}
