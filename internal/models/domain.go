package models

// Domain groups items inside a category.
type Domain struct {
	Base
	ProfileCategoryID string `gorm:"type:uuid;not null;index" json:"profile_category"`
	Name              string `gorm:"not null" json:"name"`

	Category *Category `gorm:"foreignKey:ProfileCategoryID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Domain) TableName() string {
	return "profile_domains"
}

// Item is a single evaluated entry of a domain.
type Item struct {
	Base
	ProfileDomainID string `gorm:"type:uuid;not null;index" json:"profile_domain"`
	Name            string `gorm:"not null" json:"name"`

	Domain *Domain `gorm:"foreignKey:ProfileDomainID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Item) TableName() string {
	return "profile_items"
}
