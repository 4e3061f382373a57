package models

// Profile owns categories. Deleting a profile deletes its categories.
type Profile struct {
	Base
	Name string `gorm:"size:150;not null" json:"name"`
}
