package models

// AuditLog records category mutations per profile.
type AuditLog struct {
	Base
	ProfileID    string `gorm:"type:uuid;not null;index" json:"profile_id"`
	Action       string `gorm:"not null" json:"action"`
	ResourceType string `gorm:"not null" json:"resource_type"`
	ResourceID   string `gorm:"type:uuid" json:"resource_id"`
	IPAddress    string `json:"ip_address"`
	Changes      string `json:"changes,omitempty"`
}
