package handlers

import (
	"time"

	"profilecat/internal/models"
)

// CategoryResponse represents a category in the response. The display fields
// are resolved for the request language and never stored.
type CategoryResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	NameAr             string    `json:"name_ar"`
	Description        string    `json:"description"`
	DescriptionAr      string    `json:"description_ar"`
	Profile            string    `json:"profile"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
	DisplayName        string    `json:"display_name"`
	DisplayDescription string    `json:"display_description"`
	DomainsCount       int64     `json:"domains_count"`
	ItemsCount         int64     `json:"items_count"`
}

// presentCategory builds the response for s in lang without touching s.
func presentCategory(s *models.CategorySummary, lang models.Language) CategoryResponse {
	return CategoryResponse{
		ID:                 s.ID,
		Name:               s.Name,
		NameAr:             s.NameAr,
		Description:        s.Description,
		DescriptionAr:      s.DescriptionAr,
		Profile:            s.ProfileID,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
		DisplayName:        s.NameFor(lang),
		DisplayDescription: s.DescriptionFor(lang),
		DomainsCount:       s.DomainsCount,
		ItemsCount:         s.ItemsCount,
	}
}

func presentCategories(summaries []models.CategorySummary, lang models.Language) []CategoryResponse {
	out := make([]CategoryResponse, len(summaries))
	for i := range summaries {
		out[i] = presentCategory(&summaries[i], lang)
	}
	return out
}

// ProfileResponse represents a profile in the response.
type ProfileResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func presentProfile(p *models.Profile) ProfileResponse {
	return ProfileResponse{ID: p.ID, Name: p.Name, CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt}
}
