package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "profilecat/internal/errors"
	"profilecat/internal/models"
	"profilecat/internal/services"
	"profilecat/internal/uuid"
)

// CategoryHandler handles category-related requests.
type CategoryHandler struct {
	categoryService services.CategoryServicer
	auditService    services.AuditServicer
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService services.CategoryServicer, auditService services.AuditServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, auditService: auditService}
}

// CategoryRequest represents the request payload for creating or updating a
// category. Omitted fields keep their stored value on update.
type CategoryRequest struct {
	Name          *string `json:"name" binding:"omitempty,trimmed_max=100"`
	NameAr        *string `json:"name_ar" binding:"omitempty,trimmed_max=100"`
	Description   *string `json:"description"`
	DescriptionAr *string `json:"description_ar"`
}

func (r CategoryRequest) input() services.CategoryInput {
	return services.CategoryInput{
		Name:          r.Name,
		NameAr:        r.NameAr,
		Description:   r.Description,
		DescriptionAr: r.DescriptionAr,
	}
}

// changes lists the provided fields for the audit trail.
func (r CategoryRequest) changes() map[string]interface{} {
	changes := make(map[string]interface{})
	for key, value := range map[string]*string{
		"name":           r.Name,
		"name_ar":        r.NameAr,
		"description":    r.Description,
		"description_ar": r.DescriptionAr,
	} {
		if value != nil {
			changes[key] = *value
		}
	}
	return changes
}

// CategoryListQuery represents the query parameters accepted by the list endpoints.
type CategoryListQuery struct {
	ProfileID string `form:"profile_id" binding:"omitempty,uuid_id"`
	Language  string `form:"language"`
}

// profileFilter returns the canonical profile_id filter, or "" for none.
// The value has already passed the uuid_id binding rule.
func (q CategoryListQuery) profileFilter() string {
	id, err := uuid.Normalize(q.ProfileID)
	if err != nil {
		return ""
	}
	return id
}

func (h *CategoryHandler) list(c *gin.Context) {
	var q CategoryListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, invalidQuery(err))
		return
	}

	categories, err := h.categoryService.ListCategories(services.CategoryQuery{ProfileID: q.profileFilter()})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, presentCategories(categories, models.ParseLanguage(q.Language)))
}

// ListCategories handles listing categories
// @Summary     List categories
// @Description List categories newest first, optionally restricted to one profile. Each category carries its distinct domain and item counts.
// @Tags        categories
// @Produce     json
// @Param       profile_id query string false "Profile ID"
// @Param       language   query string false "Display language (fr or ar)"
// @Success     200 {array}  CategoryResponse "Categories"
// @Failure     400 {object} ErrorResponse "Invalid profile ID"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /category/categories/ [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	h.list(c)
}

// ListCategoriesByLanguage handles listing categories with display fields in a given language
// @Summary     List categories by language
// @Description Same as listing categories, with display_name and display_description resolved for the requested language (default fr).
// @Tags        categories
// @Produce     json
// @Param       language   query string false "Display language (fr or ar)"
// @Param       profile_id query string false "Profile ID"
// @Success     200 {array}  CategoryResponse "Categories"
// @Failure     400 {object} ErrorResponse "Invalid profile ID"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /category/categories/by_language/ [get]
func (h *CategoryHandler) ListCategoriesByLanguage(c *gin.Context) {
	h.list(c)
}

// GetCategory handles retrieving a single category
// @Summary     Get a category
// @Description Get a category with its domain and item counts
// @Tags        categories
// @Produce     json
// @Param       id       path  string true  "Category ID"
// @Param       language query string false "Display language (fr or ar)"
// @Success     200 {object} CategoryResponse "Category"
// @Failure     400 {object} ErrorResponse "Invalid category ID"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /category/categories/{id}/ [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	categoryID, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	category, err := h.categoryService.GetCategory(categoryID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, presentCategory(category, requestLanguage(c)))
}

// CreateCategory handles the creation of a new category
// @Summary     Create a category
// @Description Create a category for the profile given in the query string. At least one of name or name_ar is required.
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       profile_id query string          true "Profile ID"
// @Param       request    body  CategoryRequest true "Category details"
// @Success     201 {object} CategoryResponse "Category created"
// @Failure     400 {object} ErrorResponse "Invalid input or missing profile_id"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /category/categories/ [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	rawProfileID := c.Query("profile_id")
	if rawProfileID == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrMissingParameter, "profile_id is required"))
		return
	}
	profileID, err := normalizeID(rawProfileID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CategoryRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	category, err := h.categoryService.CreateCategory(profileID, req.input())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(profileID, "CREATE_CATEGORY", "category", category.ID, c.ClientIP(), req.changes())

	c.JSON(http.StatusCreated, presentCategory(category, requestLanguage(c)))
}

// UpdateCategory handles updating an existing category
// @Summary     Update a category
// @Description Update the name and description fields of a category. Omitted fields keep their value; the result must still have a name.
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       id      path string          true "Category ID"
// @Param       request body CategoryRequest true "Fields to update"
// @Success     200 {object} CategoryResponse "Category updated"
// @Failure     400 {object} ErrorResponse "Invalid input or category ID"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /category/categories/{id}/ [put]
// @Router      /category/categories/{id}/ [patch]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	categoryID, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CategoryRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	category, err := h.categoryService.UpdateCategory(categoryID, req.input())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(category.ProfileID, "UPDATE_CATEGORY", "category", category.ID, c.ClientIP(), req.changes())

	c.JSON(http.StatusOK, presentCategory(category, requestLanguage(c)))
}

// DeleteCategory handles deleting a category
// @Summary     Delete a category
// @Description Delete a category together with its domains and items
// @Tags        categories
// @Param       id path string true "Category ID"
// @Success     204 "Category deleted"
// @Failure     400 {object} ErrorResponse "Invalid category ID"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /category/categories/{id}/ [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	categoryID, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	category, err := h.categoryService.DeleteCategory(categoryID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(category.ProfileID, "DELETE_CATEGORY", "category", category.ID, c.ClientIP(),
		map[string]interface{}{"name": category.String()})

	c.Status(http.StatusNoContent)
}
