package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"budgeteer/internal/models"
	"budgeteer/internal/pagination"
	"budgeteer/internal/services"
)

// CategoryHandler handles category management requests.
type CategoryHandler struct {
	categoryService services.CategoryServicer
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService services.CategoryServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CreateCategoryRequest represents the category creation payload.
type CreateCategoryRequest struct {
	Name       string          `json:"name" binding:"required,capitalized_name" example:"Groceries"`
	Polarity   models.Polarity `json:"polarity" binding:"required,polarity" example:"expense"`
	Percentage int             `json:"percentage" binding:"omitempty,min=1,max=100" example:"20"`
}

// UpdatePercentageRequest represents a budget percentage update payload.
type UpdatePercentageRequest struct {
	Percentage int `json:"percentage" binding:"required,min=1,max=100" example:"25"`
}

// CategoryResponse represents a category in responses.
type CategoryResponse struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Polarity   string    `json:"polarity"`
	Percentage int       `json:"percentage"`
	CreatedAt  time.Time `json:"created_at"`
}

func categoryJSON(category *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:         category.ID,
		Name:       category.Name,
		Polarity:   string(category.Polarity),
		Percentage: category.Percentage,
		CreatedAt:  category.CreatedAt,
	}
}

// CreateCategory handles category creation
// @Summary     Create category
// @Description Create a new global transaction category
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateCategoryRequest true "Category details"
// @Success     201 {object} CategoryResponse "Created category"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Duplicate name or percentage overflow"
// @Router      /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, err)
		return
	}

	category, err := h.categoryService.CreateCategory(req.Name, req.Polarity, req.Percentage)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"category": categoryJSON(category)})
}

// GetCategory handles category lookup by name
// @Summary     Get category
// @Description Get a category by its name
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       name path string true "Category name"
// @Success     200 {object} CategoryResponse "Category details"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /categories/{name} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	category, err := h.categoryService.GetCategoryByName(c.Param("name"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": categoryJSON(category)})
}

// ListCategories handles listing all categories
// @Summary     List categories
// @Description List all categories with pagination
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number" default(1)
// @Param       page_size query int false "Page size" default(20)
// @Success     200 {object} pagination.PageResponse[CategoryResponse] "Categories"
// @Router      /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.categoryService.ListCategories(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	out := make([]CategoryResponse, 0, len(result.Data))
	for i := range result.Data {
		out = append(out, categoryJSON(&result.Data[i]))
	}

	c.JSON(http.StatusOK, pagination.PageResponse[CategoryResponse]{
		Data:       out,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalItems: result.TotalItems,
		TotalPages: result.TotalPages,
	})
}

// UpdatePercentage handles updating an expense category's budget percentage
// @Summary     Update budget percentage
// @Description Set the budget percentage of an expense category
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       name path string true "Category name"
// @Param       request body UpdatePercentageRequest true "New percentage"
// @Success     200 {object} CategoryResponse "Updated category"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     409 {object} ErrorResponse "Percentage overflow"
// @Router      /categories/{name}/percentage [put]
func (h *CategoryHandler) UpdatePercentage(c *gin.Context) {
	var req UpdatePercentageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, err)
		return
	}

	category, err := h.categoryService.GetCategoryByName(c.Param("name"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	updated, err := h.categoryService.UpdateExpensePercentage(category.ID, req.Percentage)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": categoryJSON(updated)})
}

// DeleteCategory handles category deletion
// @Summary     Delete category
// @Description Delete a category and all transactions referencing it
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       name path string true "Category name"
// @Success     200 {object} MessageResponse "Category deleted"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /categories/{name} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	if err := h.categoryService.DeleteCategoryByName(c.Param("name")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Category deleted successfully"})
}
