package controllers

import (
	"errors"
	"net/http"
	"time"

	"aurora-backend/models"
	"aurora-backend/repositories"
	"aurora-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CategoryController handles the service-category endpoints.
type CategoryController struct {
	Categories repositories.CategoryRepository
	Log        *zap.Logger
}

func NewCategoryController(categories repositories.CategoryRepository, log *zap.Logger) *CategoryController {
	return &CategoryController{Categories: categories, Log: log}
}

type CategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

type CategoryResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Color         string    `json:"color,omitempty"`
	Enabled       bool      `json:"enabled"`
	CreatedAt     time.Time `json:"createdAt"`
	ServicesCount int64     `json:"servicesCount"`
}

func toCategoryResponse(record *repositories.CategoryRecord) CategoryResponse {
	return CategoryResponse{
		ID:            record.ID,
		Name:          record.Name,
		Description:   record.Description,
		Color:         record.Color,
		Enabled:       record.State.Active(),
		CreatedAt:     record.CreatedAt,
		ServicesCount: record.ServicesCount,
	}
}

// List retrieves all active categories with their service counts.
func (cc *CategoryController) List(c *gin.Context) {
	records, err := cc.Categories.List(c.Request.Context())
	if err != nil {
		cc.Log.Error("list categories", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve categories")
		return
	}

	responses := make([]CategoryResponse, 0, len(records))
	for i := range records {
		responses = append(responses, toCategoryResponse(&records[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// Create adds a new category. The name must not collide with another
// active category.
func (cc *CategoryController) Create(c *gin.Context) {
	var input CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	taken, err := cc.Categories.NameTaken(c.Request.Context(), input.Name, "")
	if err != nil {
		cc.Log.Error("check category name", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if taken {
		utils.RespondWithError(c, http.StatusBadRequest, "A category with that name already exists")
		return
	}

	category := models.ServiceCategory{
		Name:        input.Name,
		Description: input.Description,
		Color:       input.Color,
		State:       models.LifecycleActive,
	}

	created, err := cc.Categories.Create(c.Request.Context(), &category)
	if err != nil {
		cc.Log.Error("create category", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create category")
		return
	}

	c.JSON(http.StatusCreated, toCategoryResponse(created))
}

// Update replaces a category's fields.
func (cc *CategoryController) Update(c *gin.Context) {
	categoryID := c.Param("id")

	category, err := cc.Categories.FindByID(c.Request.Context(), categoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Category not found")
		} else {
			cc.Log.Error("find category", zap.Error(err))
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var input CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Name != category.Name {
		taken, err := cc.Categories.NameTaken(c.Request.Context(), input.Name, categoryID)
		if err != nil {
			cc.Log.Error("check category name", zap.Error(err))
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
		if taken {
			utils.RespondWithError(c, http.StatusBadRequest, "A category with that name already exists")
			return
		}
	}

	category.Name = input.Name
	category.Description = input.Description
	category.Color = input.Color

	updated, err := cc.Categories.Update(c.Request.Context(), category)
	if err != nil {
		cc.Log.Error("update category", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update category")
		return
	}

	c.JSON(http.StatusOK, toCategoryResponse(updated))
}

// Delete disables a category unless active services still reference it.
func (cc *CategoryController) Delete(c *gin.Context) {
	categoryID := c.Param("id")

	if err := cc.Categories.SoftDelete(c.Request.Context(), categoryID); err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			utils.RespondWithError(c, http.StatusNotFound, "Category not found")
		case errors.Is(err, repositories.ErrDependency):
			utils.RespondWithError(c, http.StatusBadRequest, "Cannot delete a category that has active services")
		default:
			cc.Log.Error("delete category", zap.Error(err))
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete category")
		}
		return
	}

	utils.RespondWithMessage(c, http.StatusOK, "Category disabled successfully")
}
