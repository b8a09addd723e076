// controllers/services.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"aurora-backend/middleware"
	"aurora-backend/models"
	"aurora-backend/repositories"
	"aurora-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ServiceController handles the service catalog endpoints.
type ServiceController struct {
	Services   repositories.ServiceRepository
	Categories repositories.CategoryRepository
	Log        *zap.Logger
}

func NewServiceController(services repositories.ServiceRepository, categories repositories.CategoryRepository, log *zap.Logger) *ServiceController {
	return &ServiceController{Services: services, Categories: categories, Log: log}
}

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Duration    int     `json:"duration" binding:"required,gt=0"` // in minutes
	Price       float64 `json:"price" binding:"required,gt=0"`
	CategoryID  *string `json:"categoryId"`
}

// UpdateServiceInput defines the expected JSON structure for updating a
// service. Unlike creation, a zero price is accepted here.
type UpdateServiceInput struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Duration    int      `json:"duration" binding:"required,gt=0"`
	Price       *float64 `json:"price" binding:"required"`
	CategoryID  *string  `json:"categoryId"`
	Enabled     *bool    `json:"enabled"`
}

type categorySummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

type userSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ServiceResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Duration    int              `json:"duration"`
	Price       float64          `json:"price"`
	CategoryID  *string          `json:"categoryId"`
	CreatedBy   string           `json:"createdBy"`
	Enabled     bool             `json:"enabled"`
	CreatedAt   time.Time        `json:"createdAt"`
	Category    *categorySummary `json:"category"`
	Creator     *userSummary     `json:"creator"`
}

func toServiceResponse(s *models.Service) ServiceResponse {
	resp := ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Duration:    s.Duration,
		Price:       s.Price,
		CategoryID:  s.CategoryID,
		CreatedBy:   s.CreatedBy,
		Enabled:     s.State.Active(),
		CreatedAt:   s.CreatedAt,
	}
	if s.Category != nil {
		resp.Category = &categorySummary{ID: s.Category.ID, Name: s.Category.Name, Color: s.Category.Color}
	}
	if s.Creator != nil {
		resp.Creator = &userSummary{ID: s.Creator.ID, Name: s.Creator.Name}
	}
	return resp
}

// List retrieves the service catalog. ADMIN and STAFF may request the
// admin view (?all=true) which includes disabled services.
func (sc *ServiceController) List(c *gin.Context) {
	principal, _ := middleware.Principal(c)

	includeDisabled := c.Query("all") == "true" &&
		(principal.Role == models.RoleAdmin || principal.Role == models.RoleStaff)

	services, err := sc.Services.List(c.Request.Context(), includeDisabled)
	if err != nil {
		sc.Log.Error("list services", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	responses := make([]ServiceResponse, 0, len(services))
	for i := range services {
		responses = append(responses, toServiceResponse(&services[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// Create adds a new service to the catalog.
func (sc *ServiceController) Create(c *gin.Context) {
	principal, _ := middleware.Principal(c)

	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.CategoryID != nil && *input.CategoryID != "" {
		if _, err := sc.Categories.FindByID(c.Request.Context(), *input.CategoryID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				utils.RespondWithError(c, http.StatusNotFound, "Category not found")
			} else {
				sc.Log.Error("check category", zap.Error(err))
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
	} else {
		input.CategoryID = nil
	}

	service := models.Service{
		Name:        input.Name,
		Description: input.Description,
		Duration:    input.Duration,
		Price:       input.Price,
		CategoryID:  input.CategoryID,
		CreatedBy:   principal.ID,
		State:       models.LifecycleActive,
	}

	created, err := sc.Services.Create(c.Request.Context(), &service)
	if err != nil {
		sc.Log.Error("create service", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, toServiceResponse(created))
}

// Update replaces an existing service's fields.
func (sc *ServiceController) Update(c *gin.Context) {
	serviceID := c.Param("id")

	service, err := sc.Services.FindByID(c.Request.Context(), serviceID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			sc.Log.Error("find service", zap.Error(err))
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if *input.Price < 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Price must be greater than or equal to 0")
		return
	}

	if input.CategoryID != nil && *input.CategoryID != "" {
		if _, err := sc.Categories.FindByID(c.Request.Context(), *input.CategoryID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				utils.RespondWithError(c, http.StatusNotFound, "Category not found")
			} else {
				sc.Log.Error("check category", zap.Error(err))
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
	} else {
		input.CategoryID = nil
	}

	service.Name = input.Name
	service.Description = input.Description
	service.Duration = input.Duration
	service.Price = *input.Price
	service.CategoryID = input.CategoryID
	if input.Enabled != nil {
		if *input.Enabled {
			service.State = models.LifecycleActive
		} else {
			service.State = models.LifecycleDisabled
		}
	}

	updated, err := sc.Services.Update(c.Request.Context(), service)
	if err != nil {
		sc.Log.Error("update service", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}

	c.JSON(http.StatusOK, toServiceResponse(updated))
}

// Delete disables a service. The row stays queryable by id.
func (sc *ServiceController) Delete(c *gin.Context) {
	serviceID := c.Param("id")

	if err := sc.Services.SoftDelete(c.Request.Context(), serviceID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			sc.Log.Error("delete service", zap.Error(err))
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service")
		}
		return
	}

	utils.RespondWithMessage(c, http.StatusOK, "Service disabled successfully")
}
