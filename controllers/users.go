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

// UserController covers the admin-only account management endpoints.
type UserController struct {
	Users repositories.UserRepository
	Log   *zap.Logger
}

func NewUserController(users repositories.UserRepository, log *zap.Logger) *UserController {
	return &UserController{Users: users, Log: log}
}

type UpdateUserRoleInput struct {
	Role string `json:"role" binding:"required"`
}

type UserResponse struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	Email             string      `json:"email"`
	Image             string      `json:"image,omitempty"`
	Role              models.Role `json:"role"`
	Enabled           bool        `json:"enabled"`
	CreatedAt         time.Time   `json:"createdAt"`
	AppointmentsCount int64       `json:"appointmentsCount"`
}

func toUserResponse(r *repositories.UserRecord) UserResponse {
	return UserResponse{
		ID:                r.ID,
		Name:              r.Name,
		Email:             r.Email,
		Image:             r.Image,
		Role:              r.Role,
		Enabled:           r.Enabled,
		CreatedAt:         r.CreatedAt,
		AppointmentsCount: r.AppointmentsCount,
	}
}

// List returns every account with its appointment count, newest first.
func (uc *UserController) List(c *gin.Context) {
	users, err := uc.Users.List(c.Request.Context())
	if err != nil {
		uc.Log.Error("list users", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve users")
		return
	}

	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, toUserResponse(&users[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// UpdateRole reassigns an account's role.
func (uc *UserController) UpdateRole(c *gin.Context) {
	var input UpdateUserRoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	role := models.Role(input.Role)
	if !role.Valid() {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid role provided")
		return
	}

	updated, err := uc.Users.UpdateRole(c.Request.Context(), c.Param("id"), role)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "User not found")
		} else {
			uc.Log.Error("update user role", zap.Error(err))
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update user")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Role updated successfully",
		"user":    toUserResponse(updated),
	})
}
