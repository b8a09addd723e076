package controllers

import (
	"net/http"

	"aurora-backend/models"
	"aurora-backend/repositories"
	"aurora-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StaffController exposes the staff directory used by the booking UI.
type StaffController struct {
	Users repositories.UserRepository
	Log   *zap.Logger
}

func NewStaffController(users repositories.UserRepository, log *zap.Logger) *StaffController {
	return &StaffController{Users: users, Log: log}
}

type StaffResponse struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

// List returns the enabled STAFF and ADMIN accounts, name ascending.
func (sc *StaffController) List(c *gin.Context) {
	staff, err := sc.Users.ListStaff(c.Request.Context())
	if err != nil {
		sc.Log.Error("list staff", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve staff")
		return
	}

	responses := make([]StaffResponse, 0, len(staff))
	for _, u := range staff {
		responses = append(responses, StaffResponse{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
			Role:  u.Role,
		})
	}
	c.JSON(http.StatusOK, responses)
}
