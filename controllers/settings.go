package controllers

import (
	"errors"
	"net/http"

	"aurora-backend/models"
	"aurora-backend/repositories"
	"aurora-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SettingsController manages the salon-wide configuration singleton
// and the weekly opening hours.
type SettingsController struct {
	Settings repositories.SettingsRepository
	Log      *zap.Logger
}

func NewSettingsController(settings repositories.SettingsRepository, log *zap.Logger) *SettingsController {
	return &SettingsController{Settings: settings, Log: log}
}

type UpdateConfigInput struct {
	AppointmentDuration int    `json:"appointmentDuration" binding:"required,gt=0"`
	AdvanceBookingDays  int    `json:"advanceBookingDays" binding:"required,gt=0"`
	CancellationHours   int    `json:"cancellationHours" binding:"required,gte=0"`
	WorkingDaysStart    int    `json:"workingDaysStart" binding:"gte=0,lte=6"`
	WorkingDaysEnd      int    `json:"workingDaysEnd" binding:"gte=0,lte=6"`
	BusinessName        string `json:"businessName"`
	BusinessPhone       string `json:"businessPhone"`
	BusinessEmail       string `json:"businessEmail"`
	BusinessAddress     string `json:"businessAddress"`
}

type WorkingHoursInput struct {
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}

type UpdateWorkingHoursInput struct {
	StaffID *string             `json:"staffId"`
	Hours   []WorkingHoursInput `json:"hours" binding:"required,dive"`
}

type WorkingHoursResponse struct {
	ID        string  `json:"id"`
	DayOfWeek int     `json:"dayOfWeek"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	StaffID   *string `json:"staffId,omitempty"`
}

type SettingsResponse struct {
	Config       *models.SystemConfig   `json:"config"`
	WorkingHours []WorkingHoursResponse `json:"workingHours"`
}

func toWorkingHoursResponses(hours []models.WorkingHours) []WorkingHoursResponse {
	responses := make([]WorkingHoursResponse, 0, len(hours))
	for _, h := range hours {
		responses = append(responses, WorkingHoursResponse{
			ID:        h.ID,
			DayOfWeek: h.DayOfWeek,
			StartTime: h.StartTime,
			EndTime:   h.EndTime,
			StaffID:   h.StaffID,
		})
	}
	return responses
}

// Get returns the configuration singleton together with every opening
// window.
func (sc *SettingsController) Get(c *gin.Context) {
	config, err := sc.Settings.GetConfig(c.Request.Context())
	if errors.Is(err, repositories.ErrNotFound) {
		// No row yet on a fresh deployment; answer with the defaults.
		config = &models.SystemConfig{
			ID:                  models.SystemConfigID,
			AppointmentDuration: 30,
			AdvanceBookingDays:  60,
			CancellationHours:   24,
			WorkingDaysStart:    1,
			WorkingDaysEnd:      6,
		}
	} else if err != nil {
		sc.Log.Error("load settings", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve settings")
		return
	}

	hours, err := sc.Settings.ListWorkingHours(c.Request.Context())
	if err != nil {
		sc.Log.Error("load working hours", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve settings")
		return
	}

	c.JSON(http.StatusOK, SettingsResponse{
		Config:       config,
		WorkingHours: toWorkingHoursResponses(hours),
	})
}

// UpdateConfig replaces the configuration singleton.
func (sc *SettingsController) UpdateConfig(c *gin.Context) {
	var input UpdateConfigInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	config := models.SystemConfig{
		ID:                  models.SystemConfigID,
		AppointmentDuration: input.AppointmentDuration,
		AdvanceBookingDays:  input.AdvanceBookingDays,
		CancellationHours:   input.CancellationHours,
		WorkingDaysStart:    input.WorkingDaysStart,
		WorkingDaysEnd:      input.WorkingDaysEnd,
		BusinessName:        input.BusinessName,
		BusinessPhone:       input.BusinessPhone,
		BusinessEmail:       input.BusinessEmail,
		BusinessAddress:     input.BusinessAddress,
	}

	if err := sc.Settings.UpdateConfig(c.Request.Context(), &config); err != nil {
		sc.Log.Error("update settings", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update settings")
		return
	}

	c.JSON(http.StatusOK, config)
}

// UpdateWorkingHours replaces the opening windows for the salon
// default (no staffId) or a single staff member.
func (sc *SettingsController) UpdateWorkingHours(c *gin.Context) {
	var input UpdateWorkingHoursInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	hours := make([]models.WorkingHours, 0, len(input.Hours))
	for _, h := range input.Hours {
		if h.DayOfWeek < 0 || h.DayOfWeek > 6 {
			utils.RespondWithError(c, http.StatusBadRequest, "dayOfWeek must be between 0 and 6")
			return
		}
		if !utils.ValidateTimeOfDay(h.StartTime) || !utils.ValidateTimeOfDay(h.EndTime) {
			utils.RespondWithError(c, http.StatusBadRequest, "Times must use the HH:MM format")
			return
		}
		hours = append(hours, models.WorkingHours{
			DayOfWeek: h.DayOfWeek,
			StartTime: h.StartTime,
			EndTime:   h.EndTime,
			StaffID:   input.StaffID,
		})
	}

	if err := sc.Settings.ReplaceWorkingHours(c.Request.Context(), input.StaffID, hours); err != nil {
		sc.Log.Error("update working hours", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update working hours")
		return
	}

	all, err := sc.Settings.ListWorkingHours(c.Request.Context())
	if err != nil {
		sc.Log.Error("reload working hours", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve working hours")
		return
	}

	c.JSON(http.StatusOK, toWorkingHoursResponses(all))
}
