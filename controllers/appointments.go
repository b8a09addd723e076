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

// AppointmentController handles the booking endpoints.
type AppointmentController struct {
	Appointments repositories.AppointmentRepository
	Services     repositories.ServiceRepository
	Customers    repositories.CustomerRepository
	Log          *zap.Logger
}

func NewAppointmentController(
	appointments repositories.AppointmentRepository,
	services repositories.ServiceRepository,
	customers repositories.CustomerRepository,
	log *zap.Logger,
) *AppointmentController {
	return &AppointmentController{
		Appointments: appointments,
		Services:     services,
		Customers:    customers,
		Log:          log,
	}
}

// CreateAppointmentInput defines the expected JSON structure for
// booking an appointment. Duration overrides the service's default
// when present.
type CreateAppointmentInput struct {
	CustomerID string    `json:"customerId" binding:"required"`
	ServiceID  string    `json:"serviceId" binding:"required"`
	StaffID    *string   `json:"staffId"`
	StartTime  time.Time `json:"startTime" binding:"required"`
	Duration   *int      `json:"duration"`
	Notes      string    `json:"notes"`
}

type UpdateAppointmentStatusInput struct {
	Status string `json:"status" binding:"required"`
}

type appointmentCustomerSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type appointmentServiceSummary struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Duration int     `json:"duration"`
	Price    float64 `json:"price"`
}

type AppointmentResponse struct {
	ID        string                      `json:"id"`
	StartTime time.Time                   `json:"startTime"`
	EndTime   time.Time                   `json:"endTime"`
	Status    models.AppointmentStatus    `json:"status"`
	Price     float64                     `json:"price"`
	Notes     string                      `json:"notes,omitempty"`
	Customer  *appointmentCustomerSummary `json:"customer"`
	Service   *appointmentServiceSummary  `json:"service"`
	Staff     *userSummary                `json:"staff"`
	User      *userSummary                `json:"user"`
}

func toAppointmentResponse(a *models.Appointment) AppointmentResponse {
	resp := AppointmentResponse{
		ID:        a.ID,
		StartTime: a.StartTime,
		EndTime:   a.EndTime,
		Status:    a.Status,
		Price:     a.Price,
		Notes:     a.Notes,
	}
	if a.Customer != nil {
		resp.Customer = &appointmentCustomerSummary{
			ID:        a.Customer.ID,
			FirstName: a.Customer.FirstName,
			LastName:  a.Customer.LastName,
		}
	}
	if a.Service != nil {
		resp.Service = &appointmentServiceSummary{
			ID:       a.Service.ID,
			Name:     a.Service.Name,
			Duration: a.Service.Duration,
			Price:    a.Service.Price,
		}
	}
	if a.Staff != nil {
		resp.Staff = &userSummary{ID: a.Staff.ID, Name: a.Staff.Name}
	}
	if a.User != nil {
		resp.User = &userSummary{ID: a.User.ID, Name: a.User.Name}
	}
	return resp
}

// List retrieves appointments newest-first, optionally filtered by
// service (?serviceId=...).
func (ac *AppointmentController) List(c *gin.Context) {
	appointments, err := ac.Appointments.List(c.Request.Context(), c.Query("serviceId"))
	if err != nil {
		ac.Log.Error("list appointments", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	responses := make([]AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		responses = append(responses, toAppointmentResponse(&appointments[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// Get retrieves a specific appointment by ID.
func (ac *AppointmentController) Get(c *gin.Context) {
	appointment, err := ac.Appointments.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			ac.Log.Error("find appointment", zap.Error(err))
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, toAppointmentResponse(appointment))
}

// Create books an appointment. The end time is the start plus the
// service duration (or the explicit override) and the price is a
// snapshot of the service's current price.
func (ac *AppointmentController) Create(c *gin.Context) {
	principal, _ := middleware.Principal(c)

	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if _, err := ac.Customers.FindByID(c.Request.Context(), input.CustomerID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			ac.Log.Error("check customer", zap.Error(err))
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	service, err := ac.Services.FindByID(c.Request.Context(), input.ServiceID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			ac.Log.Error("check service", zap.Error(err))
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	duration := service.Duration
	if input.Duration != nil {
		duration = *input.Duration
	}
	if duration <= 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Duration must be greater than 0 minutes")
		return
	}

	appointment := models.Appointment{
		StartTime:  input.StartTime,
		EndTime:    input.StartTime.Add(time.Duration(duration) * time.Minute),
		Status:     models.AppointmentConfirmed,
		CustomerID: input.CustomerID,
		ServiceID:  input.ServiceID,
		StaffID:    input.StaffID,
		UserID:     principal.ID,
		Price:      service.Price,
		Notes:      input.Notes,
	}

	created, err := ac.Appointments.Create(c.Request.Context(), &appointment)
	if err != nil {
		ac.Log.Error("create appointment", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create appointment")
		return
	}

	c.JSON(http.StatusCreated, toAppointmentResponse(created))
}

// UpdateStatus moves an appointment to any member of the status set.
// No ordering between statuses is enforced.
func (ac *AppointmentController) UpdateStatus(c *gin.Context) {
	var input UpdateAppointmentStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	status := models.AppointmentStatus(input.Status)
	if !status.Valid() {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid status provided")
		return
	}

	updated, err := ac.Appointments.UpdateStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			ac.Log.Error("update appointment status", zap.Error(err))
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment")
		}
		return
	}

	c.JSON(http.StatusOK, toAppointmentResponse(updated))
}

// Delete removes an appointment permanently.
func (ac *AppointmentController) Delete(c *gin.Context) {
	if err := ac.Appointments.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			ac.Log.Error("delete appointment", zap.Error(err))
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete appointment")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
