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

// CustomerController handles the customer endpoints.
type CustomerController struct {
	Customers repositories.CustomerRepository
	Log       *zap.Logger
}

func NewCustomerController(customers repositories.CustomerRepository, log *zap.Logger) *CustomerController {
	return &CustomerController{Customers: customers, Log: log}
}

// CustomerInput defines the expected JSON structure for creating or
// updating a customer. DateOfBirth accepts "2006-01-02" or RFC 3339.
type CustomerInput struct {
	FirstName   string  `json:"firstName" binding:"required"`
	LastName    string  `json:"lastName" binding:"required"`
	Email       *string `json:"email"`
	Phone       string  `json:"phone"`
	Address     string  `json:"address"`
	DateOfBirth string  `json:"dateOfBirth"`
	Notes       string  `json:"notes"`
}

type CustomerResponse struct {
	ID                string     `json:"id"`
	FirstName         string     `json:"firstName"`
	LastName          string     `json:"lastName"`
	Email             *string    `json:"email"`
	Phone             string     `json:"phone,omitempty"`
	Address           string     `json:"address,omitempty"`
	DateOfBirth       *time.Time `json:"dateOfBirth"`
	Notes             string     `json:"notes,omitempty"`
	Enabled           bool       `json:"enabled"`
	CreatedAt         time.Time  `json:"createdAt"`
	AppointmentsCount int64      `json:"appointmentsCount"`
}

func toCustomerResponse(record *repositories.CustomerRecord) CustomerResponse {
	return CustomerResponse{
		ID:                record.ID,
		FirstName:         record.FirstName,
		LastName:          record.LastName,
		Email:             record.Email,
		Phone:             record.Phone,
		Address:           record.Address,
		DateOfBirth:       record.DateOfBirth,
		Notes:             record.Notes,
		Enabled:           record.State.Active(),
		CreatedAt:         record.CreatedAt,
		AppointmentsCount: record.AppointmentsCount,
	}
}

// validate normalizes the input and reports the first problem found.
func (in *CustomerInput) validate() (birthday *time.Time, msg string) {
	if in.Phone != "" && !utils.ValidatePhone(in.Phone) {
		return nil, "Invalid phone number format"
	}
	if in.Email != nil && *in.Email == "" {
		in.Email = nil
	}
	if in.DateOfBirth != "" {
		parsed, err := utils.ParseDate(in.DateOfBirth)
		if err != nil {
			return nil, "Invalid dateOfBirth format"
		}
		birthday = &parsed
	}
	return birthday, ""
}

// List retrieves all active customers with their appointment counts.
func (cc *CustomerController) List(c *gin.Context) {
	records, err := cc.Customers.List(c.Request.Context())
	if err != nil {
		cc.Log.Error("list customers", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}

	responses := make([]CustomerResponse, 0, len(records))
	for i := range records {
		responses = append(responses, toCustomerResponse(&records[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// Create adds a new customer.
func (cc *CustomerController) Create(c *gin.Context) {
	principal, _ := middleware.Principal(c)

	var input CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	birthday, msg := input.validate()
	if msg != "" {
		utils.RespondWithError(c, http.StatusBadRequest, msg)
		return
	}

	if input.Email != nil {
		taken, err := cc.Customers.EmailTaken(c.Request.Context(), *input.Email, "")
		if err != nil {
			cc.Log.Error("check customer email", zap.Error(err))
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
		if taken {
			utils.RespondWithError(c, http.StatusBadRequest, "Email is already in use")
			return
		}
	}

	customer := models.Customer{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		Phone:       input.Phone,
		Address:     input.Address,
		DateOfBirth: birthday,
		Notes:       input.Notes,
		CreatedBy:   principal.ID,
		State:       models.LifecycleActive,
	}

	created, err := cc.Customers.Create(c.Request.Context(), &customer)
	if err != nil {
		cc.Log.Error("create customer", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create customer")
		return
	}

	c.JSON(http.StatusCreated, toCustomerResponse(created))
}

// Update replaces an existing customer's fields.
func (cc *CustomerController) Update(c *gin.Context) {
	customerID := c.Param("id")

	customer, err := cc.Customers.FindByID(c.Request.Context(), customerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			cc.Log.Error("find customer", zap.Error(err))
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var input CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	birthday, msg := input.validate()
	if msg != "" {
		utils.RespondWithError(c, http.StatusBadRequest, msg)
		return
	}

	if input.Email != nil && (customer.Email == nil || *customer.Email != *input.Email) {
		taken, err := cc.Customers.EmailTaken(c.Request.Context(), *input.Email, customerID)
		if err != nil {
			cc.Log.Error("check customer email", zap.Error(err))
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
		if taken {
			utils.RespondWithError(c, http.StatusBadRequest, "Email is already in use")
			return
		}
	}

	customer.FirstName = input.FirstName
	customer.LastName = input.LastName
	customer.Email = input.Email
	customer.Phone = input.Phone
	customer.Address = input.Address
	customer.DateOfBirth = birthday
	customer.Notes = input.Notes

	updated, err := cc.Customers.Update(c.Request.Context(), customer)
	if err != nil {
		cc.Log.Error("update customer", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer")
		return
	}

	c.JSON(http.StatusOK, toCustomerResponse(updated))
}

// Delete disables a customer unless open appointments still reference
// them.
func (cc *CustomerController) Delete(c *gin.Context) {
	customerID := c.Param("id")

	if err := cc.Customers.SoftDelete(c.Request.Context(), customerID); err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		case errors.Is(err, repositories.ErrDependency):
			utils.RespondWithError(c, http.StatusBadRequest, "Cannot delete a customer with open appointments")
		default:
			cc.Log.Error("delete customer", zap.Error(err))
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete customer")
		}
		return
	}

	utils.RespondWithMessage(c, http.StatusOK, "Customer disabled successfully")
}
