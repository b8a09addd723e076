package controllers

import (
	"net/http"
	"time"

	"aurora-backend/repositories"
	"aurora-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardController aggregates the current-month metrics shown on
// the back office landing page. Now is injectable so the month window
// can be pinned in tests.
type DashboardController struct {
	Appointments repositories.AppointmentRepository
	Customers    repositories.CustomerRepository
	Services     repositories.ServiceRepository
	Log          *zap.Logger
	Now          func() time.Time
}

func NewDashboardController(
	appointments repositories.AppointmentRepository,
	customers repositories.CustomerRepository,
	services repositories.ServiceRepository,
	log *zap.Logger,
) *DashboardController {
	return &DashboardController{
		Appointments: appointments,
		Customers:    customers,
		Services:     services,
		Log:          log,
		Now:          time.Now,
	}
}

type DashboardResponse struct {
	MonthlyRevenue        float64 `json:"monthlyRevenue"`
	NewCustomersThisMonth int64   `json:"newCustomersThisMonth"`
	AppointmentsThisMonth int64   `json:"appointmentsThisMonth"`
	TotalActiveServices   int64   `json:"totalActiveServices"`
}

// Metrics computes the dashboard numbers for the calendar month
// containing the current instant (UTC). Revenue counts COMPLETED
// appointments only.
func (dc *DashboardController) Metrics(c *gin.Context) {
	ctx := c.Request.Context()
	from, to := utils.MonthRange(dc.Now().UTC())

	completed, revenue, err := dc.Appointments.CompletedBetween(ctx, from, to)
	if err != nil {
		dc.Log.Error("dashboard appointments", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute metrics")
		return
	}

	newCustomers, err := dc.Customers.CountCreatedBetween(ctx, from, to)
	if err != nil {
		dc.Log.Error("dashboard customers", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute metrics")
		return
	}

	activeServices, err := dc.Services.CountActive(ctx)
	if err != nil {
		dc.Log.Error("dashboard services", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute metrics")
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{
		MonthlyRevenue:        revenue,
		NewCustomersThisMonth: newCustomers,
		AppointmentsThisMonth: completed,
		TotalActiveServices:   activeServices,
	})
}
