package routes

import (
	"net/http"
	"time"

	"aurora-backend/auth"
	"aurora-backend/config"
	"aurora-backend/controllers"
	"aurora-backend/middleware"
	"aurora-backend/repositories"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// SetupRouter wires repositories, controllers and middleware into the
// HTTP surface. rdb may be nil; principal caching is skipped then.
func SetupRouter(cfg *config.Config, logger *zap.Logger, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	users := repositories.NewUserRepository(db)
	categories := repositories.NewCategoryRepository(db)
	services := repositories.NewServiceRepository(db)
	customers := repositories.NewCustomerRepository(db)
	appointments := repositories.NewAppointmentRepository(db)
	settings := repositories.NewSettingsRepository(db)

	issuer := &auth.Issuer{Secret: []byte(cfg.JWTSecret), TTL: cfg.JWTExpiry()}
	provider := auth.NewOIDCProvider(cfg.AuthDomain)

	var cache middleware.UserCache
	if rdb != nil {
		cache = middleware.NewRedisUserCache(rdb, cfg.UserCacheTTL)
	}

	authController := controllers.NewAuthController(users, provider, issuer, logger, cfg.BootstrapEmail, cfg.BootstrapPasswordHash)
	serviceController := controllers.NewServiceController(services, categories, logger)
	categoryController := controllers.NewCategoryController(categories, logger)
	customerController := controllers.NewCustomerController(customers, logger)
	appointmentController := controllers.NewAppointmentController(appointments, services, customers, logger)
	staffController := controllers.NewStaffController(users, logger)
	userController := controllers.NewUserController(users, logger)
	dashboardController := controllers.NewDashboardController(appointments, customers, services, logger)
	settingsController := controllers.NewSettingsController(settings, logger)

	r := gin.New()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.RateLimitPerIP(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	session := middleware.RequireSession(issuer, users, cache)

	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/exchange", authController.Exchange)
		authRoutes.POST("/login", authController.Login)
		authRoutes.GET("/me", session, authController.Me)
	}

	api := r.Group("/api")
	api.Use(session)
	{
		api.GET("/services",
			middleware.Authorize(auth.ResourceServices, auth.ActionRead), serviceController.List)
		api.POST("/services",
			middleware.Authorize(auth.ResourceServices, auth.ActionCreate), serviceController.Create)
		api.PUT("/services/:id",
			middleware.Authorize(auth.ResourceServices, auth.ActionUpdate), serviceController.Update)
		api.DELETE("/services/:id",
			middleware.Authorize(auth.ResourceServices, auth.ActionDelete), serviceController.Delete)

		api.GET("/categories",
			middleware.Authorize(auth.ResourceCategories, auth.ActionRead), categoryController.List)
		api.POST("/categories",
			middleware.Authorize(auth.ResourceCategories, auth.ActionCreate), categoryController.Create)
		api.PUT("/categories/:id",
			middleware.Authorize(auth.ResourceCategories, auth.ActionUpdate), categoryController.Update)
		api.DELETE("/categories/:id",
			middleware.Authorize(auth.ResourceCategories, auth.ActionDelete), categoryController.Delete)

		api.GET("/customers",
			middleware.Authorize(auth.ResourceCustomers, auth.ActionRead), customerController.List)
		api.POST("/customers",
			middleware.Authorize(auth.ResourceCustomers, auth.ActionCreate), customerController.Create)
		api.PUT("/customers/:id",
			middleware.Authorize(auth.ResourceCustomers, auth.ActionUpdate), customerController.Update)
		api.DELETE("/customers/:id",
			middleware.Authorize(auth.ResourceCustomers, auth.ActionDelete), customerController.Delete)

		api.GET("/appointments",
			middleware.Authorize(auth.ResourceAppointments, auth.ActionRead), appointmentController.List)
		api.GET("/appointments/:id",
			middleware.Authorize(auth.ResourceAppointments, auth.ActionRead), appointmentController.Get)
		api.POST("/appointments",
			middleware.Authorize(auth.ResourceAppointments, auth.ActionCreate), appointmentController.Create)
		api.PATCH("/appointments/:id",
			middleware.Authorize(auth.ResourceAppointments, auth.ActionUpdate), appointmentController.UpdateStatus)
		api.DELETE("/appointments/:id",
			middleware.Authorize(auth.ResourceAppointments, auth.ActionDelete), appointmentController.Delete)

		api.GET("/staff",
			middleware.Authorize(auth.ResourceStaff, auth.ActionRead), staffController.List)

		api.GET("/users",
			middleware.Authorize(auth.ResourceUsers, auth.ActionRead), userController.List)
		api.PUT("/users/:id",
			middleware.Authorize(auth.ResourceUsers, auth.ActionUpdate), userController.UpdateRole)

		api.GET("/dashboard/metrics",
			middleware.Authorize(auth.ResourceDashboard, auth.ActionRead), dashboardController.Metrics)

		api.GET("/settings",
			middleware.Authorize(auth.ResourceSettings, auth.ActionRead), settingsController.Get)
		api.PUT("/settings",
			middleware.Authorize(auth.ResourceSettings, auth.ActionUpdate), settingsController.UpdateConfig)
		api.PUT("/settings/working-hours",
			middleware.Authorize(auth.ResourceSettings, auth.ActionUpdate), settingsController.UpdateWorkingHours)
	}

	return r
}
