// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"alostudio/internal/auth"
	"alostudio/internal/availability"
	"alostudio/internal/bookings"
	"alostudio/internal/catalog"
	"alostudio/internal/earnings"
	"alostudio/internal/frames"
	"alostudio/internal/notifications"
	"alostudio/internal/shared/config"
	"alostudio/internal/shared/database"
	"alostudio/internal/shared/middleware"
	"alostudio/pkg/cache"
	"alostudio/pkg/logger"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	db       *database.DB
	logger   *logger.Logger
	producer notifications.Producer

	// Services shared across route groups
	catalogService  catalog.Service
	earningsService earnings.Service
	authService     auth.Service
	bookingRepo     bookings.Repository
}

// NewRouter creates a new router instance. The producer may be nil when
// Kafka is disabled.
func NewRouter(cfg *config.Config, db *database.DB, log *logger.Logger, producer notifications.Producer) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		logger:   log,
		producer: producer,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	cacheService := cache.NewService(r.db.GetRedisClient())

	// Shared services, wired once
	catalogRepo := catalog.NewRepository(r.db.GetPostgreSQL())
	r.catalogService = catalog.NewService(catalogRepo)
	r.catalogService.SetCacheService(cacheService, r.config.Redis.CatalogTTL)

	earningsRepo := earnings.NewRepository(r.db.GetPostgreSQL())
	r.earningsService = earnings.NewService(earningsRepo)
	r.earningsService.SetCacheService(cacheService, r.config.Redis.EarningsTTL)

	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	r.authService = auth.NewService(authRepo, r.config, r.logger)

	r.bookingRepo = bookings.NewRepository(r.db.GetPostgreSQL())

	api := engine.Group(r.config.GetAPIBasePath())
	{
		// Public surface
		catalogController := catalog.NewController(r.catalogService)
		catalog.SetupCatalogRoutes(api, catalogController)

		availabilityService := availability.NewService(r.bookingRepo)
		availability.SetupAvailabilityRoutes(api, availability.NewController(availabilityService))

		bookingService := bookings.NewService(r.bookingRepo, r.catalogService, r.earningsService, r.producer, r.logger)
		bookingController := bookings.NewController(bookingService)
		bookings.SetupBookingRoutes(api, bookingController)

		frameRepo := frames.NewRepository(r.db.GetPostgreSQL())
		frameService := frames.NewService(frameRepo, r.earningsService, r.producer, r.logger)
		frameController := frames.NewController(frameService)
		frames.SetupFrameRoutes(api, frameController)

		authController := auth.NewController(r.authService)
		auth.SetupAuthRoutes(api, authController)

		// Admin surface behind the session guard
		admin := api.Group("/admin")
		admin.Use(middleware.SessionAuth(r.authService))
		{
			auth.SetupAdminAuthRoutes(admin, authController)
			catalog.SetupAdminCatalogRoutes(admin, catalogController)
			bookings.SetupAdminBookingRoutes(admin, bookingController)
			frames.SetupAdminFrameRoutes(admin, frameController)
			earnings.SetupEarningsRoutes(admin, earnings.NewController(r.earningsService))
		}
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "alostudio-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "alostudio-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}
