// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Bovice22/axequacks-app-sub000/internal/auth"
	"github.com/Bovice22/axequacks-app-sub000/internal/availability"
	"github.com/Bovice22/axequacks-app-sub000/internal/catalog"
	"github.com/Bovice22/axequacks-app-sub000/internal/overrides"
	"github.com/Bovice22/axequacks-app-sub000/internal/pricing"
	"github.com/Bovice22/axequacks-app-sub000/internal/promotions"
	"github.com/Bovice22/axequacks-app-sub000/internal/reservations"
	"github.com/Bovice22/axequacks-app-sub000/internal/shared/config"
	"github.com/Bovice22/axequacks-app-sub000/internal/shared/database"
	"github.com/Bovice22/axequacks-app-sub000/pkg/cache"
)

// Router holds all route dependencies
type Router struct {
	config    *config.Config
	db        *database.DB
	publisher reservations.EventPublisher

	// Shared services, wired once and injected across domains
	cacheService        cache.Service
	catalogService      catalog.Service
	overrideService     overrides.Service
	availabilityService availability.Service
	pricingService      pricing.Service
	promotionService    promotions.Service
	reservationService  reservations.Service
}

// NewRouter creates a new router instance. The publisher may be nil when
// Kafka is disabled; booking events are then dropped.
func NewRouter(cfg *config.Config, db *database.DB, publisher reservations.EventPublisher) *Router {
	return &Router{
		config:    cfg,
		db:        db,
		publisher: publisher,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// Swagger UI
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Cross-domain services must exist before any route group is wired
	r.setupServices()

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)
		r.setupCatalogRoutes(api)
		r.setupOverrideRoutes(api)
		r.setupAvailabilityRoutes(api)
		r.setupPricingRoutes(api)
		r.setupPromotionRoutes(api)
		r.setupReservationRoutes(api)
	}
}

// setupServices builds the service graph. Ordering matters: catalog and
// overrides feed availability, availability feeds pricing, and reservations
// consumes all of them.
func (r *Router) setupServices() {
	pg := r.db.GetPostgreSQL()
	r.cacheService = cache.NewService(r.db.GetRedisClient())

	r.catalogService = catalog.NewService(catalog.NewRepository(pg))
	r.overrideService = overrides.NewService(overrides.NewRepository(pg))

	reservationRepo := reservations.NewRepository(pg)
	holdStore := reservations.NewHoldStore(r.db.GetRedisClient(), r.config.Redis.SlotHoldTTL)

	r.availabilityService = availability.NewService(r.catalogService, r.overrideService, reservationRepo)
	r.availabilityService.SetHoldSource(holdStore)
	r.availabilityService.SetCacheService(r.cacheService, r.config.Redis.AvailabilityCacheTTL)

	rates := pricing.DefaultRateBook(r.config.Venue.PartyAreaMaxMinutes)
	pricingService, err := pricing.NewService(rates, r.availabilityService, r.catalogService)
	if err != nil {
		// A rate book that fails validation is a deployment error, not a
		// runtime condition; refuse to start.
		panic(err)
	}
	r.pricingService = pricingService

	r.promotionService = promotions.NewService(promotions.NewRepository(pg))

	r.reservationService = reservations.NewService(
		reservationRepo,
		holdStore,
		r.availabilityService,
		r.catalogService,
		r.overrideService,
		r.pricingService,
		r.promotionService,
	)
	r.reservationService.SetCacheService(r.cacheService)
	if r.publisher != nil {
		r.reservationService.SetEventPublisher(r.publisher)
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
				"service":   "axequacks-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "axequacks-backend",
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

// setupAuthRoutes configures staff authentication routes
func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	authService := auth.NewService(authRepo, r.config)
	authController := auth.NewController(authService)
	authRouter := auth.NewRouter(authController)

	authRouter.SetupRoutes(rg)
}

// setupCatalogRoutes configures resource catalog routes
func (r *Router) setupCatalogRoutes(rg *gin.RouterGroup) {
	controller := catalog.NewController(r.catalogService, r.overrideService)
	catalog.SetupCatalogRoutes(rg, controller)
}

// setupOverrideRoutes configures operating-window override routes
func (r *Router) setupOverrideRoutes(rg *gin.RouterGroup) {
	controller := overrides.NewController(r.overrideService)
	overrides.SetupOverrideRoutes(rg, controller)
}

// setupAvailabilityRoutes configures slot search routes
func (r *Router) setupAvailabilityRoutes(rg *gin.RouterGroup) {
	controller := availability.NewController(r.availabilityService)
	availability.SetupAvailabilityRoutes(rg, controller)
}

// setupPricingRoutes configures quote and rate card routes
func (r *Router) setupPricingRoutes(rg *gin.RouterGroup) {
	controller := pricing.NewController(r.pricingService)
	pricing.SetupPricingRoutes(rg, controller)
}

// setupPromotionRoutes configures promotion redemption and admin routes
func (r *Router) setupPromotionRoutes(rg *gin.RouterGroup) {
	controller := promotions.NewController(r.promotionService)
	promotions.SetupPromotionRoutes(rg, controller)
}

// setupReservationRoutes configures the hold/confirm/cancel checkout flow
func (r *Router) setupReservationRoutes(rg *gin.RouterGroup) {
	controller := reservations.NewController(r.reservationService)
	reservations.SetupReservationRoutes(rg, controller)
}
