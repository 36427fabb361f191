package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	portssvc "github.com/jainutkarshh/StockFlow-ERP/internal/core/ports/services"
	"github.com/jainutkarshh/StockFlow-ERP/internal/middleware"
	"github.com/jainutkarshh/StockFlow-ERP/internal/platform/config"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// StoreStatus reports whether the backing store is reachable. The health
// monitor implements it.
type StoreStatus interface {
	Healthy() bool
}

// RegisterRoutes sets up all application routes, injecting dependencies using
// interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	store StoreStatus,
) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/", getHome)
	r.GET("/health", func(c *gin.Context) {
		if store != nil && !store.Healthy() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "offline"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Login gets a tighter rate limit than the rest of the API.
	loginLimiter := middleware.RateLimit(limiter.New(memory.NewStore(), limiter.Rate{
		Period: cfg.RateLimitPeriod,
		Limit:  5,
	}))
	registerAuthRoutes(r, services, loginLimiter)

	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to the entity
// route registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	apiLimiter := middleware.RateLimit(limiter.New(memory.NewStore(), limiter.Rate{
		Period: cfg.RateLimitPeriod,
		Limit:  cfg.RateLimitRequests,
	}))

	v1 := r.Group("/api/v1", apiLimiter, middleware.AuthMiddleware(cfg.JWTSecret))

	registerPartyRoutes(v1, services.Party)
	registerProductRoutes(v1, services.Product)
	registerStockRoutes(v1, services.Stock)
	registerPaymentRoutes(v1, services.Payment)
	registerLedgerRoutes(v1, services.Ledger)
	registerDashboardRoutes(v1, services.Stock)
}
