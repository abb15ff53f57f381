package handlers

import (
	portssvc "github.com/innajain/ledger-sub000/internal/core/ports/services"
	"github.com/innajain/ledger-sub000/internal/middleware"
	"github.com/innajain/ledger-sub000/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Setup API v1 routes behind basic auth, passing service interfaces
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		rate, _ = limiter.NewRateFromFormatted("100-M")
	}
	ipLimiter := limiter.New(memory.NewStore(), rate)

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")

	// Apply rate limiting and basic auth to the entire v1 group
	v1 := r.Group("/api/v1",
		cors.New(corsConfig),
		middleware.RateLimit(ipLimiter),
		middleware.BasicAuthMiddleware(cfg.AuthPasswordHash),
	)

	// Delegate route registration to specific handlers, passing required services
	registerAssetRoutes(v1, service.Asset)
	registerAccountRoutes(v1, service.Account, service.Reporting)
	registerBucketRoutes(v1, service.Bucket, service.Reporting)
	registerTransactionRoutes(v1, service.Transaction)
	registerReallocationRoutes(v1, service.Reallocation)
	registerReportingRoutes(v1, service.Reporting)
	registerAdminRoutes(v1, service.Valuation)
}
