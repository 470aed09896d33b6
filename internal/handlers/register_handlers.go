package handlers

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/trade_ledger/cmd/docs"
	portssvc "github.com/SscSPs/trade_ledger/internal/core/ports/services"
	"github.com/SscSPs/trade_ledger/internal/middleware"
	"github.com/SscSPs/trade_ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/", getHome)

	setupSwaggerRoutes(r, cfg)

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		return fmt.Errorf("failed to configure rate limiting: %w", err)
	}

	setupAPIV1Routes(r, cfg, services, middleware.RateLimit(rateLimiter))
	return nil
}

// setupSwaggerRoutes serves the API docs outside production
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	rateLimit gin.HandlerFunc,
) {
	v1 := r.Group("/api/v1", rateLimit)

	// Every ledger is scoped to one workplace
	workplace := v1.Group("/workplaces/:"+middleware.WorkplaceParam, middleware.WorkplaceScope())

	RegisterDocumentRoutes(workplace, service.Ledger, service.Reporting)
	RegisterPartnerRoutes(workplace, service.Ledger, service.Reporting, cfg.Currency)
	RegisterCatalogRoutes(workplace, service.Ledger)
	RegisterTreasuryRoutes(workplace, service.Ledger, service.Reporting)
	RegisterReportingRoutes(workplace, service.Ledger, service.Reporting, cfg.Currency)
	RegisterLedgerRoutes(workplace, service.Ledger)
}
