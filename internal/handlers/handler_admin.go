package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/innajain/ledger-sub000/internal/core/ports/services"
	"github.com/innajain/ledger-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// adminHandler holds operational endpoints.
type adminHandler struct {
	valuationService portssvc.ValuationSvcFacade
}

// registerAdminRoutes registers operational routes.
func registerAdminRoutes(rg *gin.RouterGroup, valuationService portssvc.ValuationSvcFacade) {
	h := &adminHandler{valuationService: valuationService}

	admin := rg.Group("/admin")
	{
		admin.POST("/cache/flush", h.flushPriceCache)
	}
}

// flushPriceCache drops every memoized price so the next valuation refetches
// from the feeds.
func (h *adminHandler) flushPriceCache(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.valuationService.FlushPriceCache(c.Request.Context()); err != nil {
		logger.Error("Failed to flush price cache", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to flush price cache"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "price cache flushed"})
}
