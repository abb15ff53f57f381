package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/innajain/ledger-sub000/internal/apperrors"
	portssvc "github.com/innajain/ledger-sub000/internal/core/ports/services"
	"github.com/innajain/ledger-sub000/internal/dto"
	"github.com/innajain/ledger-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reallocationHandler handles HTTP requests for bucket reallocations.
type reallocationHandler struct {
	reallocationService portssvc.ReallocationSvcFacade
}

// registerReallocationRoutes registers routes related to reallocations.
func registerReallocationRoutes(rg *gin.RouterGroup, reallocationService portssvc.ReallocationSvcFacade) {
	h := &reallocationHandler{reallocationService: reallocationService}

	reallocations := rg.Group("/reallocations")
	{
		reallocations.POST("", h.createReallocation)
		reallocations.GET("", h.listReallocations)
		reallocations.GET("/:id", h.getReallocation)
		reallocations.DELETE("/:id", h.deleteReallocation)
	}
}

func (h *reallocationHandler) createReallocation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateReallocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateReallocation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	reallocation, err := h.reallocationService.CreateReallocation(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create reallocation", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reallocation"})
		return
	}
	c.JSON(http.StatusCreated, dto.ToReallocationResponse(reallocation))
}

func (h *reallocationHandler) getReallocation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	reallocation, err := h.reallocationService.GetReallocationByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reallocation not found"})
			return
		}
		logger.Error("Failed to retrieve reallocation", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve reallocation"})
		return
	}
	c.JSON(http.StatusOK, dto.ToReallocationResponse(reallocation))
}

func (h *reallocationHandler) listReallocations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit := parsePositiveInt(c.Query("limit"), defaultTxnPageSize)
	if limit > maxTxnPageSize {
		limit = maxTxnPageSize
	}
	offset := parsePositiveInt(c.Query("offset"), 0)

	reallocations, err := h.reallocationService.ListReallocations(c.Request.Context(), limit, offset)
	if err != nil {
		logger.Error("Failed to list reallocations", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reallocations"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListReallocationResponse(reallocations))
}

func (h *reallocationHandler) deleteReallocation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.reallocationService.DeleteReallocation(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reallocation not found"})
			return
		}
		logger.Error("Failed to delete reallocation", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete reallocation"})
		return
	}
	c.Status(http.StatusNoContent)
}
