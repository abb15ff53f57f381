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

// bucketHandler handles HTTP requests related to purpose buckets.
type bucketHandler struct {
	bucketService    portssvc.BucketSvcFacade
	reportingService portssvc.ReportingSvcFacade
}

// registerBucketRoutes registers routes related to purpose buckets.
func registerBucketRoutes(rg *gin.RouterGroup, bucketService portssvc.BucketSvcFacade, reportingService portssvc.ReportingSvcFacade) {
	h := &bucketHandler{bucketService: bucketService, reportingService: reportingService}

	buckets := rg.Group("/buckets")
	{
		buckets.POST("", h.createBucket)
		buckets.GET("", h.listBuckets)
		buckets.GET("/:id", h.getBucket)
		buckets.PUT("/:id", h.updateBucket)
		buckets.DELETE("/:id", h.deleteBucket)
		buckets.GET("/:id/balances", h.getBucketBalances)
		buckets.GET("/:id/valuation", h.getBucketValuation)
	}
}

func (h *bucketHandler) createBucket(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBucketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBucket", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	bucket, err := h.bucketService.CreateBucket(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create bucket", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create bucket"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToBucketResponse(bucket))
}

func (h *bucketHandler) getBucket(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bucketID := c.Param("id")

	bucket, err := h.bucketService.GetBucketByID(c.Request.Context(), bucketID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bucket not found"})
		} else {
			logger.Error("Failed to get bucket", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bucket"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBucketResponse(bucket))
}

func (h *bucketHandler) listBuckets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	buckets, err := h.bucketService.ListBuckets(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list buckets", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list buckets"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListBucketResponse(buckets))
}

func (h *bucketHandler) updateBucket(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bucketID := c.Param("id")

	var req dto.UpdateBucketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateBucket", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	bucket, err := h.bucketService.UpdateBucket(c.Request.Context(), bucketID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bucket not found"})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update bucket", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update bucket"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBucketResponse(bucket))
}

func (h *bucketHandler) deleteBucket(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bucketID := c.Param("id")

	if err := h.bucketService.DeleteBucket(c.Request.Context(), bucketID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bucket not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to delete bucket", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete bucket"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *bucketHandler) getBucketBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bucketID := c.Param("id")

	balances, err := h.bucketService.GetBucketBalances(c.Request.Context(), bucketID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bucket not found"})
		} else {
			logger.Error("Failed to get bucket balances", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve balances"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"balances": balances})
}

func (h *bucketHandler) getBucketValuation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bucketID := c.Param("id")

	valuation, err := h.reportingService.BucketValuation(c.Request.Context(), bucketID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bucket not found"})
		} else {
			logger.Error("Failed to value bucket", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to value bucket"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToValuationResponse(valuation))
}
