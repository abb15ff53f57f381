package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/innajain/ledger-sub000/internal/core/ports/services"
	"github.com/innajain/ledger-sub000/internal/dto"
	"github.com/innajain/ledger-sub000/internal/middleware"
	"github.com/innajain/ledger-sub000/internal/utils"
	"github.com/gin-gonic/gin"
)

// reportingHandler serves the aggregate summary view.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// registerReportingRoutes registers the summary route.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := &reportingHandler{reportingService: reportingService}

	rg.GET("/summary", h.getSummary)
	rg.GET("/audit/conservation", h.getConservationAudit)
}

// getConservationAudit compares account balances against bucket attributions.
func (h *reportingHandler) getConservationAudit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	audit, err := h.reportingService.ConservationAudit(c.Request.Context())
	if err != nil {
		logger.Error("Failed to run conservation audit", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to run conservation audit"})
		return
	}
	c.JSON(http.StatusOK, dto.ToConservationAuditResponse(audit))
}

// getSummary assembles the home view: every account and bucket priced, plus
// the expendable money figure.
func (h *reportingHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ctx := c.Request.Context()

	accountSummaries, err := h.reportingService.AccountSummaries(ctx)
	if err != nil {
		logger.Error("Failed to build account summaries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary"})
		return
	}

	bucketSummaries, err := h.reportingService.BucketSummaries(ctx)
	if err != nil {
		logger.Error("Failed to build bucket summaries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary"})
		return
	}

	expendable, err := h.reportingService.ExpendableMoney(ctx)
	if err != nil {
		logger.Error("Failed to compute expendable money", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary"})
		return
	}

	res := dto.SummaryResponse{
		Accounts:   make([]dto.AccountSummaryResponse, len(accountSummaries)),
		Buckets:    make([]dto.BucketSummaryResponse, len(bucketSummaries)),
		Expendable: dto.ToExpendableMoneyResponse(expendable),
	}
	for i, s := range accountSummaries {
		res.Accounts[i] = dto.AccountSummaryResponse{
			Account:             dto.ToAccountResponse(&s.Account, nil),
			TotalValue:          s.TotalValue,
			TotalValueFormatted: utils.FormatINRRounded(&s.TotalValue),
			UnknownPrices:       s.UnknownPrices,
		}
	}
	for i, s := range bucketSummaries {
		res.Buckets[i] = dto.BucketSummaryResponse{
			Bucket:              dto.ToBucketResponse(&s.Bucket),
			TotalValue:          s.TotalValue,
			TotalValueFormatted: utils.FormatINRRounded(&s.TotalValue),
			UnknownPrices:       s.UnknownPrices,
		}
	}

	c.JSON(http.StatusOK, res)
}
