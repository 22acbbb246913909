package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/farmconnect/trader/internal/domain/models"
	"github.com/farmconnect/trader/internal/service/reporting"
)

// ReportService is the reporting surface required by the HTTP handlers.
type ReportService interface {
	GoodsReport(ctx context.Context, criteria models.Criteria) (reporting.GoodsReport, error)
	CustomerReport(ctx context.Context, criteria models.Criteria) (reporting.CustomerReport, error)
}

// ReportsHandler serves the filtered ledger views with their aggregates.
type ReportsHandler struct {
	svc    ReportService
	loc    *time.Location
	logger *zap.Logger
}

// NewReportsHandler constructs the reports HTTP adapter.
func NewReportsHandler(svc ReportService, loc *time.Location, logger *zap.Logger) *ReportsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loc == nil {
		loc = time.Local
	}
	return &ReportsHandler{svc: svc, loc: loc, logger: logger}
}

// Goods returns the filtered goods ledger plus revenue and commission totals.
func (h *ReportsHandler) Goods(c *gin.Context) {
	criteria, err := parseCriteria(c, h.loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.svc.GoodsReport(c.Request.Context(), criteria)
	if err != nil {
		h.logger.Error("failed loading goods report", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load report"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// Customers returns the filtered customer ledger.
func (h *ReportsHandler) Customers(c *gin.Context) {
	criteria, err := parseCriteria(c, h.loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.svc.CustomerReport(c.Request.Context(), criteria)
	if err != nil {
		h.logger.Error("failed loading customer report", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load report"})
		return
	}

	c.JSON(http.StatusOK, report)
}
