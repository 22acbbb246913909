package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/farmconnect/trader/internal/export"
)

// ExportsHandler serves downloadable CSV and workbook exports of the
// filtered ledger views.
type ExportsHandler struct {
	svc    ReportService
	loc    *time.Location
	logger *zap.Logger
}

// NewExportsHandler constructs the exports HTTP adapter.
func NewExportsHandler(svc ReportService, loc *time.Location, logger *zap.Logger) *ExportsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loc == nil {
		loc = time.Local
	}
	return &ExportsHandler{svc: svc, loc: loc, logger: logger}
}

// Goods streams the goods export in the requested format.
func (h *ExportsHandler) Goods(c *gin.Context) {
	format, ok := parseFormat(c)
	if !ok {
		return
	}
	criteria, err := parseCriteria(c, h.loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.svc.GoodsReport(c.Request.Context(), criteria)
	if err != nil {
		h.logger.Error("failed loading goods export data", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load export data"})
		return
	}

	var payload []byte
	if format == export.FormatWorkbook {
		payload, err = export.GoodsWorkbook(report.Records)
	} else {
		payload = export.GoodsCSV(report.Records)
	}
	if err != nil {
		h.logger.Error("failed serializing goods export", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to serialize export"})
		return
	}

	h.download(c, export.KindGoods, format, payload)
}

// Customers streams the customer export in the requested format.
func (h *ExportsHandler) Customers(c *gin.Context) {
	format, ok := parseFormat(c)
	if !ok {
		return
	}
	criteria, err := parseCriteria(c, h.loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.svc.CustomerReport(c.Request.Context(), criteria)
	if err != nil {
		h.logger.Error("failed loading customer export data", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load export data"})
		return
	}

	var payload []byte
	if format == export.FormatWorkbook {
		payload, err = export.CustomersWorkbook(report.Records)
	} else {
		payload = export.CustomersCSV(report.Records)
	}
	if err != nil {
		h.logger.Error("failed serializing customer export", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to serialize export"})
		return
	}

	h.download(c, export.KindCustomers, format, payload)
}

func (h *ExportsHandler) download(c *gin.Context, kind export.Kind, format export.Format, payload []byte) {
	filename := export.Filename(kind, format, time.Now().In(h.loc))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, export.ContentType(format), payload)
}

func parseFormat(c *gin.Context) (export.Format, bool) {
	format := export.Format(c.DefaultQuery("format", string(export.FormatCSV)))
	switch format {
	case export.FormatCSV, export.FormatWorkbook:
		return format, true
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid format %q", format)})
		return "", false
	}
}
