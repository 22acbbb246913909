package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/farmconnect/trader/internal/domain/models"
	"github.com/farmconnect/trader/internal/repository/mongodb"
	"github.com/farmconnect/trader/internal/service/documents"
)

// RecordGetter fetches single ledger records for document rendering.
type RecordGetter interface {
	GetGoods(ctx context.Context, id string) (models.GoodsRecord, error)
	GetCustomer(ctx context.Context, id string) (models.CustomerRecord, error)
}

// DocumentRenderer renders one record into a printable document.
type DocumentRenderer interface {
	Receipt(rec models.GoodsRecord) (documents.Document, error)
	Invoice(rec models.CustomerRecord) (documents.Document, error)
}

// DocumentsHandler serves single receipts/invoices and schedules bulk
// generation into the configured output directory.
type DocumentsHandler struct {
	store     RecordGetter
	reports   ReportService
	renderer  DocumentRenderer
	bulk      *documents.BulkScheduler
	outputDir string
	loc       *time.Location
	logger    *zap.Logger
}

// NewDocumentsHandler constructs the documents HTTP adapter.
func NewDocumentsHandler(store RecordGetter, reports ReportService, renderer DocumentRenderer, bulk *documents.BulkScheduler, outputDir string, loc *time.Location, logger *zap.Logger) *DocumentsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loc == nil {
		loc = time.Local
	}
	return &DocumentsHandler{
		store:     store,
		reports:   reports,
		renderer:  renderer,
		bulk:      bulk,
		outputDir: outputDir,
		loc:       loc,
		logger:    logger,
	}
}

// Receipt streams the collection receipt for one goods record.
func (h *DocumentsHandler) Receipt(c *gin.Context) {
	record, err := h.store.GetGoods(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondFetchError(c, err)
		return
	}

	doc, err := h.renderer.Receipt(record)
	if err != nil {
		h.logger.Error("failed rendering receipt", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render document"})
		return
	}

	h.downloadDocument(c, doc)
}

// Invoice streams the purchase invoice for one customer record.
func (h *DocumentsHandler) Invoice(c *gin.Context) {
	record, err := h.store.GetCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondFetchError(c, err)
		return
	}

	doc, err := h.renderer.Invoice(record)
	if err != nil {
		h.logger.Error("failed rendering invoice", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render document"})
		return
	}

	h.downloadDocument(c, doc)
}

// BulkReceipts schedules spaced receipt generation for every goods record
// matching the filter criteria. Fire-and-forget: the response only confirms
// how many renders were scheduled.
func (h *DocumentsHandler) BulkReceipts(c *gin.Context) {
	criteria, err := parseCriteria(c, h.loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.reports.GoodsReport(c.Request.Context(), criteria)
	if err != nil {
		h.logger.Error("failed loading goods for bulk generation", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load records"})
		return
	}

	records := report.Records
	_, err = h.bulk.Schedule(len(records), func(i int) error {
		doc, renderErr := h.renderer.Receipt(records[i])
		if renderErr != nil {
			return renderErr
		}
		return h.writeDocument(doc)
	})
	h.respondBulk(c, err, len(records))
}

// BulkInvoices schedules spaced invoice generation for every customer record
// matching the filter criteria.
func (h *DocumentsHandler) BulkInvoices(c *gin.Context) {
	criteria, err := parseCriteria(c, h.loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.reports.CustomerReport(c.Request.Context(), criteria)
	if err != nil {
		h.logger.Error("failed loading customers for bulk generation", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load records"})
		return
	}

	records := report.Records
	_, err = h.bulk.Schedule(len(records), func(i int) error {
		doc, renderErr := h.renderer.Invoice(records[i])
		if renderErr != nil {
			return renderErr
		}
		return h.writeDocument(doc)
	})
	h.respondBulk(c, err, len(records))
}

func (h *DocumentsHandler) respondBulk(c *gin.Context, err error, count int) {
	if errors.Is(err, documents.ErrNothingToGenerate) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no records to generate documents for"})
		return
	}
	if err != nil {
		h.logger.Error("failed scheduling bulk generation", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to schedule generation"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"scheduled": count})
}

func (h *DocumentsHandler) respondFetchError(c *gin.Context, err error) {
	if errors.Is(err, mongodb.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
		return
	}
	h.logger.Error("failed fetching record", zap.Error(err))
	c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load record"})
}

func (h *DocumentsHandler) downloadDocument(c *gin.Context, doc documents.Document) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, "application/pdf", doc.Data)
}

func (h *DocumentsHandler) writeDocument(doc documents.Document) error {
	if err := os.MkdirAll(h.outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(h.outputDir, doc.Filename)
	if err := os.WriteFile(path, doc.Data, 0o644); err != nil {
		return fmt.Errorf("write document %s: %w", doc.Filename, err)
	}
	return nil
}
