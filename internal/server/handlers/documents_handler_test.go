package handlers

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/farmconnect/trader/internal/domain/models"
	"github.com/farmconnect/trader/internal/repository/mongodb"
	"github.com/farmconnect/trader/internal/service/documents"
	"github.com/farmconnect/trader/internal/service/reporting"
)

type fakeRecordGetter struct {
	goods    models.GoodsRecord
	customer models.CustomerRecord
	err      error
}

func (f *fakeRecordGetter) GetGoods(ctx context.Context, id string) (models.GoodsRecord, error) {
	return f.goods, f.err
}

func (f *fakeRecordGetter) GetCustomer(ctx context.Context, id string) (models.CustomerRecord, error) {
	return f.customer, f.err
}

type fakeRenderer struct {
	rendered int
}

func (f *fakeRenderer) Receipt(rec models.GoodsRecord) (documents.Document, error) {
	f.rendered++
	return documents.Document{
		Filename: "farmer_slip_" + rec.FarmerName + "_2024-03-06.pdf",
		Data:     []byte("%PDF receipt"),
	}, nil
}

func (f *fakeRenderer) Invoice(rec models.CustomerRecord) (documents.Document, error) {
	f.rendered++
	return documents.Document{
		Filename: "customer_invoice_" + rec.CustomerName + "_2024-03-06.pdf",
		Data:     []byte("%PDF invoice"),
	}, nil
}

func newDocumentsHandler(store RecordGetter, reports ReportService, outputDir string) (*DocumentsHandler, *fakeRenderer) {
	renderer := &fakeRenderer{}
	bulk := documents.NewBulkScheduler(time.Millisecond, nil)
	return NewDocumentsHandler(store, reports, renderer, bulk, outputDir, time.UTC, nil), renderer
}

func TestReceiptStreamsPDF(t *testing.T) {
	store := &fakeRecordGetter{goods: models.GoodsRecord{
		ID:         primitive.NewObjectID(),
		FarmerName: "Ramesh Kumar",
	}}
	h, _ := newDocumentsHandler(store, &fakeReportService{}, t.TempDir())

	w := performRequest(t, http.MethodGet, "/api/documents/goods/abc/receipt", func(r *gin.Engine) {
		r.GET("/api/documents/goods/:id/receipt", h.Receipt)
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "farmer_slip_Ramesh Kumar")
	assert.Equal(t, "%PDF receipt", w.Body.String())
}

func TestReceiptUnknownRecord(t *testing.T) {
	store := &fakeRecordGetter{err: mongodb.ErrNotFound}
	h, _ := newDocumentsHandler(store, &fakeReportService{}, t.TempDir())

	w := performRequest(t, http.MethodGet, "/api/documents/goods/missing/receipt", func(r *gin.Engine) {
		r.GET("/api/documents/goods/:id/receipt", h.Receipt)
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBulkReceiptsWritesDocuments(t *testing.T) {
	svc := &fakeReportService{goods: reporting.GoodsReport{
		Records: []models.GoodsRecord{
			{FarmerName: "Ramesh Kumar"},
			{FarmerName: "Sita Devi"},
		},
	}}
	outputDir := t.TempDir()
	h, renderer := newDocumentsHandler(&fakeRecordGetter{}, svc, outputDir)

	w := performRequest(t, http.MethodPost, "/api/documents/goods/bulk", func(r *gin.Engine) {
		r.POST("/api/documents/goods/bulk", h.BulkReceipts)
	})

	require.Equal(t, http.StatusAccepted, w.Code)
	assert.Contains(t, w.Body.String(), `"scheduled":2`)

	// Generation is asynchronous and spaced; wait for both files to land.
	assert.Eventually(t, func() bool {
		entries, err := os.ReadDir(outputDir)
		return err == nil && len(entries) == 2
	}, 2*time.Second, 10*time.Millisecond)

	payload, err := os.ReadFile(filepath.Join(outputDir, "farmer_slip_Sita Devi_2024-03-06.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF receipt", string(payload))
	assert.Equal(t, 2, renderer.rendered)
}

func TestBulkReceiptsNoMatches(t *testing.T) {
	h, renderer := newDocumentsHandler(&fakeRecordGetter{}, &fakeReportService{}, t.TempDir())

	w := performRequest(t, http.MethodPost, "/api/documents/goods/bulk?search=nomatch", func(r *gin.Engine) {
		r.POST("/api/documents/goods/bulk", h.BulkReceipts)
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "no records to generate documents for")
	assert.Zero(t, renderer.rendered)
}

func TestBulkInvoicesWritesDocuments(t *testing.T) {
	svc := &fakeReportService{customers: reporting.CustomerReport{
		Records: []models.CustomerRecord{{CustomerName: "Priya"}},
	}}
	outputDir := t.TempDir()
	h, _ := newDocumentsHandler(&fakeRecordGetter{}, svc, outputDir)

	w := performRequest(t, http.MethodPost, "/api/documents/customers/bulk", func(r *gin.Engine) {
		r.POST("/api/documents/customers/bulk", h.BulkInvoices)
	})

	require.Equal(t, http.StatusAccepted, w.Code)

	assert.Eventually(t, func() bool {
		_, err := os.Stat(filepath.Join(outputDir, "customer_invoice_Priya_2024-03-06.pdf"))
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)
}
