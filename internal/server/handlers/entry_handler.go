package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/farmconnect/trader/internal/domain/models"
)

// RecordInserter appends new records to the ledgers.
type RecordInserter interface {
	InsertGoods(ctx context.Context, record models.GoodsRecord) (models.GoodsRecord, error)
	InsertCustomer(ctx context.Context, record models.CustomerRecord) (models.CustomerRecord, error)
}

// EntryHandler handles validated ledger inserts from the entry forms.
type EntryHandler struct {
	store  RecordInserter
	logger *zap.Logger
	now    func() time.Time
}

// NewEntryHandler constructs the entry HTTP adapter.
func NewEntryHandler(store RecordInserter, logger *zap.Logger) *EntryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EntryHandler{store: store, logger: logger, now: time.Now}
}

// CreateGoods records a goods collection. The final price is derived here,
// once, and persisted verbatim.
func (h *EntryHandler) CreateGoods(c *gin.Context) {
	var req models.NewGoodsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid goods entry payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	record := models.GoodsRecord{
		FarmerName:     req.FarmerName,
		FarmerPhone:    req.FarmerPhone,
		GoodName:       req.GoodName,
		Quantity:       req.Quantity,
		Units:          req.Units,
		PricePerUnit:   req.PricePerUnit,
		WithCommission: req.WithCommission,
		FinalPrice:     models.ComputeFinalPrice(req.Quantity, req.PricePerUnit, req.WithCommission),
		CreatedAt:      h.now(),
	}

	saved, err := h.store.InsertGoods(c.Request.Context(), record)
	if err != nil {
		h.logger.Error("failed inserting goods record", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to save record"})
		return
	}

	c.JSON(http.StatusCreated, saved)
}

// CreateCustomer records a sale.
func (h *EntryHandler) CreateCustomer(c *gin.Context) {
	var req models.NewCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid customer entry payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	record := models.CustomerRecord{
		CustomerName:   req.CustomerName,
		Phone:          req.Phone,
		Address:        req.Address,
		GoodsPurchased: req.GoodsPurchased,
		Price:          req.Price,
		CreatedAt:      h.now(),
	}

	saved, err := h.store.InsertCustomer(c.Request.Context(), record)
	if err != nil {
		h.logger.Error("failed inserting customer record", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to save record"})
		return
	}

	c.JSON(http.StatusCreated, saved)
}
