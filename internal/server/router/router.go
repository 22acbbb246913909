package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/farmconnect/trader/internal/server/handlers"
)

// Handlers bundles the HTTP adapters mounted by the router.
type Handlers struct {
	Reports   *handlers.ReportsHandler
	Exports   *handlers.ExportsHandler
	Documents *handlers.DocumentsHandler
	Entry     *handlers.EntryHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	api := r.Group("/api")
	{
		api.GET("/reports/goods", h.Reports.Goods)
		api.GET("/reports/customers", h.Reports.Customers)

		api.GET("/exports/goods", h.Exports.Goods)
		api.GET("/exports/customers", h.Exports.Customers)

		api.GET("/documents/goods/:id/receipt", h.Documents.Receipt)
		api.GET("/documents/customers/:id/invoice", h.Documents.Invoice)
		api.POST("/documents/goods/bulk", h.Documents.BulkReceipts)
		api.POST("/documents/customers/bulk", h.Documents.BulkInvoices)

		api.POST("/goods", h.Entry.CreateGoods)
		api.POST("/customers", h.Entry.CreateCustomer)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
