// Package documents renders single ledger records into fixed-layout
// printable pages. Renderers are pure functions of the record plus a page
// drawing capability; they know nothing about filtering or aggregation.
package documents

import (
	"strings"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const (
	organizationName = "FARM CONNECT"
	currency         = "Rs."
	dateLayout       = "Jan 02, 2006"
	fileDateLayout   = "2006-01-02"
)

// Canvas is the page drawing capability consumed by the renderers. The
// production implementation draws PDF pages; tests substitute a recorder.
type Canvas interface {
	// SetFont selects the active font style ("", "B" or "I") and size.
	SetFont(style string, size float64)
	// Text draws a string with its baseline at the given position (mm).
	Text(x, y float64, s string)
	// CenterText draws a horizontally centered string at the given height.
	CenterText(y float64, s string)
	// Line draws a straight separator.
	Line(x1, y1, x2, y2 float64)
	// Table draws a striped two-column key/value block starting at the
	// given height and returns the height where it ended.
	Table(startY float64, rows [][2]string) float64
	// PageHeight returns the page height in drawing units.
	PageHeight() float64
	// Output finalizes the page and returns the encoded document.
	Output() ([]byte, error)
}

// CanvasFactory produces a fresh single-page canvas per document.
type CanvasFactory func() Canvas

// Document is a rendered printable artifact.
type Document struct {
	Filename string
	Data     []byte
}

// Renderer builds collection receipts and sales invoices.
type Renderer struct {
	newCanvas CanvasFactory
	logger    *zap.Logger
}

// NewRenderer wires a renderer over the given drawing capability.
func NewRenderer(factory CanvasFactory, logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if factory == nil {
		factory = NewPDFCanvas
	}
	return &Renderer{newCanvas: factory, logger: logger}
}

// reference builds the document reference number. The store always assigns
// ids; the random token is a legacy fallback for pre-migration rows and is
// logged so data-integrity gaps surface.
func (r *Renderer) reference(prefix, id string) string {
	if id != "" {
		return prefix + id
	}
	token := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	r.logger.Warn("record missing store id, using fallback reference token", zap.String("token", token))
	return prefix + token
}

func hexID(id primitive.ObjectID) string {
	if id.IsZero() {
		return ""
	}
	return id.Hex()
}
