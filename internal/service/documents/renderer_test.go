package documents

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/farmconnect/trader/internal/domain/models"
)

type recordingCanvas struct {
	texts  []string
	tables [][][2]string
	lines  int
}

func (c *recordingCanvas) SetFont(style string, size float64) {}

func (c *recordingCanvas) Text(x, y float64, s string) {
	c.texts = append(c.texts, s)
}

func (c *recordingCanvas) CenterText(y float64, s string) {
	c.texts = append(c.texts, s)
}

func (c *recordingCanvas) Line(x1, y1, x2, y2 float64) {
	c.lines++
}

func (c *recordingCanvas) Table(startY float64, rows [][2]string) float64 {
	c.tables = append(c.tables, rows)
	return startY + float64(len(rows))*10
}

func (c *recordingCanvas) PageHeight() float64 { return 297 }

func (c *recordingCanvas) Output() ([]byte, error) { return []byte("%PDF"), nil }

func recordingRenderer() (*Renderer, *recordingCanvas) {
	canvas := &recordingCanvas{}
	r := NewRenderer(func() Canvas { return canvas }, nil)
	return r, canvas
}

func receiptFixture(withCommission bool) models.GoodsRecord {
	final := models.ComputeFinalPrice(10, 5, withCommission)
	return models.GoodsRecord{
		ID:             primitive.NewObjectID(),
		FarmerName:     "Ramesh Kumar",
		FarmerPhone:    "9876501234",
		GoodName:       "Rice",
		Quantity:       10,
		Units:          models.UnitKg,
		PricePerUnit:   5,
		WithCommission: withCommission,
		FinalPrice:     final,
		CreatedAt:      time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC),
	}
}

func countTexts(texts []string, substr string) int {
	n := 0
	for _, s := range texts {
		if strings.Contains(s, substr) {
			n++
		}
	}
	return n
}

func TestReceiptCommissionDisclaimer(t *testing.T) {
	r, canvas := recordingRenderer()
	_, err := r.Receipt(receiptFixture(true))
	require.NoError(t, err)
	assert.Equal(t, 1, countTexts(canvas.texts, "10% commission has been deducted"))

	r, canvas = recordingRenderer()
	_, err = r.Receipt(receiptFixture(false))
	require.NoError(t, err)
	assert.Zero(t, countTexts(canvas.texts, "commission has been deducted"))
}

func TestReceiptLayoutContent(t *testing.T) {
	rec := receiptFixture(true)
	r, canvas := recordingRenderer()

	doc, err := r.Receipt(rec)
	require.NoError(t, err)

	assert.Equal(t, 1, countTexts(canvas.texts, "FARM CONNECT"))
	assert.Equal(t, 1, countTexts(canvas.texts, "Farmer Goods Collection Receipt"))
	assert.Equal(t, 1, countTexts(canvas.texts, "Receipt #: FC-"+rec.ID.Hex()))
	assert.Equal(t, 1, countTexts(canvas.texts, "Date: Mar 06, 2024"))
	assert.Equal(t, 1, countTexts(canvas.texts, "Name: Ramesh Kumar"))
	assert.Equal(t, 1, canvas.lines)

	require.Len(t, canvas.tables, 1)
	table := canvas.tables[0]
	require.Len(t, table, 6)
	assert.Equal(t, [2]string{"Good Name", "Rice"}, table[0])
	assert.Equal(t, [2]string{"Quantity", "10 Kg"}, table[1])
	assert.Equal(t, [2]string{"Commission Applied", "Yes (10%)"}, table[4])
	assert.Equal(t, [2]string{"Final Amount", "Rs.45.00"}, table[5])

	// Footer anchored last.
	require.GreaterOrEqual(t, len(canvas.texts), 2)
	assert.Equal(t, "Thank you for your business!", canvas.texts[len(canvas.texts)-2])
	assert.Equal(t, "Farm Connect - Connecting Farmers to Markets", canvas.texts[len(canvas.texts)-1])

	assert.Equal(t, "farmer_slip_Ramesh Kumar_2024-03-06.pdf", doc.Filename)
	assert.NotEmpty(t, doc.Data)
}

func TestReceiptFallbackReferenceToken(t *testing.T) {
	rec := receiptFixture(false)
	rec.ID = primitive.NilObjectID

	r, canvas := recordingRenderer()
	_, err := r.Receipt(rec)
	require.NoError(t, err)

	var ref string
	for _, s := range canvas.texts {
		if strings.HasPrefix(s, "Receipt #: ") {
			ref = strings.TrimPrefix(s, "Receipt #: ")
		}
	}
	require.NotEmpty(t, ref)
	assert.True(t, strings.HasPrefix(ref, "FC-"))
	assert.Len(t, strings.TrimPrefix(ref, "FC-"), 9)
}

func TestInvoiceLayoutContent(t *testing.T) {
	rec := models.CustomerRecord{
		ID:             primitive.NewObjectID(),
		CustomerName:   "Priya",
		Phone:          "9000012345",
		Address:        "12 Market Road",
		GoodsPurchased: "Rice 5kg",
		Price:          120,
		CreatedAt:      time.Date(2024, 3, 6, 10, 0, 0, 0, time.UTC),
	}

	r, canvas := recordingRenderer()
	doc, err := r.Invoice(rec)
	require.NoError(t, err)

	assert.Equal(t, 1, countTexts(canvas.texts, "Customer Purchase Receipt"))
	assert.Equal(t, 1, countTexts(canvas.texts, "Invoice #: FC-INV-"+rec.ID.Hex()))

	require.Len(t, canvas.tables, 1)
	table := canvas.tables[0]
	require.Len(t, table, 4)
	assert.Equal(t, [2]string{"Payment Status", "Paid"}, table[2])

	// The terms block is unconditional and bullet-prefixed.
	assert.Equal(t, 1, countTexts(canvas.texts, "Terms & Conditions:"))
	assert.Equal(t, 1, countTexts(canvas.texts, "• All goods are sold as-is without warranty"))
	assert.Equal(t, 1, countTexts(canvas.texts, "• Returns are accepted within 24 hours of purchase"))
	assert.Equal(t, 1, countTexts(canvas.texts, "• Quality guarantee for fresh produce"))

	assert.Equal(t, "Thank you for your purchase!", canvas.texts[len(canvas.texts)-2])
	assert.Equal(t, "Farm Connect - Fresh from Farm to Table", canvas.texts[len(canvas.texts)-1])

	assert.Equal(t, "customer_invoice_Priya_2024-03-06.pdf", doc.Filename)
}

func TestPDFCanvasProducesDocument(t *testing.T) {
	r := NewRenderer(nil, nil)

	doc, err := r.Receipt(receiptFixture(true))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(doc.Data), "%PDF"))
}
