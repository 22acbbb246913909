package documents

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

const (
	tableX      = 20
	labelWidth  = 50
	valueWidth  = 80
	tableRowH   = 10
	tableFontPt = 11
)

// PDFCanvas draws an A4 portrait page with fpdf. Text is translated from
// UTF-8 into the core fonts' cp1252 encoding, so glyphs outside that set
// (the rupee sign among them) cannot be drawn.
type PDFCanvas struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

// NewPDFCanvas opens a fresh single-page A4 canvas in millimetre units.
func NewPDFCanvas() Canvas {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 12)
	return &PDFCanvas{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

// SetFont selects the Helvetica variant used for subsequent text.
func (c *PDFCanvas) SetFont(style string, size float64) {
	c.pdf.SetFont("Helvetica", style, size)
}

// Text draws a string with its baseline at the given position.
func (c *PDFCanvas) Text(x, y float64, s string) {
	c.pdf.Text(x, y, c.tr(s))
}

// CenterText draws a horizontally centered string at the given height.
func (c *PDFCanvas) CenterText(y float64, s string) {
	encoded := c.tr(s)
	pageW, _ := c.pdf.GetPageSize()
	c.pdf.Text((pageW-c.pdf.GetStringWidth(encoded))/2, y, encoded)
}

// Line draws a 0.5mm separator between the two points.
func (c *PDFCanvas) Line(x1, y1, x2, y2 float64) {
	c.pdf.SetLineWidth(0.5)
	c.pdf.Line(x1, y1, x2, y2)
}

// Table draws a striped two-column key/value block and returns the height
// where it ended.
func (c *PDFCanvas) Table(startY float64, rows [][2]string) float64 {
	c.pdf.SetFillColor(240, 240, 240)
	for i, row := range rows {
		fill := i%2 == 1
		c.pdf.SetXY(tableX, startY+float64(i)*tableRowH)
		c.SetFont("B", tableFontPt)
		c.pdf.CellFormat(labelWidth, tableRowH, c.tr(row[0]), "", 0, "L", fill, 0, "")
		c.SetFont("", tableFontPt)
		c.pdf.CellFormat(valueWidth, tableRowH, c.tr(row[1]), "", 1, "L", fill, 0, "")
	}
	return startY + float64(len(rows))*tableRowH
}

// PageHeight returns the page height in millimetres.
func (c *PDFCanvas) PageHeight() float64 {
	_, pageH := c.pdf.GetPageSize()
	return pageH
}

// Output finalizes the page and returns the PDF bytes.
func (c *PDFCanvas) Output() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
