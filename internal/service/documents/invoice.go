package documents

import (
	"fmt"

	"github.com/farmconnect/trader/internal/domain/models"
)

var invoiceTerms = []string{
	"• All goods are sold as-is without warranty",
	"• Returns are accepted within 24 hours of purchase",
	"• Quality guarantee for fresh produce",
}

// Invoice renders a customer purchase invoice.
func (r *Renderer) Invoice(rec models.CustomerRecord) (Document, error) {
	c := r.newCanvas()

	c.SetFont("B", 20)
	c.CenterText(30, organizationName)
	c.SetFont("", 16)
	c.CenterText(45, "Customer Purchase Receipt")

	c.SetFont("", 10)
	c.Text(20, 60, "Date: "+rec.CreatedAt.Format(dateLayout))
	c.Text(20, 70, "Invoice #: "+r.reference("FC-INV-", hexID(rec.ID)))

	c.Line(20, 80, 190, 80)

	c.SetFont("B", 14)
	c.Text(20, 95, "Customer Information:")
	c.SetFont("", 12)
	c.Text(20, 110, "Name: "+rec.CustomerName)
	c.Text(20, 125, "Phone: "+rec.Phone)
	c.Text(20, 140, "Address: "+rec.Address)

	c.SetFont("B", 14)
	c.Text(20, 160, "Purchase Information:")

	endY := c.Table(170, [][2]string{
		{"Goods Purchased", rec.GoodsPurchased},
		{"Total Amount", fmt.Sprintf("%s%.2f", currency, rec.Price)},
		{"Payment Status", "Paid"},
		{"Purchase Date", rec.CreatedAt.Format(dateLayout)},
	})

	c.SetFont("B", 10)
	c.Text(20, endY+20, "Terms & Conditions:")
	c.SetFont("", 10)
	for i, term := range invoiceTerms {
		c.Text(20, endY+30+float64(i)*10, term)
	}

	c.SetFont("", 10)
	c.CenterText(c.PageHeight()-30, "Thank you for your purchase!")
	c.CenterText(c.PageHeight()-20, "Farm Connect - Fresh from Farm to Table")

	data, err := c.Output()
	if err != nil {
		return Document{}, fmt.Errorf("render invoice: %w", err)
	}

	return Document{
		Filename: fmt.Sprintf("customer_invoice_%s_%s.pdf", rec.CustomerName, rec.CreatedAt.Format(fileDateLayout)),
		Data:     data,
	}, nil
}
