package documents

import (
	"fmt"

	"github.com/farmconnect/trader/internal/domain/models"
)

const commissionNote = "Note: 10% commission has been deducted from the total amount."

// Receipt renders a farmer goods collection receipt.
func (r *Renderer) Receipt(rec models.GoodsRecord) (Document, error) {
	c := r.newCanvas()

	c.SetFont("B", 20)
	c.CenterText(30, organizationName)
	c.SetFont("", 16)
	c.CenterText(45, "Farmer Goods Collection Receipt")

	c.SetFont("", 10)
	c.Text(20, 60, "Date: "+rec.CreatedAt.Format(dateLayout))
	c.Text(20, 70, "Receipt #: "+r.reference("FC-", hexID(rec.ID)))

	c.Line(20, 80, 190, 80)

	c.SetFont("B", 14)
	c.Text(20, 95, "Farmer Information:")
	c.SetFont("", 12)
	c.Text(20, 110, "Name: "+rec.FarmerName)
	c.Text(20, 125, "Phone: "+rec.FarmerPhone)
	c.Text(20, 140, "Date of Collection: "+rec.CreatedAt.Format(dateLayout))

	c.SetFont("B", 14)
	c.Text(20, 160, "Goods Information:")

	commission := "No"
	if rec.WithCommission {
		commission = "Yes (10%)"
	}
	endY := c.Table(170, [][2]string{
		{"Good Name", rec.GoodName},
		{"Quantity", fmt.Sprintf("%v %s", rec.Quantity, rec.Units)},
		{"Price per Unit", fmt.Sprintf("%s%.2f", currency, rec.PricePerUnit)},
		{"Total Amount", fmt.Sprintf("%s%.2f", currency, rec.GrossAmount())},
		{"Commission Applied", commission},
		{"Final Amount", fmt.Sprintf("%s%.2f", currency, rec.FinalPrice)},
	})

	if rec.WithCommission {
		c.SetFont("I", 10)
		c.Text(20, endY+20, commissionNote)
	}

	c.SetFont("", 10)
	c.CenterText(c.PageHeight()-30, "Thank you for your business!")
	c.CenterText(c.PageHeight()-20, "Farm Connect - Connecting Farmers to Markets")

	data, err := c.Output()
	if err != nil {
		return Document{}, fmt.Errorf("render receipt: %w", err)
	}

	return Document{
		Filename: fmt.Sprintf("farmer_slip_%s_%s.pdf", rec.FarmerName, rec.CreatedAt.Format(fileDateLayout)),
		Data:     data,
	}, nil
}
