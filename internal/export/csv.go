package export

import (
	"fmt"
	"strings"

	"github.com/farmconnect/trader/internal/domain/models"
)

// Fields are joined without quoting or escaping. A field containing a comma
// or newline corrupts the row; consumers must keep free text delimiter-free.
// Pinned by tests so changing it stays a conscious decision.

// GoodsCSV serializes a goods collection into delimited text.
func GoodsCSV(records []models.GoodsRecord) []byte {
	var b strings.Builder
	writeRow(&b, GoodsHeader)
	for _, rec := range records {
		writeRow(&b, goodsRow(rec))
	}
	return []byte(b.String())
}

// CustomersCSV serializes a customer collection into delimited text.
func CustomersCSV(records []models.CustomerRecord) []byte {
	var b strings.Builder
	writeRow(&b, CustomersHeader)
	for _, rec := range records {
		writeRow(&b, customerRow(rec))
	}
	return []byte(b.String())
}

func goodsRow(rec models.GoodsRecord) []string {
	return []string{
		rec.CreatedAt.Format(dateLayout),
		rec.FarmerName,
		rec.GoodName,
		number(rec.Quantity),
		number(rec.PricePerUnit),
		yesNo(rec.WithCommission),
		number(rec.FinalPrice),
		fmt.Sprintf("%.2f", rec.CommissionAmount()),
	}
}

func customerRow(rec models.CustomerRecord) []string {
	return []string{
		rec.CreatedAt.Format(dateLayout),
		rec.CustomerName,
		rec.Phone,
		rec.Address,
		rec.GoodsPurchased,
		number(rec.Price),
	}
}

func writeRow(b *strings.Builder, fields []string) {
	b.WriteString(strings.Join(fields, ","))
	b.WriteByte('\n')
}
