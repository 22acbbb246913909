package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/farmconnect/trader/internal/domain/models"
)

const (
	goodsSheet     = "Goods"
	customersSheet = "Customers"
)

// GoodsWorkbook serializes a goods collection into a single-sheet workbook.
func GoodsWorkbook(records []models.GoodsRecord) ([]byte, error) {
	rows := make([][]interface{}, 0, len(records)+1)
	rows = append(rows, headerCells(GoodsHeader))
	for _, rec := range records {
		rows = append(rows, []interface{}{
			rec.CreatedAt.Format(dateLayout),
			rec.FarmerName,
			rec.GoodName,
			rec.Quantity,
			rec.PricePerUnit,
			yesNo(rec.WithCommission),
			rec.FinalPrice,
			fmt.Sprintf("%.2f", rec.CommissionAmount()),
		})
	}
	return writeWorkbook(goodsSheet, rows)
}

// CustomersWorkbook serializes a customer collection into a single-sheet
// workbook.
func CustomersWorkbook(records []models.CustomerRecord) ([]byte, error) {
	rows := make([][]interface{}, 0, len(records)+1)
	rows = append(rows, headerCells(CustomersHeader))
	for _, rec := range records {
		rows = append(rows, []interface{}{
			rec.CreatedAt.Format(dateLayout),
			rec.CustomerName,
			rec.Phone,
			rec.Address,
			rec.GoodsPurchased,
			rec.Price,
		})
	}
	return writeWorkbook(customersSheet, rows)
}

func writeWorkbook(sheet string, rows [][]interface{}) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("name sheet %s: %w", sheet, err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, fmt.Errorf("compute cell for row %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func headerCells(header []string) []interface{} {
	cells := make([]interface{}, len(header))
	for i, h := range header {
		cells[i] = h
	}
	return cells
}
