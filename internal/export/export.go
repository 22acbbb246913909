// Package export serializes filtered ledger views into exchange formats.
// Row order always follows the input collection and the payload bytes are
// reproducible for identical input; only the filename carries the export
// date.
package export

import (
	"fmt"
	"strconv"
	"time"
)

// Kind selects which ledger projection to serialize.
type Kind string

const (
	KindGoods     Kind = "goods"
	KindCustomers Kind = "customers"
)

// Format selects the output encoding.
type Format string

const (
	FormatCSV      Format = "csv"
	FormatWorkbook Format = "xlsx"
)

const dateLayout = "2006-01-02"

// GoodsHeader is the fixed goods row projection.
var GoodsHeader = []string{
	"Date", "Farmer Name", "Good Name", "Quantity", "Price per Unit",
	"With Commission", "Final Price", "Commission Amount",
}

// CustomersHeader is the fixed customer row projection.
var CustomersHeader = []string{
	"Date", "Customer Name", "Phone", "Address", "Goods Purchased", "Price",
}

// Filename names the downloadable artifact for an export generated now.
func Filename(kind Kind, format Format, now time.Time) string {
	return fmt.Sprintf("farm_connect_%s_report_%s.%s", kind, now.Format(dateLayout), format)
}

// ContentType returns the MIME type for a format.
func ContentType(format Format) string {
	if format == FormatWorkbook {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// number renders a float the way the entry forms display it: no exponent,
// no trailing zeros.
func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
