// Package report renders the expense collection into a paginated PDF
// document. It is a one-way collaborator: it only reads from the
// repositories and nothing in the core depends on its output.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"spendtrack/internal/core"
	"spendtrack/internal/currency"
)

// Exporter renders expense reports with amounts in the given currency.
type Exporter struct {
	// Currency resolves the active display currency at render time.
	Currency func() string
}

func NewExporter(currencyCode func() string) *Exporter {
	return &Exporter{Currency: currencyCode}
}

var columns = []struct {
	title string
	width float64
	align string
}{
	{"Description", 60, "L"},
	{"Category", 35, "L"},
	{"Date", 30, "L"},
	{"Amount", 35, "R"},
	{"Receipt", 20, "C"},
}

// Render writes the PDF report for the given profile and expenses.
func (x *Exporter) Render(w io.Writer, profile core.UserProfile, expenses []core.Expense) error {
	code := x.Currency()

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AliasNbPages("")

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Helvetica", "B", 16)
		pdf.Cell(0, 10, "Expense Report")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(110, 110, 110)
		pdf.Cell(0, 6, "Generated "+time.Now().Format("Jan 2, 2006"))
		pdf.Ln(5)
		if profile.Name != "" {
			pdf.Cell(0, 6, tr(profile.Name+" <"+profile.Email+">"))
			pdf.Ln(5)
		}
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(3)
		tableHeader(pdf)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(110, 110, 110)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 10)

	for i, e := range expenses {
		if i%2 == 1 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		receipt := "No"
		if e.ReceiptImage != "" {
			receipt = "Yes"
		}
		cells := []string{
			e.Title,
			e.Category,
			e.Date.Format("Jan 2, 2006"),
			currency.Format(e.Amount, code),
			receipt,
		}
		for c, col := range columns {
			pdf.CellFormat(col.width, 8, tr(cells[c]), "B", 0, col.align, true, 0, "")
		}
		pdf.Ln(-1)
	}

	// Grand total row.
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(columns[0].width+columns[1].width+columns[2].width, 9, "Total", "T", 0, "L", false, 0, "")
	pdf.CellFormat(columns[3].width, 9, tr(currency.Format(core.Total(expenses), code)), "T", 0, "R", false, 0, "")
	pdf.CellFormat(columns[4].width, 9, "", "T", 0, "C", false, 0, "")
	pdf.Ln(-1)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

func tableHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range columns {
		pdf.CellFormat(col.width, 8, col.title, "1", 0, col.align, true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 10)
}
