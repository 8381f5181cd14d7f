package report

import (
	"bytes"
	"testing"
	"time"

	"spendtrack/internal/core"
)

func TestRenderProducesPDF(t *testing.T) {
	x := NewExporter(func() string { return "USD" })
	profile := core.UserProfile{Name: "Ada", Email: "ada@example.com", Currency: "USD"}
	expenses := []core.Expense{
		{ID: "1", Title: "Groceries", Amount: 85.75, Category: "Food",
			Date: core.NewDate(2025, time.June, 10), ReceiptImage: "data:image/png;base64,abc"},
		{ID: "2", Title: "Bus ticket", Amount: 2.50, Category: "Transport",
			Date: core.NewDate(2025, time.June, 11)},
	}

	var buf bytes.Buffer
	if err := x.Render(&buf, profile, expenses); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF")
	}
	if buf.Len() < 1000 {
		t.Fatalf("suspiciously small document: %d bytes", buf.Len())
	}
}

func TestRenderEmptyCollection(t *testing.T) {
	x := NewExporter(func() string { return "EUR" })
	var buf bytes.Buffer
	err := x.Render(&buf, core.UserProfile{Name: "User", Email: "user@example.com"}, nil)
	if err != nil {
		t.Fatalf("render empty: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF")
	}
}

func TestRenderManyRowsPaginates(t *testing.T) {
	x := NewExporter(func() string { return "USD" })
	var expenses []core.Expense
	for i := 0; i < 120; i++ {
		expenses = append(expenses, core.Expense{
			ID: "x", Title: "Item", Amount: 1, Category: "Other",
			Date: core.NewDate(2025, time.January, 1),
		})
	}
	var buf bytes.Buffer
	if err := x.Render(&buf, core.UserProfile{Name: "User", Email: "user@example.com"}, expenses); err != nil {
		t.Fatalf("render: %v", err)
	}
	// 120 rows cannot fit one A4 page. A single-page document carries two
	// "/Type /Page" markers (the page and the /Pages parent); more pages
	// mean more markers.
	if n := bytes.Count(buf.Bytes(), []byte("/Type /Page")); n < 3 {
		t.Fatalf("expected multiple pages, found %d markers", n)
	}
}
