package pdfgen

import (
	"fmt"
	"os"
	"testing"

	"github.com/go-pdf/fpdf"
	pdfreader "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// writeTestPDF builds a small PDF at path with the given number of
// pages, each carrying a marker string.
func writeTestPDF(t *testing.T, path string, pages int, marker string) {
	t.Helper()

	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetFont("Helvetica", "", 12)
	for i := 1; i <= pages; i++ {
		doc.AddPage()
		doc.Text(72, 100, fmt.Sprintf("%s page %d", marker, i))
	}
	if err := doc.OutputFileAndClose(path); err != nil {
		t.Fatalf("writing test PDF %s: %v", path, err)
	}
}

// pageCount reads the page count of a PDF on disk.
func pageCount(t *testing.T, path string) int {
	t.Helper()

	n, err := api.PageCountFile(path)
	if err != nil {
		t.Fatalf("page count of %s: %v", path, err)
	}
	return n
}

// readBytes loads a file, failing the test on error.
func readBytes(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return data
}

// extractPageText returns the plain text of one page (1-based) of a
// PDF on disk.
func extractPageText(t *testing.T, path string, page int) string {
	t.Helper()

	f, r, err := pdfreader.Open(path)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}
	defer func() { _ = f.Close() }()

	p := r.Page(page)
	if p.V.IsNull() {
		t.Fatalf("page %d of %s is missing", page, path)
	}
	text, err := p.GetPlainText(nil)
	if err != nil {
		t.Fatalf("extracting text from %s page %d: %v", path, page, err)
	}
	return text
}
