package pdfgen

// Notes:
// - These are end-to-end tests: they drive Generate against real
//   directories and inspect the published PDFs with pdfcpu and a text
//   extractor instead of mocking the renderer.
// - A fixed clock makes the derived filenames deterministic.

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

func fixedClock(t *testing.T) func() time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, "2026-03-15T14:30:05Z")
	if err != nil {
		t.Fatalf("parsing fixed time: %v", err)
	}
	return func() time.Time { return ts }
}

func newTestService(t *testing.T) (*Service, string, string) {
	t.Helper()
	resultsDir := t.TempDir()
	formatDir := t.TempDir()
	svc := New(
		WithLogger(zap.NewNop()),
		WithResultsDir(resultsDir),
		WithFormatDir(formatDir),
		WithClock(fixedClock(t)),
	)
	return svc, resultsDir, formatDir
}

func sampleRequest() *Request {
	return &Request{
		Customer: Customer{
			Name:          "Jane Doe",
			AccountNumber: "AE123",
		},
		Account: Account{MPAN: "1200000000000"},
	}
}

// ---------------------------------------------------------------------------
// TestService_Generate - derived filename, content, filler pages
// ---------------------------------------------------------------------------

func TestService_Generate(t *testing.T) {
	t.Parallel()

	svc, resultsDir, _ := newTestService(t)

	path, err := svc.Generate(context.Background(), TemplateWelcome, sampleRequest(), "")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	name := filepath.Base(path)
	if want := "welcome_letter_20260315_143005.pdf"; name != want {
		t.Errorf("filename = %q, want %q", name, want)
	}
	pattern := regexp.MustCompile(`^welcome_letter_\d{8}_\d{6}\.pdf$`)
	if !pattern.MatchString(name) {
		t.Errorf("filename %q does not match %v", name, pattern)
	}
	if filepath.Dir(path) != resultsDir {
		t.Errorf("output dir = %q, want %q", filepath.Dir(path), resultsDir)
	}

	// Without a format PDF the welcome letter pads out to 10 pages.
	if got := pageCount(t, path); got != 10 {
		t.Errorf("page count = %d, want 10", got)
	}

	pageOne := extractPageText(t, path, 1)
	for _, want := range []string{"AE123", "Jane Doe"} {
		if !strings.Contains(pageOne, want) {
			t.Errorf("page 1 missing %q", want)
		}
	}

	entries, err := os.ReadDir(resultsDir)
	if err != nil {
		t.Fatalf("reading results dir: %v", err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), "_temp.pdf") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestService_Generate_WithFormatPDF(t *testing.T) {
	t.Parallel()

	svc, _, formatDir := newTestService(t)

	// A 5-page format PDF contributes its pages 3-5 after the two
	// rendered pages, so filler pages are not drawn.
	formatPath := filepath.Join(formatDir, welcomeLetter{}.formatPDF())
	writeTestPDF(t, formatPath, 5, "format")

	path, err := svc.Generate(context.Background(), TemplateWelcome, sampleRequest(), "")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if got := pageCount(t, path); got != 5 {
		t.Errorf("page count = %d, want 5", got)
	}
	if text := extractPageText(t, path, 3); !strings.Contains(text, "format page 3") {
		t.Errorf("page 3 = %q, want format content", text)
	}
	if text := extractPageText(t, path, 1); !strings.Contains(text, "Jane Doe") {
		t.Error("page 1 lost rendered content after merge")
	}
}

func TestService_Generate_ShortFormatPDF(t *testing.T) {
	t.Parallel()

	svc, _, formatDir := newTestService(t)

	// A 2-page format PDF has nothing beyond the merge start index.
	// The merge is skipped but filler pages are still suppressed.
	formatPath := filepath.Join(formatDir, welcomeLetter{}.formatPDF())
	writeTestPDF(t, formatPath, 2, "format")

	path, err := svc.Generate(context.Background(), TemplateWelcome, sampleRequest(), "")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got := pageCount(t, path); got != 2 {
		t.Errorf("page count = %d, want 2", got)
	}
}

func TestService_Generate_ExplicitOutputPath(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	out := filepath.Join(t.TempDir(), "letter.pdf")

	path, err := svc.Generate(context.Background(), TemplateWelcome, sampleRequest(), out)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if path != out {
		t.Errorf("path = %q, want %q", path, out)
	}
	if !fileExistsForTest(out) {
		t.Error("explicit output path not written")
	}
}

func TestService_Generate_UnknownTemplate(t *testing.T) {
	t.Parallel()

	svc, resultsDir, _ := newTestService(t)

	_, err := svc.Generate(context.Background(), TemplateID("brochure"), sampleRequest(), "")
	if !errors.Is(err, ErrUnknownTemplate) {
		t.Fatalf("Generate() error = %v, want ErrUnknownTemplate", err)
	}

	entries, readErr := os.ReadDir(resultsDir)
	if readErr == nil && len(entries) > 0 {
		t.Errorf("results dir not empty after failed generate: %v", entries)
	}
}

func TestService_Generate_NilRequest(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)

	// A nil request renders with fallbacks everywhere.
	path, err := svc.Generate(context.Background(), TemplateWelcome, nil, "")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if text := extractPageText(t, path, 1); !strings.Contains(text, "Hi Name,") {
		t.Error("page 1 missing greeting fallback")
	}
}

func TestService_Generate_CanceledContext(t *testing.T) {
	t.Parallel()

	svc, resultsDir, _ := newTestService(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Generate(ctx, TemplateWelcome, sampleRequest(), "")
	if err == nil {
		t.Fatal("Generate() with canceled context succeeded")
	}

	entries, readErr := os.ReadDir(resultsDir)
	if readErr == nil {
		for _, e := range entries {
			if strings.HasSuffix(e.Name(), ".pdf") {
				t.Errorf("file published despite canceled context: %s", e.Name())
			}
		}
	}
}

func TestService_Generate_Stubs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id       TemplateID
		wantName string
	}{
		{id: TemplateContract, wantName: "contract_20260315_143005.pdf"},
		{id: TemplateBillingInvoice, wantName: "billing_invoice_20260315_143005.pdf"},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			t.Parallel()

			svc, _, _ := newTestService(t)
			path, err := svc.Generate(context.Background(), tt.id, &Request{}, "")
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if got := filepath.Base(path); got != tt.wantName {
				t.Errorf("filename = %q, want %q", got, tt.wantName)
			}
			if got := pageCount(t, path); got != 2 {
				t.Errorf("page count = %d, want 2", got)
			}
		})
	}
}

// fileExistsForTest avoids importing internal/fileutil into the tests.
func fileExistsForTest(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
