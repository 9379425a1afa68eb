// Package pdfgen renders structured business data (customer, account
// and pricing records) into paginated PDF documents using fixed-layout
// templates, optionally merging trailing pages from a pre-designed
// format PDF.
//
// # Quick Start
//
// Create a service and generate a document:
//
//	svc := pdfgen.New(pdfgen.WithLogger(logger))
//	path, err := svc.Generate(ctx, pdfgen.TemplateWelcome, &req, "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// When no output path is supplied, a sortable timestamped name is
// derived under the results directory.
//
// # Templates
//
// Three templates are supported: welcome (a two-page welcome letter
// followed by a customer and contract statement), contract and
// billing-invoice (placeholders pending their final layouts). Unknown
// identifiers are rejected with ErrUnknownTemplate.
//
// # Page Composition
//
// Pages are drawn onto an A4 canvas with a manually tracked vertical
// cursor. The top 15% of each page is reserved for header artwork and
// the bottom 5% for footer artwork, both supplied by full-bleed
// background images when present on disk. Paragraph lines that would
// cross into the footer band are dropped rather than flowed onto a new
// page.
//
// # Format PDFs
//
// When a template has a format PDF on disk, its pages from index 2
// onward are appended after the generated pages. A missing format PDF
// degrades to the template's static filler pages, and a failed merge
// leaves the generated document untouched; neither is a fatal error.
//
// # HTTP and CLI
//
// Handler exposes POST /generate/{template}, GET /results/{filename}
// and GET /health. The cmd/pdfgen binary serves HTTP by default, or
// generates a single document from a JSON fixture with --name.
package pdfgen
