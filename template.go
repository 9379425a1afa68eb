package pdfgen

import "fmt"

// TemplateID selects one of the fixed document templates.
type TemplateID string

// Valid template identifiers.
const (
	TemplateWelcome        TemplateID = "welcome"
	TemplateContract       TemplateID = "contract"
	TemplateBillingInvoice TemplateID = "billing-invoice"
)

// TemplateIDs lists the valid template identifiers.
func TemplateIDs() []TemplateID {
	return []TemplateID{TemplateWelcome, TemplateContract, TemplateBillingInvoice}
}

// TemplateFileName returns the base file name associated with id, used
// for fixture lookup and derived output names (e.g. "welcome_letter").
func TemplateFileName(id TemplateID) (string, error) {
	tpl, err := templateFor(id)
	if err != nil {
		return "", err
	}
	return tpl.name(), nil
}

// template is implemented once per document template.
type template interface {
	// name is the base name used for files derived from this template.
	name() string

	// formatPDF is the file name of the externally authored format PDF
	// whose trailing pages are merged after the generated pages, or ""
	// when none is configured.
	formatPDF() string

	// render draws the dynamic pages for req onto the canvas, leaving
	// the final page open so filler pages or merged pages can follow.
	render(cv *canvas, req *Request)

	// staticPages appends the data-independent filler pages used when
	// no format PDF is available.
	staticPages(cv *canvas)
}

// templateFor maps an identifier to its template implementation.
func templateFor(id TemplateID) (template, error) {
	switch id {
	case TemplateWelcome:
		return welcomeLetter{}, nil
	case TemplateContract:
		return contract{}, nil
	case TemplateBillingInvoice:
		return billingInvoice{}, nil
	}
	return nil, fmt.Errorf("%w: %q (supported: %s, %s, %s)",
		ErrUnknownTemplate, id, TemplateWelcome, TemplateContract, TemplateBillingInvoice)
}
