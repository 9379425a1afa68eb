package pdfgen

// billingInvoice is a placeholder until the billing invoice layout is
// finalised. It renders a single titled page and has no format PDF
// configured.
type billingInvoice struct{}

func (billingInvoice) name() string      { return "billing_invoice" }
func (billingInvoice) formatPDF() string { return "" }

func (billingInvoice) render(cv *canvas, _ *Request) {
	cv.textColor(0, 0, 0)
	cv.setFont("B", 16)
	cv.text(100, 100, "Billing Invoice Document")
	cv.setFont("", 12)
	cv.text(100, 150, "Billing invoice template - To be implemented")
}

func (billingInvoice) staticPages(cv *canvas) {
	cv.addPage()
	cv.textColor(0, 0, 0)
	cv.setFont("", 12)
	cv.text(100, 100, "Billing invoice static pages - To be implemented")
}
