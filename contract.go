package pdfgen

// contract is a placeholder until the contract layout is finalised.
// It renders a single titled page and has no format PDF configured.
type contract struct{}

func (contract) name() string      { return "contract" }
func (contract) formatPDF() string { return "" }

func (contract) render(cv *canvas, _ *Request) {
	cv.textColor(0, 0, 0)
	cv.setFont("B", 16)
	cv.text(100, 100, "Contract Document")
	cv.setFont("", 12)
	cv.text(100, 150, "Contract template - To be implemented")
}

func (contract) staticPages(cv *canvas) {
	cv.addPage()
	cv.textColor(0, 0, 0)
	cv.setFont("", 12)
	cv.text(100, 100, "Contract static pages - To be implemented")
}
