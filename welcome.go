package pdfgen

import (
	"fmt"
	"strings"
)

// welcomeLetter renders the two-page welcome letter: page 1 is the
// letter itself, page 2 the customer and contract statement that
// accompanies the standard terms. Header, footer and signature artwork
// come from the per-page background images; the renderer only places
// text between the reserved bands.
type welcomeLetter struct{}

func (welcomeLetter) name() string { return "welcome_letter" }

func (welcomeLetter) formatPDF() string {
	return "Aramco Energy Electricity Welcome Letter.pdf"
}

func (t welcomeLetter) render(cv *canvas, req *Request) {
	t.pageOne(cv, req)
	cv.addPage()
	// Page 2 stays open so the merge step or filler pages can follow.
	t.pageTwo(cv, req)
}

func (welcomeLetter) pageOne(cv *canvas, req *Request) {
	cv.background("bg-welcome-pg1.png")

	website := fallback(req.Website, defaultWebsite)
	maxWidth := cv.contentWidth()

	// Content starts just below the header band.
	cu := cursor{y: cv.pageH*headerBand + 30}

	cv.textColor(0, 0, 0)
	cv.setFont("", 10)
	cv.text(marginLeft, cu.y, "Private and Confidential")

	date := req.dateDisplay()
	cv.text(cv.pageW-marginRight-cv.width(date), cu.y, date)
	cu.advance(9.5)

	// Account and customer numbers: bold black label, bold blue value.
	cv.setFont("B", 10)
	label := "Account Number: "
	cv.text(marginLeft, cu.y, label)
	cv.textColor(0, 0, 255)
	cv.text(marginLeft+cv.width(label), cu.y, fallback(req.Customer.AccountNumber, "N/A"))
	cu.advance(1)

	cv.textColor(0, 0, 0)
	label = "Customer Number: "
	cv.text(marginLeft, cu.y, label)
	cv.textColor(0, 0, 255)
	cv.text(marginLeft+cv.width(label), cu.y, fallback(req.Customer.CustomerNumber, "N/A"))
	cu.advance(2)

	cv.setFont("", 11)
	cv.textColor(0, 0, 0)
	cv.text(marginLeft, cu.y, "Hi "+fallback(req.Customer.Name, "Name")+",")
	cu.advance(1.5)

	cv.setFont("B", 12)
	cv.text(marginLeft, cu.y, "Welcome to Aramco Energy")
	cu.advance(2)

	cv.setFont("", 10)
	welcome := "To get you off to the best possible start, please register now for your Online Account by visiting our " +
		"website " + website + " and entering the Customer Number listed above. When you first " +
		"log in you will be asked to provide key information that will help us ensure you are only billed for energy " +
		"you have used."
	for _, ln := range cv.wrap(welcome, maxWidth) {
		drawTextWithURL(cv, ln, marginLeft, cu.y, website)
		cu.advance(1)
	}
	cu.advance(0.5)

	cv.text(marginLeft, cu.y, "Once again we look forward to supplying your business energy.")
	cu.advance(2)

	cv.setFont("B", 10)
	cv.text(marginLeft, cu.y, "Other key benefits of your Online Account include:")
	cu.advance(1.5)

	cv.setFont("", 10)
	benefits := []string{
		"Download and view your invoices",
		"View and manage your energy usage",
		"Input meter readings to help ensure your invoice is accurate",
		"Make payments online",
		"Access copies of forms and other information",
	}
	for _, benefit := range benefits {
		cv.text(marginLeft+15, cu.y, "• "+benefit)
		cu.advance(1)
	}
	cu.advance(0.5)

	cv.text(marginLeft, cu.y, "Attached you will find your important contract information, terms and conditions and privacy policy.")
	cu.advance(1.2)

	contact := "If you have any questions at this point, please visit our website " + website + " and chat to " +
		"us live or call us on " + fallback(req.Customer.Phone, "TBC") + ". We're here to help from " +
		fallback(req.BusinessHours, defaultBusinessHours) + "."
	// The signature block below this paragraph is part of the page-1
	// artwork, hence the larger footer clearance. Lines that would
	// cross the limit are dropped, not flowed to the next page.
	limit := cv.footerLimit(100)
	for _, ln := range cv.wrap(contact, maxWidth) {
		if cu.y > limit {
			break
		}
		drawTextWithURL(cv, ln, marginLeft, cu.y, website)
		cu.advance(1)
	}
}

func (welcomeLetter) pageTwo(cv *canvas, req *Request) {
	cv.background("bg-welcome-pg2.png")

	maxWidth := cv.contentWidth()
	cu := cursor{y: cv.pageH*headerBand + 30}

	cv.textColor(0, 0, 0)
	cv.setFont("", 10)
	intro := "Additional information to accompany Aramco's Standard Terms & Conditions to Businesses and Micro Businesses"
	for _, ln := range cv.wrap(intro, maxWidth) {
		cv.text(marginLeft, cu.y, ln)
		cu.advance(1)
	}
	cu.advance(0.3)

	cv.text(marginLeft, cu.y, `(Incorporating the requisite "Statement of Renewal Terms")`)
	cu.advance(1.5)

	note := "Any terms highlighted in bold below are defined in section O (definitions) of the Terms and Conditions document that accompanies this statement."
	for _, ln := range cv.wrap(note, maxWidth) {
		cv.text(marginLeft, cu.y, ln)
		cu.advance(1)
	}
	cu.advance(2)

	sectionHeading(cv, "1. Customer & site", marginLeft, cu.y)
	cu.advance(2)

	fullName := strings.TrimSpace(req.Customer.Title + " " + fallback(req.Customer.Name, "Name"))
	cv.setFont("", 10)
	cv.text(marginLeft, cu.y, "Customer name: "+fullName)
	cu.advance(2.5)

	cv.text(marginLeft, cu.y, "Site(s) address(es):")
	cu.advance(1)
	for _, addrLine := range strings.Split(fallback(req.Customer.ServiceAddress, "N/A"), "\n") {
		cv.text(marginLeft+15, cu.y, strings.TrimSpace(addrLine))
		cu.advance(1)
	}
	cu.advance(1.5)

	cv.text(marginLeft, cu.y, "MPAN (electricity): "+fallback(req.Account.MPAN, "N/A"))
	cu.advance(2.5)

	cv.text(marginLeft, cu.y, "Profile Class: "+fallback(req.Account.ProfileClass, "N/A"))
	cu.advance(2.5)

	sectionHeading(cv, "2. Contract details", marginLeft, cu.y)
	cu.advance(2)

	cv.setFont("", 10)
	cv.text(marginLeft, cu.y, "Contract form (type): "+fallback(req.Account.ContractType, "N/A"))
	cu.advance(2.5)

	cv.text(marginLeft, cu.y, "Product Type: "+fallback(req.Account.ProductType, "N/A"))
	cu.advance(2.5)

	start := fallback(req.Account.ContractStartDateDisplay, fallback(req.Account.ContractStartDate, "N/A"))
	cv.text(marginLeft, cu.y, "Contract start date: "+start+" (subject to successful application)")
	cu.advance(2.5)

	cv.text(marginLeft, cu.y, "Contract end date: "+fallback(req.Account.ContractEndDate, "N/A")+" (to be confirmed in writing when finalised)")
	cu.advance(2.5)

	sectionHeading(cv, "3. Contract prices", marginLeft, cu.y)
	cu.advance(2)

	cv.setFont("", 10)
	cv.text(marginLeft, cu.y, "Contract price: Initial Period ("+fallback(req.Account.ContractStartDate, "N/A")+") until end of contract")
	cu.advance(2.5)

	p := req.Pricing
	pricingLine := fallback(p.StandingCharge, "£0.78") + " " + fallback(p.StandingChargeUnit, "per day") +
		fallback(p.Rate1, "30.40") + " " + fallback(p.Rate1Unit, "p / kWh") +
		fallback(p.Rate2, "21.10") + " " + fallback(p.Rate2Unit, "p / kWh")
	cv.text(marginLeft, cu.y, pricingLine)
	cu.advance(1)

	cv.text(marginLeft, cu.y, "(Standing Charge)("+fallback(p.Rate1Label, "Rate 1")+")("+fallback(p.Rate2Label, "Rate 2")+")")
	cu.advance(2)

	cv.text(marginLeft, cu.y, "Rate1 – "+fallback(p.Rate1Description, "Day charge")+
		", Rate 2 – "+fallback(p.Rate2Description, "Night Charge")+
		", Rate 3 – "+fallback(p.Rate3Description, "Evening/Weekend charge")+".")
	cu.advance(1.2)

	clarification := "For clarification, if no charges are quoted for Rates 2 & 3 then Rate 1 will apply at all times (24 hours a day, 7 days a week)"
	for _, ln := range cv.wrap(clarification, maxWidth) {
		cv.text(marginLeft, cu.y, ln)
		cu.advance(1)
	}
	cu.advance(0.5)

	priceChange := "If unit rates are subject to change, prices will vary when wholesale and/or third party costs have changed significantly"
	limit := cv.footerLimit(20)
	for _, ln := range cv.wrap(priceChange, maxWidth) {
		if cu.y > limit {
			break
		}
		cv.text(marginLeft, cu.y, ln)
		cu.advance(1)
	}
}

// staticPages draws the filler pages 3-10 used when no format PDF is
// available. Their layout is fixed and data-independent.
func (welcomeLetter) staticPages(cv *canvas) {
	const totalPages = 10

	for page := 3; page <= totalPages; page++ {
		cv.addPage()

		cv.textColor(0, 0, 0)
		cv.setFont("B", 16)
		header := "Company Report Template"
		cv.text((cv.pageW-cv.width(header))/2, 80, header)
		cv.line(100, 95, cv.pageW-100, 95, 1)

		cv.setFont("", 12)
		content := "This is a static page – Company Report Template"
		cv.text((cv.pageW-cv.width(content))/2, cv.pageH/2, content)

		cv.setFont("", 10)
		placeholders := []string{
			"This page follows a consistent template design.",
			"All static pages (pages 3-10) use this same layout.",
			"You can customize this template as needed for your reports.",
		}
		y := cv.pageH/2 + 60
		for _, ln := range placeholders {
			cv.text((cv.pageW-cv.width(ln))/2, y, ln)
			y += 25
		}

		cv.doc.SetLineWidth(1)
		cv.doc.Rect(80, 130, cv.pageW-160, cv.pageH-280, "D")

		pageFooter(cv, page, totalPages)
	}
}

// sectionHeading draws a bold heading with an underline sized to the
// heading's measured width.
func sectionHeading(cv *canvas, s string, x, y float64) {
	cv.setFont("B", 11)
	cv.text(x, y, s)
	cv.doc.SetDrawColor(0, 0, 0)
	cv.line(x, y+2, x+cv.width(s), y+2, 1)
}

// pageFooter centers "Page N of M" in the bottom margin.
func pageFooter(cv *canvas, page, total int) {
	cv.setFont("", 9)
	text := fmt.Sprintf("Page %d of %d", page, total)
	cv.text((cv.pageW-cv.width(text))/2, cv.pageH-30, text)
}
