package pdfgen

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"
)

// Layout constants, in points on an A4 page.
const (
	marginLeft  = 72
	marginRight = 72
	lineUnit    = 14

	// headerBand and footerBand are the fractions of the page height
	// reserved for the header and footer artwork supplied by the
	// background images.
	headerBand = 0.15
	footerBand = 0.05
)

const fontFamily = "Helvetica"

// canvas wraps an fpdf document with the measurement and drawing
// primitives the templates need. Coordinates are in points with the
// origin at the top-left corner of the page; text is positioned by its
// baseline.
type canvas struct {
	doc       *fpdf.Fpdf
	tr        func(string) string
	log       *zap.Logger
	formatDir string
	pageW     float64
	pageH     float64
}

// newCanvas creates an A4 portrait canvas with the first page open.
// formatDir is where background artwork is looked up.
func newCanvas(log *zap.Logger, formatDir string) *canvas {
	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	w, h := doc.GetPageSize()
	return &canvas{
		doc:       doc,
		tr:        doc.UnicodeTranslatorFromDescriptor(""),
		log:       log,
		formatDir: formatDir,
		pageW:     w,
		pageH:     h,
	}
}

func (c *canvas) setFont(style string, size float64) {
	c.doc.SetFont(fontFamily, style, size)
}

func (c *canvas) textColor(r, g, b int) {
	c.doc.SetTextColor(r, g, b)
}

// width measures s in the current font.
func (c *canvas) width(s string) float64 {
	return c.doc.GetStringWidth(c.tr(s))
}

// text draws s with its baseline at (x, y).
func (c *canvas) text(x, y float64, s string) {
	c.doc.Text(x, y, c.tr(s))
}

func (c *canvas) line(x1, y1, x2, y2, width float64) {
	c.doc.SetLineWidth(width)
	c.doc.Line(x1, y1, x2, y2)
}

// addPage closes the current page and opens a fresh one.
func (c *canvas) addPage() {
	c.doc.AddPage()
}

// contentWidth is the usable width between the page margins.
func (c *canvas) contentWidth() float64 {
	return c.pageW - marginLeft - marginRight
}

// wrap wraps text to the given width using the current font's metrics.
func (c *canvas) wrap(text string, maxWidth float64) []string {
	return wrapText(text, maxWidth, c.width)
}

// footerLimit is the lowest usable baseline before the footer band,
// with an extra safety clearance in points.
func (c *canvas) footerLimit(safety float64) float64 {
	return c.pageH - (c.pageH*footerBand + safety)
}

// background draws a full-bleed image behind the page content. A
// missing image is logged and skipped so rendering continues on a
// blank page.
func (c *canvas) background(name string) {
	path := filepath.Join(c.formatDir, name)
	if _, err := os.Stat(path); err != nil {
		c.log.Warn("background image unavailable, rendering without it",
			zap.String("path", path))
		return
	}
	c.doc.ImageOptions(path, 0, 0, c.pageW, c.pageH, false,
		fpdf.ImageOptions{ReadDpi: true}, 0, "")
}

// cursor tracks the vertical writing position on one page, measured
// down from the top edge. It is scoped to a single render call and
// never shared.
type cursor struct {
	y float64
}

// advance moves the cursor down by a multiple of the line unit.
func (cu *cursor) advance(units float64) {
	cu.y += units * lineUnit
}

// drawTextWithURL draws one already-wrapped line, rendering every
// literal occurrence of url in blue with an underline and everything
// else in black. Returns the x position after the final segment. Lines
// must be wrapped before calling; this does not wrap.
func drawTextWithURL(c *canvas, text string, x, y float64, url string) float64 {
	if url == "" || !strings.Contains(text, url) {
		c.textColor(0, 0, 0)
		c.text(x, y, text)
		return x + c.width(text)
	}

	parts := strings.Split(text, url)
	for i, part := range parts {
		if part != "" {
			c.textColor(0, 0, 0)
			c.text(x, y, part)
			x += c.width(part)
		}
		if i < len(parts)-1 {
			x = drawUnderlined(c, url, x, y)
		}
	}
	c.textColor(0, 0, 0)
	return x
}

// drawUnderlined draws s in blue with a thin underline sized to the
// measured string width. Returns the x position after the text.
func drawUnderlined(c *canvas, s string, x, y float64) float64 {
	c.textColor(0, 0, 255)
	c.text(x, y, s)
	w := c.width(s)

	c.doc.SetDrawColor(0, 0, 255)
	c.line(x, y+2, x+w, y+2, 0.5)
	c.doc.SetDrawColor(0, 0, 0)

	return x + w
}
