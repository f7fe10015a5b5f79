package render

import (
	"codeberg.org/go-pdf/fpdf"

	"github.com/babynishapappu-arch/pdf-packet-28/internal/packet"
)

// Fixed boilerplate for the product information page.
var productBoilerplate = []string{
	"This product information sheet is part of the submittal packet and reflects",
	"the manufacturer data available at the time of submission. Refer to the",
	"attached source documents for authoritative specifications, ratings and",
	"installation requirements.",
}

// ProductInfo draws the fixed single product information page. Content that
// does not fit the page is clipped; this builder never paginates.
func ProductInfo(pdf *fpdf.Fpdf, form packet.FormData) {
	pdf.AddPage()

	pdf.SetFillColor(bandColor[0], bandColor[1], bandColor[2])
	pdf.Rect(0, 0, pageWidth, bandHeight, "F")
	setInk(pdf, accentColor)
	pdf.SetFont(fontFamily, "B", titleSize)
	pdf.Text(marginLeft, 52, "PRODUCT INFORMATION")
	pdf.SetDrawColor(accentColor[0], accentColor[1], accentColor[2])
	pdf.SetLineWidth(2)
	pdf.Line(0, bandHeight, pageWidth, bandHeight)

	y := bandHeight + 48

	name := form.ProductName
	if name == "" {
		name = "(not specified)"
	}
	setInk(pdf, inkColor)
	pdf.SetFont(fontFamily, "B", headingSize+4)
	pdf.Text(marginLeft, y, fitText(pdf, name, contentWidth))
	y += 2 * lineHeight

	if form.ProductDescription != "" {
		pdf.SetFont(fontFamily, "", bodySize)
		for _, line := range wrapText(pdf, form.ProductDescription, contentWidth) {
			if y+lineHeight > maxY {
				break
			}
			pdf.Text(marginLeft, y, line)
			y += lineHeight
		}
		y += lineHeight
	}

	setInk(pdf, mutedColor)
	pdf.SetFont(fontFamily, "I", labelSize+1)
	for _, line := range productBoilerplate {
		if y+lineHeight > maxY {
			break
		}
		pdf.Text(marginLeft, y, line)
		y += lineHeight - 3
	}
}
