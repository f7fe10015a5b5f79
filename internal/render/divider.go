package render

import (
	"fmt"
	"strings"

	"codeberg.org/go-pdf/fpdf"
)

// Divider draws one full section divider page: section number, document
// name and type, and an optional first-page excerpt near the bottom.
func Divider(pdf *fpdf.Fpdf, index int, name, docType, excerpt string) {
	pdf.AddPage()

	// Left accent bar.
	pdf.SetFillColor(accentColor[0], accentColor[1], accentColor[2])
	pdf.Rect(0, 0, 18, pageHeight, "F")

	centerY := pageHeight / 2

	setInk(pdf, mutedColor)
	pdf.SetFont(fontFamily, "B", headingSize)
	label := fmt.Sprintf("SECTION %d", index)
	pdf.Text((pageWidth-pdf.GetStringWidth(label))/2, centerY-72, label)

	setInk(pdf, inkColor)
	pdf.SetFont(fontFamily, "B", dividerSize)
	title := fitText(pdf, name, contentWidth)
	pdf.Text((pageWidth-pdf.GetStringWidth(title))/2, centerY-24, title)

	if docType != "" {
		setInk(pdf, mutedColor)
		pdf.SetFont(fontFamily, "", headingSize)
		dt := strings.ToUpper(docType)
		pdf.Text((pageWidth-pdf.GetStringWidth(dt))/2, centerY+8, dt)
	}

	pdf.SetDrawColor(ruleColor[0], ruleColor[1], ruleColor[2])
	pdf.SetLineWidth(1)
	pdf.Line(pageWidth/2-90, centerY+32, pageWidth/2+90, centerY+32)

	if excerpt != "" {
		setInk(pdf, mutedColor)
		pdf.SetFont(fontFamily, "I", labelSize+1)
		y := pageHeight - 150
		for _, line := range wrapText(pdf, excerpt, contentWidth-72) {
			if y+lineHeight > maxY {
				break
			}
			pdf.Text((pageWidth-pdf.GetStringWidth(line))/2, y, line)
			y += lineHeight - 3
		}
	}
}
