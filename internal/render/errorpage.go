package render

import (
	"codeberg.org/go-pdf/fpdf"
)

// ErrorPage draws the one-page placeholder substituted for a failed item.
// It carries the failing item's name and the failure message so the gap is
// visible in the delivered packet.
func ErrorPage(pdf *fpdf.Fpdf, name, message string) {
	pdf.AddPage()

	pdf.SetDrawColor(errorColor[0], errorColor[1], errorColor[2])
	pdf.SetLineWidth(2)
	pdf.Rect(marginLeft, 150, contentWidth, 220, "D")

	setInk(pdf, errorColor)
	pdf.SetFont(fontFamily, "B", headingSize+4)
	heading := "DOCUMENT UNAVAILABLE"
	pdf.Text((pageWidth-pdf.GetStringWidth(heading))/2, 200, heading)

	setInk(pdf, inkColor)
	pdf.SetFont(fontFamily, "B", bodySize+2)
	title := fitText(pdf, name, contentWidth-48)
	pdf.Text((pageWidth-pdf.GetStringWidth(title))/2, 236, title)

	setInk(pdf, mutedColor)
	pdf.SetFont(fontFamily, "", bodySize)
	y := 268.0
	for _, line := range wrapText(pdf, message, contentWidth-48) {
		if y > 350 {
			break
		}
		pdf.Text((pageWidth-pdf.GetStringWidth(line))/2, y, line)
		y += lineHeight
	}

	pdf.SetFont(fontFamily, "I", labelSize+1)
	note := "This page stands in for the document's content. The rest of the packet is unaffected."
	pdf.Text((pageWidth-pdf.GetStringWidth(note))/2, 348, note)
}
