package render

import (
	"strconv"
	"strings"

	"codeberg.org/go-pdf/fpdf"

	"github.com/babynishapappu-arch/pdf-packet-28/internal/packet"
)

// TableOfContents draws the single contents page from the finished section
// list. Start pages were computed during accounting and are rendered as-is.
// Entries past the vertical budget are silently dropped; the ToC never
// spans a second page.
func TableOfContents(pdf *fpdf.Fpdf, sections []packet.Section) {
	pdf.AddPage()

	setInk(pdf, accentColor)
	pdf.SetFont(fontFamily, "B", tocTitleSize)
	pdf.Text(marginLeft, marginTop+24, "TABLE OF CONTENTS")
	pdf.SetDrawColor(accentColor[0], accentColor[1], accentColor[2])
	pdf.SetLineWidth(1.5)
	pdf.Line(marginLeft, marginTop+34, marginLeft+contentWidth, marginTop+34)

	y := marginTop + 66

	setInk(pdf, mutedColor)
	pdf.SetFont(fontFamily, "B", labelSize)
	pdf.Text(marginLeft, y, "SECTION")
	pdf.Text(rightAlignedX(pdf, "PAGE"), y, "PAGE")
	y += lineHeight + 4

	for i, s := range sections {
		if y+lineHeight > maxY {
			break
		}

		pageStr := strconv.Itoa(s.StartPage)

		setInk(pdf, inkColor)
		pdf.SetFont(fontFamily, "", bodySize)
		pageX := rightAlignedX(pdf, pageStr)

		label := strconv.Itoa(i+1) + ".  " + s.Name
		if s.DocType != "" {
			label += "  (" + s.DocType + ")"
		}
		nameWidth := contentWidth - pdf.GetStringWidth(pageStr) - 30
		label = fitText(pdf, label, nameWidth)
		pdf.Text(marginLeft, y, label)

		// Dot leader between the entry and its page number.
		setInk(pdf, mutedColor)
		leaderStart := marginLeft + pdf.GetStringWidth(label) + 6
		leaderEnd := pageX - 6
		if leaderEnd > leaderStart {
			dots := int((leaderEnd - leaderStart) / pdf.GetStringWidth(". "))
			if dots > 0 {
				pdf.Text(leaderStart, y, strings.Repeat(". ", dots))
			}
		}

		setInk(pdf, inkColor)
		pdf.Text(pageX, y, pageStr)
		y += lineHeight + 4
	}

	if len(sections) == 0 {
		setInk(pdf, mutedColor)
		pdf.SetFont(fontFamily, "I", bodySize)
		pdf.Text(marginLeft, y, "No documents included.")
	}
}
