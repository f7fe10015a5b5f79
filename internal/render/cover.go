package render

import (
	"fmt"
	"strings"

	"codeberg.org/go-pdf/fpdf"

	"github.com/babynishapappu-arch/pdf-packet-28/internal/packet"
)

// Cover draws the cover form onto pdf and returns the number of pages added.
// The field grid and status flags live on the first page; the document
// checklist, product line and notes share the remaining vertical budget and
// spill onto continuation pages that repeat the header band. This is the
// only builder that paginates.
func Cover(pdf *fpdf.Fpdf, form packet.FormData, docs []packet.DocumentRef) int {
	start := pdf.PageCount()

	y := coverHeader(pdf, form)
	y = coverFields(pdf, y, form)
	y = coverStatus(pdf, y, form)

	// Document checklist.
	y = coverSectionTitle(pdf, y, "Documents Included")
	pdf.SetFont(fontFamily, "", bodySize)
	setInk(pdf, inkColor)
	if len(docs) == 0 {
		pdf.Text(marginLeft, y, "None")
		y += lineHeight
	}
	for _, doc := range docs {
		if y+lineHeight > maxY {
			y = coverHeader(pdf, form)
			pdf.SetFont(fontFamily, "", bodySize)
			setInk(pdf, inkColor)
		}
		coverCheckedItem(pdf, y, doc)
		y += lineHeight
	}

	// Product line.
	if y+2*lineHeight > maxY {
		y = coverHeader(pdf, form)
	}
	y += lineHeight / 2
	pdf.SetFont(fontFamily, "B", bodySize)
	setInk(pdf, accentColor)
	product := form.ProductName
	if product == "" {
		product = "(not specified)"
	}
	pdf.Text(marginLeft, y, fitText(pdf, "Product: "+product, contentWidth))
	y += lineHeight

	// Notes, flattened from Markdown and wrapped to the content width.
	notes := markdownToLines(form.Notes)
	if len(notes) > 0 {
		if y+2*lineHeight > maxY {
			y = coverHeader(pdf, form)
		}
		y = coverSectionTitle(pdf, y, "Notes")
		pdf.SetFont(fontFamily, "", bodySize)
		setInk(pdf, inkColor)
		for _, note := range notes {
			for _, line := range wrapText(pdf, note, contentWidth) {
				if y+lineHeight > maxY {
					y = coverHeader(pdf, form)
					pdf.SetFont(fontFamily, "", bodySize)
					setInk(pdf, inkColor)
				}
				pdf.Text(marginLeft, y, line)
				y += lineHeight
			}
		}
	}

	return pdf.PageCount() - start
}

// coverHeader starts a new page, draws the header band and returns the y
// where content resumes.
func coverHeader(pdf *fpdf.Fpdf, form packet.FormData) float64 {
	pdf.AddPage()

	pdf.SetFillColor(bandColor[0], bandColor[1], bandColor[2])
	pdf.Rect(0, 0, pageWidth, bandHeight, "F")

	setInk(pdf, accentColor)
	pdf.SetFont(fontFamily, "B", titleSize)
	pdf.Text(marginLeft, 52, "SUBMITTAL PACKET")

	setInk(pdf, mutedColor)
	pdf.SetFont(fontFamily, "", bodySize)
	sub := form.ProjectName
	if form.ProjectNumber != "" {
		sub = fmt.Sprintf("%s  /  No. %s", sub, form.ProjectNumber)
	}
	pdf.Text(marginLeft, 74, fitText(pdf, sub, contentWidth))

	pdf.SetDrawColor(accentColor[0], accentColor[1], accentColor[2])
	pdf.SetLineWidth(2)
	pdf.Line(0, bandHeight, pageWidth, bandHeight)

	return bandHeight + 36
}

// coverFields draws the project/contact grid in two columns.
func coverFields(pdf *fpdf.Fpdf, y float64, form packet.FormData) float64 {
	fields := []struct {
		label, value string
	}{
		{"Project", form.ProjectName},
		{"Project No.", form.ProjectNumber},
		{"Contractor", form.Contractor},
		{"Engineer", form.Engineer},
		{"Submitted By", form.SubmittedBy},
		{"Date", form.Date},
	}

	colWidth := contentWidth / 2
	rowHeight := 2*lineHeight + 4
	for i, f := range fields {
		x := marginLeft + float64(i%2)*colWidth
		rowY := y + float64(i/2)*rowHeight

		setInk(pdf, mutedColor)
		pdf.SetFont(fontFamily, "B", labelSize)
		pdf.Text(x, rowY, strings.ToUpper(f.label))

		setInk(pdf, inkColor)
		pdf.SetFont(fontFamily, "", bodySize)
		value := f.value
		if value == "" {
			value = "-"
		}
		pdf.Text(x, rowY+lineHeight-2, fitText(pdf, value, colWidth-18))

		pdf.SetDrawColor(ruleColor[0], ruleColor[1], ruleColor[2])
		pdf.SetLineWidth(0.5)
		pdf.Line(x, rowY+lineHeight+2, x+colWidth-18, rowY+lineHeight+2)
	}

	rows := (len(fields) + 1) / 2
	return y + float64(rows)*rowHeight + lineHeight/2
}

// coverStatus draws the four status checkboxes in one row.
func coverStatus(pdf *fpdf.Fpdf, y float64, form packet.FormData) float64 {
	flags := []struct {
		label string
		set   bool
	}{
		{"For Approval", form.ForApproval},
		{"For Record", form.ForRecord},
		{"Approved as Noted", form.ApprovedAsNoted},
		{"Revise and Resubmit", form.ReviseResubmit},
	}

	pdf.SetFont(fontFamily, "", labelSize)
	x := marginLeft
	for _, f := range flags {
		drawCheckbox(pdf, x, y-checkboxSize+1, f.set)
		setInk(pdf, inkColor)
		pdf.Text(x+checkboxSize+6, y, f.label)
		x += checkboxSize + 12 + pdf.GetStringWidth(f.label) + 18
	}
	return y + 2*lineHeight
}

func coverSectionTitle(pdf *fpdf.Fpdf, y float64, title string) float64 {
	setInk(pdf, accentColor)
	pdf.SetFont(fontFamily, "B", headingSize)
	pdf.Text(marginLeft, y, title)
	pdf.SetDrawColor(ruleColor[0], ruleColor[1], ruleColor[2])
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, y+5, marginLeft+contentWidth, y+5)
	return y + lineHeight + 6
}

// coverCheckedItem draws one checked checklist row for a selected document.
func coverCheckedItem(pdf *fpdf.Fpdf, y float64, doc packet.DocumentRef) {
	drawCheckbox(pdf, marginLeft, y-checkboxSize+1, true)
	setInk(pdf, inkColor)
	label := doc.Name
	if doc.DocType != "" {
		label = fmt.Sprintf("%s  (%s)", doc.Name, doc.DocType)
	}
	pdf.Text(marginLeft+checkboxSize+8, y, fitText(pdf, label, contentWidth-checkboxSize-8))
}

func drawCheckbox(pdf *fpdf.Fpdf, x, y float64, checked bool) {
	pdf.SetDrawColor(inkColor[0], inkColor[1], inkColor[2])
	pdf.SetLineWidth(0.8)
	pdf.Rect(x, y, checkboxSize, checkboxSize, "D")
	if checked {
		pdf.Line(x+2, y+2, x+checkboxSize-2, y+checkboxSize-2)
		pdf.Line(x+checkboxSize-2, y+2, x+2, y+checkboxSize-2)
	}
}
