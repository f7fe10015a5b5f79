// Package render draws the packet's template pages. Layout constants are
// hardcoded for this one submittal template: US Letter portrait, points.
package render

import (
	"bytes"
	"strings"

	"codeberg.org/go-pdf/fpdf"
)

const (
	pageWidth  = 612.0
	pageHeight = 792.0

	marginLeft   = 54.0
	marginRight  = 54.0
	marginTop    = 54.0
	marginBottom = 60.0

	contentWidth = pageWidth - marginLeft - marginRight
	// maxY is the vertical budget: content below this line moves to the
	// next page (cover) or is dropped (contents page).
	maxY = pageHeight - marginBottom

	fontFamily = "Helvetica"

	titleSize    = 22.0
	headingSize  = 13.0
	labelSize    = 8.0
	bodySize     = 10.0
	dividerSize  = 30.0
	tocTitleSize = 18.0

	lineHeight = 15.0
	bandHeight = 96.0

	checkboxSize = 9.0
)

// Template colors (RGB).
var (
	inkColor    = [3]int{33, 37, 41}
	accentColor = [3]int{21, 67, 128}
	bandColor   = [3]int{228, 234, 242}
	ruleColor   = [3]int{168, 178, 192}
	errorColor  = [3]int{146, 43, 33}
	mutedColor  = [3]int{110, 117, 124}
)

// NewDoc returns an empty destination document configured for the template.
// Builders add their own pages; automatic page breaks are disabled because
// pagination is owned by the builders.
func NewDoc() *fpdf.Fpdf {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(false, 0)
	return pdf
}

// Output serializes the document, surfacing any error fpdf recorded while
// drawing.
func Output(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func setInk(pdf *fpdf.Fpdf, c [3]int) {
	pdf.SetTextColor(c[0], c[1], c[2])
}

// fitText trims s with an ellipsis so it fits within maxW at the current
// font settings.
func fitText(pdf *fpdf.Fpdf, s string, maxW float64) string {
	if pdf.GetStringWidth(s) <= maxW {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		if pdf.GetStringWidth(string(runes)+"...") <= maxW {
			return string(runes) + "..."
		}
	}
	return "..."
}

// wrapText word-wraps s to lines no wider than maxW at the current font
// settings. Words longer than maxW are hard-broken.
func wrapText(pdf *fpdf.Fpdf, s string, maxW float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := ""
	for _, w := range words {
		candidate := w
		if line != "" {
			candidate = line + " " + w
		}
		if pdf.GetStringWidth(candidate) <= maxW {
			line = candidate
			continue
		}
		if line != "" {
			lines = append(lines, line)
		}
		for pdf.GetStringWidth(w) > maxW {
			runes := []rune(w)
			cut := len(runes)
			for cut > 1 && pdf.GetStringWidth(string(runes[:cut])) > maxW {
				cut--
			}
			lines = append(lines, string(runes[:cut]))
			w = string(runes[cut:])
		}
		line = w
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// rightAlignedX returns the x coordinate that right-aligns s against the
// content area's right edge.
func rightAlignedX(pdf *fpdf.Fpdf, s string) float64 {
	return pageWidth - marginRight - pdf.GetStringWidth(s)
}
