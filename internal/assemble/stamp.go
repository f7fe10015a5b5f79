package assemble

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/babynishapappu-arch/pdf-packet-28/internal/packet"
)

// numberStampDesc positions the page number at the bottom center, just
// inside the bottom margin, in the template's muted gray. %p expands to
// the page's number within the stamped document.
const numberStampDesc = "fontname:Helvetica, points:9, scalefactor:1 abs, position:bc, offset:0 24, fillcolor:#6e757c, rotation:0, opacity:1"

// stampPageNumbers overlays the running page number onto the finished
// document: every front-matter page, the contents page, and each section
// divider. Pages copied in from source documents are never stamped; their
// content and internal numbering stay untouched.
func stampPageNumbers(doc []byte, frontPages int, sections []packet.Section) ([]byte, error) {
	wm, err := api.TextWatermark("%p", numberStampDesc, true, false, types.POINTS)
	if err != nil {
		return nil, fmt.Errorf("build stamp: %w", err)
	}

	var buf bytes.Buffer
	if err := api.AddWatermarks(bytes.NewReader(doc), &buf, numberedPages(frontPages, sections), wm, nil); err != nil {
		return nil, fmt.Errorf("add stamps: %w", err)
	}
	return buf.Bytes(), nil
}

// numberedPages walks the assembled page sequence and selects the pages
// that receive a number. After numbering a divider the cursor jumps by the
// section's full page count, skipping the copied body pages.
func numberedPages(frontPages int, sections []packet.Section) []string {
	pages := make([]string, 0, frontPages+1+len(sections))
	for p := 1; p <= frontPages; p++ {
		pages = append(pages, strconv.Itoa(p))
	}
	// The contents page sits in the slot right after the front matter.
	pages = append(pages, strconv.Itoa(frontPages+1))

	cursor := frontPages + 2
	for _, s := range sections {
		pages = append(pages, strconv.Itoa(cursor))
		cursor += s.PageCount
	}
	return pages
}
