package assemble

import (
	"bytes"
	"fmt"
	"io"

	"codeberg.org/go-pdf/fpdf"
	"codeberg.org/go-pdf/fpdf/contrib/gofpdi"

	"github.com/babynishapappu-arch/pdf-packet-28/internal/packet"
	"github.com/babynishapappu-arch/pdf-packet-28/internal/render"
	"github.com/babynishapappu-arch/pdf-packet-28/internal/source"
)

// pieceResult is the outcome of rendering one document's piece: either the
// rendered divider+content bytes or the divider+placeholder substitute.
type pieceResult struct {
	pdf       []byte
	pageCount int // pages in the piece, divider included
	failed    bool
}

// buildDocumentPiece draws the divider and imports every page of the
// source document into a fresh piece, preserving each page's media box
// dimensions. gofpdi panics on some malformed inputs, so the import loop
// is fenced and surfaces as an error.
func buildDocumentPiece(index int, doc packet.DocumentRef, info source.Info, data []byte) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("import pages: %v", r)
		}
	}()

	pdf := render.NewDoc()
	render.Divider(pdf, index, doc.Name, doc.DocType, info.Excerpt)

	imp := gofpdi.NewImporter()
	rs := io.ReadSeeker(bytes.NewReader(data))
	for pageNum := 1; pageNum <= info.PageCount; pageNum++ {
		tpl := imp.ImportPageFromStream(pdf, &rs, pageNum, "/MediaBox")
		w, h := importedPageSize(imp, pageNum)
		pdf.AddPageFormat("P", fpdf.SizeType{Wd: w, Ht: h})
		imp.UseImportedTemplate(pdf, tpl, 0, 0, w, 0)
	}

	return render.Output(pdf)
}

// importedPageSize reads the source page's media box, falling back to
// Letter when the importer has no dimensions for it.
func importedPageSize(imp *gofpdi.Importer, pageNum int) (w, h float64) {
	if boxes, ok := imp.GetPageSizes()[pageNum]; ok {
		if mb, ok := boxes["/MediaBox"]; ok {
			w, h = mb["w"], mb["h"]
		}
	}
	if w <= 0 || h <= 0 {
		w, h = 612, 792
	}
	return w, h
}
