// Package source inspects fetched source PDFs before assembly.
package source

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	pdflib "github.com/ledongthuc/pdf"
)

const maxExcerptRunes = 280

// Info describes a source document that is ready to be appended.
type Info struct {
	PageCount int
	// Excerpt is a short plain-text sample of the first page, shown on the
	// divider. Empty when extraction is not possible.
	Excerpt string
}

// Inspect returns page count and a best-effort first-page excerpt for the
// given PDF bytes. A page-count failure means the document cannot be
// appended and is reported as an error; excerpt failures are silent.
func Inspect(data []byte) (Info, error) {
	n, err := api.PageCount(bytes.NewReader(data), nil)
	if err != nil {
		return Info{}, fmt.Errorf("page count: %w", err)
	}
	if n < 1 {
		return Info{}, fmt.Errorf("document has no pages")
	}
	return Info{
		PageCount: n,
		Excerpt:   firstPageExcerpt(data),
	}, nil
}

// firstPageExcerpt extracts plain text from page 1. The reader panics on
// some malformed files, so the extraction is fenced.
func firstPageExcerpt(data []byte) (excerpt string) {
	defer func() {
		if recover() != nil {
			excerpt = ""
		}
	}()

	reader, err := pdflib.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}
	page := reader.Page(1)
	if page.V.IsNull() {
		return ""
	}
	text, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return clampExcerpt(text)
}

// clampExcerpt collapses whitespace and trims to the excerpt budget on a
// word boundary.
func clampExcerpt(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if len([]rune(s)) <= maxExcerptRunes {
		return s
	}
	runes := []rune(s)[:maxExcerptRunes]
	cut := strings.LastIndex(string(runes), " ")
	if cut <= 0 {
		cut = len(string(runes))
	}
	return strings.TrimSpace(string(runes)[:cut])
}
