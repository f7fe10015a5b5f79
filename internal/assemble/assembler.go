// Package assemble builds submittal packets from form data and stored
// source documents.
//
// Assembly is a single sequential flow: page numbers and section records
// depend on everything rendered before them, so documents are processed
// strictly in order. Each top-level step is isolated; a failing step is
// logged and replaced with a one-page placeholder so the packet is always
// a complete, valid document.
package assemble

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/babynishapappu-arch/pdf-packet-28/internal/packet"
	"github.com/babynishapappu-arch/pdf-packet-28/internal/render"
	"github.com/babynishapappu-arch/pdf-packet-28/internal/source"
)

// SignedURLProvider mints a time-limited URL for a stored file.
type SignedURLProvider interface {
	SignedURL(ctx context.Context, path string) (string, error)
}

// ByteFetcher retrieves raw bytes for a URL.
type ByteFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Assembler produces packets. It holds no per-run state; all accounting is
// threaded through Assemble.
type Assembler struct {
	store SignedURLProvider
	fetch ByteFetcher
	log   *slog.Logger
}

func New(store SignedURLProvider, fetch ByteFetcher, log *slog.Logger) *Assembler {
	return &Assembler{store: store, fetch: fetch, log: log}
}

// Result is one fully assembled packet.
type Result struct {
	PDF       []byte
	Sections  []packet.Section
	PageCount int
}

// Assemble renders the packet for the given form and document selection.
//
// The page accounting runs ahead of physical assembly: one slot right
// after the front matter is reserved for the table of contents, document
// numbering starts two past that slot index (one for the ToC page itself,
// one because page numbers are 1-based), and each document advances the
// counter by its divider plus its fetched page count. The ToC is rendered
// from the finished section list and merged into the reserved slot, so
// nothing computed earlier ever shifts.
func (a *Assembler) Assemble(ctx context.Context, form packet.FormData, refs []packet.DocumentRef) (*Result, error) {
	docs := packet.Selected(refs)

	cover, coverPages := a.renderCover(form, docs)
	product := a.renderProductInfo(form)
	frontPages := coverPages + 1

	reservedSlot := frontPages
	counter := reservedSlot + 2

	sections := make([]packet.Section, 0, len(docs))
	pieces := make([][]byte, 0, len(docs)+3)
	pieces = append(pieces, cover, product, nil) // nil = reserved ToC slot

	failures := 0
	for i, doc := range docs {
		res := a.renderDocument(ctx, i+1, doc)
		if res.failed {
			failures++
		}
		sections = append(sections, packet.Section{
			Name:      doc.Name,
			DocType:   doc.DocType,
			StartPage: counter,
			PageCount: res.pageCount,
		})
		counter += res.pageCount
		pieces = append(pieces, res.pdf)
	}

	pieces[2] = a.renderTableOfContents(sections)

	merged, err := mergePieces(pieces)
	if err != nil {
		return nil, fmt.Errorf("merge packet: %w", err)
	}

	stamped, err := stampPageNumbers(merged, frontPages, sections)
	if err != nil {
		return nil, fmt.Errorf("stamp page numbers: %w", err)
	}

	a.log.Info("packet assembled",
		"project", form.ProjectName,
		"documents", len(docs),
		"failed", failures,
		"pages", counter-1,
	)

	return &Result{
		PDF:       stamped,
		Sections:  sections,
		PageCount: counter - 1,
	}, nil
}

// renderCover returns the cover piece and its page count, substituting a
// placeholder page on render failure.
func (a *Assembler) renderCover(form packet.FormData, docs []packet.DocumentRef) ([]byte, int) {
	pdf := render.NewDoc()
	pages := render.Cover(pdf, form, docs)
	b, err := render.Output(pdf)
	if err != nil {
		a.log.Error("cover render failed", "error", err)
		return a.placeholder("Cover Page", err), 1
	}
	return b, pages
}

func (a *Assembler) renderProductInfo(form packet.FormData) []byte {
	pdf := render.NewDoc()
	render.ProductInfo(pdf, form)
	b, err := render.Output(pdf)
	if err != nil {
		a.log.Error("product info render failed", "error", err)
		return a.placeholder("Product Information", err)
	}
	return b
}

func (a *Assembler) renderTableOfContents(sections []packet.Section) []byte {
	pdf := render.NewDoc()
	render.TableOfContents(pdf, sections)
	b, err := render.Output(pdf)
	if err != nil {
		a.log.Error("table of contents render failed", "error", err)
		return a.placeholder("Table of Contents", err)
	}
	return b
}

// renderDocument produces the piece for one selected document: its divider
// followed by the source pages, or by a single error page when the
// document cannot be obtained. Numbering continuity is preserved either
// way.
func (a *Assembler) renderDocument(ctx context.Context, index int, doc packet.DocumentRef) pieceResult {
	data, info, err := a.fetchDocument(ctx, doc)
	if err != nil {
		a.log.Error("document unavailable", "name", doc.Name, "path", doc.StoragePath, "error", err)
		return a.failedPiece(index, doc, err)
	}

	b, err := buildDocumentPiece(index, doc, info, data)
	if err != nil {
		a.log.Error("document import failed", "name", doc.Name, "error", err)
		return a.failedPiece(index, doc, err)
	}

	a.log.Info("document appended", "name", doc.Name, "pages", info.PageCount)
	return pieceResult{pdf: b, pageCount: 1 + info.PageCount}
}

// fetchDocument resolves a signed URL, downloads the bytes and inspects
// them. The URL is minted per call and never reused.
func (a *Assembler) fetchDocument(ctx context.Context, doc packet.DocumentRef) ([]byte, source.Info, error) {
	url, err := a.store.SignedURL(ctx, doc.StoragePath)
	if err != nil {
		return nil, source.Info{}, fmt.Errorf("unable to generate URL: %w", err)
	}
	data, err := a.fetch.Fetch(ctx, url)
	if err != nil {
		return nil, source.Info{}, fmt.Errorf("fetch document: %w", err)
	}
	info, err := source.Inspect(data)
	if err != nil {
		return nil, source.Info{}, fmt.Errorf("read document: %w", err)
	}
	return data, info, nil
}

// failedPiece renders divider + error page for a document that could not
// be included. It occupies exactly two pages so later numbering matches a
// one-page item after its divider.
func (a *Assembler) failedPiece(index int, doc packet.DocumentRef, cause error) pieceResult {
	pdf := render.NewDoc()
	render.Divider(pdf, index, doc.Name, doc.DocType, "")
	render.ErrorPage(pdf, doc.Name, cause.Error())
	b, err := render.Output(pdf)
	if err != nil {
		a.log.Error("placeholder render failed", "name", doc.Name, "error", err)
		b = blankPages(2)
	}
	return pieceResult{pdf: b, pageCount: 2, failed: true}
}

// placeholder renders a standalone one-page error placeholder.
func (a *Assembler) placeholder(name string, cause error) []byte {
	pdf := render.NewDoc()
	render.ErrorPage(pdf, name, cause.Error())
	b, err := render.Output(pdf)
	if err != nil {
		a.log.Error("placeholder render failed", "name", name, "error", err)
		return blankPages(1)
	}
	return b
}

// blankPages is the last-resort substitute when even a placeholder fails to
// render: n empty pages, so the merge input stays non-empty and the page
// accounting holds. Serializing empty pages with a core font cannot fail.
func blankPages(n int) []byte {
	pdf := render.NewDoc()
	for i := 0; i < n; i++ {
		pdf.AddPage()
	}
	b, _ := render.Output(pdf)
	return b
}
