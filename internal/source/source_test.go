package source

import (
	"bytes"
	"strings"
	"testing"

	"codeberg.org/go-pdf/fpdf"
)

func makePDF(t *testing.T, pages int, firstPageText string) []byte {
	t.Helper()
	pdf := fpdf.New("P", "pt", "Letter", "")
	for i := 0; i < pages; i++ {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "", 12)
		if i == 0 {
			pdf.Text(72, 100, firstPageText)
		} else {
			pdf.Text(72, 100, "continuation")
		}
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("build test pdf: %v", err)
	}
	return buf.Bytes()
}

func TestInspect(t *testing.T) {
	data := makePDF(t, 3, "Centrifugal pump performance ratings")

	info, err := Inspect(data)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if info.PageCount != 3 {
		t.Errorf("expected 3 pages, got %d", info.PageCount)
	}
	if !strings.Contains(info.Excerpt, "Centrifugal pump") {
		t.Errorf("expected excerpt from first page, got %q", info.Excerpt)
	}
}

func TestInspect_InvalidData(t *testing.T) {
	if _, err := Inspect([]byte("not a pdf at all")); err == nil {
		t.Fatal("expected error for invalid data")
	}
	if _, err := Inspect(nil); err == nil {
		t.Fatal("expected error for empty data")
	}
}

func TestClampExcerpt(t *testing.T) {
	if got := clampExcerpt("  a \n b\t c  "); got != "a b c" {
		t.Errorf("expected collapsed whitespace, got %q", got)
	}

	long := strings.Repeat("word ", 200)
	got := clampExcerpt(long)
	if len([]rune(got)) > maxExcerptRunes {
		t.Errorf("excerpt too long: %d runes", len([]rune(got)))
	}
	if strings.HasSuffix(got, " ") {
		t.Errorf("expected trimmed excerpt, got %q", got)
	}
}
