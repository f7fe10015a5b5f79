package assemble

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// mergePieces concatenates the rendered pieces, in order, into one
// document. The piece order places the table of contents into its reserved
// slot; since every start page was computed against that slot, the merge
// renumbers nothing.
func mergePieces(pieces [][]byte) ([]byte, error) {
	rsc := make([]io.ReadSeeker, 0, len(pieces))
	for i, p := range pieces {
		if len(p) == 0 {
			return nil, fmt.Errorf("piece %d is empty", i)
		}
		rsc = append(rsc, bytes.NewReader(p))
	}

	var buf bytes.Buffer
	if err := api.MergeRaw(rsc, &buf, false, nil); err != nil {
		return nil, fmt.Errorf("merge: %w", err)
	}
	return buf.Bytes(), nil
}
