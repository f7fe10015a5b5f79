// Package packet defines the submittal packet data model.
package packet

import (
	"sort"
	"time"
)

// FormData holds the cover form fields. Inputs are immutable during assembly.
type FormData struct {
	ProjectName   string `json:"project_name"`
	ProjectNumber string `json:"project_number"`
	Contractor    string `json:"contractor"`
	Engineer      string `json:"engineer"`
	SubmittedBy   string `json:"submitted_by"`
	Date          string `json:"date"`

	ForApproval     bool `json:"for_approval"`
	ForRecord       bool `json:"for_record"`
	ApprovedAsNoted bool `json:"approved_as_noted"`
	ReviseResubmit  bool `json:"revise_resubmit"`

	ProductName        string `json:"product_name"`
	ProductDescription string `json:"product_description"`

	// Notes is free-form Markdown shown on the cover.
	Notes string `json:"notes"`
}

// DocumentRef points at a stored source document plus the user's
// inclusion choice and ordering.
type DocumentRef struct {
	Name        string `json:"name"`
	DocType     string `json:"doc_type"`
	StoragePath string `json:"storage_path"`
	Include     bool   `json:"include"`
	SortIndex   int    `json:"sort_index"`
}

// Selected returns the refs chosen for inclusion, ordered by SortIndex.
// The sort is stable so equal indices keep their submitted order.
func Selected(refs []DocumentRef) []DocumentRef {
	var out []DocumentRef
	for _, r := range refs {
		if r.Include {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SortIndex < out[j].SortIndex
	})
	return out
}

// Section is the derived record driving the table of contents and the
// page-number overlay. PageCount includes the divider page.
type Section struct {
	Name      string `json:"name"`
	DocType   string `json:"doc_type"`
	StartPage int    `json:"start_page"`
	PageCount int    `json:"page_count"`
}

// Packet is one assembled output document.
type Packet struct {
	ID        string    `json:"packet_id"`
	PDF       []byte    `json:"-"`
	Sections  []Section `json:"sections"`
	PageCount int       `json:"page_count"`
	CreatedAt time.Time `json:"created_at"`
}
