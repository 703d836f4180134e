package align

import (
	"encoding/json"

	"github.com/clabby/difftastic.nvim/lib/difft"
)

// DisplayFile is one file ready for side-by-side rendering.
type DisplayFile struct {
	Path      string       `json:"path"`
	Language  string       `json:"language,omitempty"`
	Status    difft.Status `json:"status"`
	MovedFrom string       `json:"moved_from,omitempty"`
	Stats     *Stats       `json:"stats,omitempty"`
	Rows      []Row        `json:"rows"`
}

type Stats struct {
	Additions int `json:"additions"`
	Deletions int `json:"deletions"`
}

// Row is one display line: a cell per side, either of which may be empty.
type Row struct {
	Kind  RowKind `json:"kind"`
	Left  *Cell   `json:"left,omitempty"`
	Right *Cell   `json:"right,omitempty"`
}

type Cell struct {
	LineNumber int    `json:"line_number"`
	Content    string `json:"content"`
}

type RowKind int

const (
	Context RowKind = iota
	Added
	Removed
	Changed
)

func (k RowKind) String() string {
	switch k {
	case Added:
		return "add"
	case Removed:
		return "remove"
	case Changed:
		return "change"
	default:
		return "context"
	}
}

func (k RowKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}
