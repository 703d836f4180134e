package difft

import "encoding/json"

// Status of one file in a difftastic listing.
type Status int

const (
	Unchanged Status = iota
	Created
	Deleted
	Modified
)

func (s Status) String() string {
	switch s {
	case Unchanged:
		return "unchanged"
	case Created:
		return "created"
	case Deleted:
		return "deleted"
	default:
		return "changed"
	}
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}

	switch text {
	case "unchanged":
		*s = Unchanged
	case "created":
		*s = Created
	case "deleted":
		*s = Deleted
	default:
		*s = Modified
	}
	return nil
}

// File is one entry of difftastic's JSON output. Path and Status may be
// rewritten later during rename reconciliation; everything else is read-only
// input for the aligner.
type File struct {
	Path     string        `json:"path"`
	Language string        `json:"language"`
	Status   Status        `json:"status"`
	Chunks   [][]ChunkLine `json:"chunks"`
}

// ChunkLine pairs the left and right side of one changed line. Either side
// may be missing for pure additions or deletions.
type ChunkLine struct {
	Lhs *Side `json:"lhs"`
	Rhs *Side `json:"rhs"`
}

type Side struct {
	LineNumber int      `json:"line_number"`
	Changes    []Change `json:"changes"`
}

// Change is one highlighted span inside a line.
type Change struct {
	Start     int    `json:"start"`
	End       int    `json:"end"`
	Content   string `json:"content"`
	Highlight string `json:"highlight"`
}
