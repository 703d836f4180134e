package align

import (
	"testing"

	"github.com/bloomberg/go-testgroup"

	"github.com/clabby/difftastic.nvim/lib/difft"
)

func TestProcessFile(t *testing.T) {
	testgroup.RunInParallel(t, &ProcessFileTests{})
}

type ProcessFileTests struct {
}

func (g *ProcessFileTests) UnchangedLinesPairUp(t *testgroup.T) {
	file := &difft.File{Path: "a.txt", Status: difft.Modified}

	result := ProcessFile(file, []string{"one", "two"}, []string{"one", "two"}, nil)

	t.Len(result.Rows, 2)
	for i, row := range result.Rows {
		t.Equal(Context, row.Kind)
		t.Equal(i+1, row.Left.LineNumber)
		t.Equal(i+1, row.Right.LineNumber)
	}
}

func (g *ProcessFileTests) ChangedRegionAlignsSides(t *testgroup.T) {
	file := &difft.File{Path: "a.txt", Status: difft.Modified}

	result := ProcessFile(file,
		[]string{"keep", "old", "keep2"},
		[]string{"keep", "new", "keep2"},
		nil)

	t.Len(result.Rows, 3)
	t.Equal(Context, result.Rows[0].Kind)
	t.Equal(Changed, result.Rows[1].Kind)
	t.Equal("old", result.Rows[1].Left.Content)
	t.Equal("new", result.Rows[1].Right.Content)
	t.Equal(Context, result.Rows[2].Kind)
}

func (g *ProcessFileTests) PureAdditionHasNoLeftCells(t *testgroup.T) {
	file := &difft.File{Path: "a.txt", Status: difft.Created}

	result := ProcessFile(file, nil, []string{"one", "two"}, nil)

	t.Len(result.Rows, 2)
	for _, row := range result.Rows {
		t.Equal(Added, row.Kind)
		t.Nil(row.Left)
		t.NotNil(row.Right)
	}
}

func (g *ProcessFileTests) PureDeletionHasNoRightCells(t *testgroup.T) {
	file := &difft.File{Path: "a.txt", Status: difft.Deleted}

	result := ProcessFile(file, []string{"one"}, nil, nil)

	t.Len(result.Rows, 1)
	t.Equal(Removed, result.Rows[0].Kind)
	t.Nil(result.Rows[0].Right)
}

func (g *ProcessFileTests) UnevenChangePairsWhatItCan(t *testgroup.T) {
	file := &difft.File{Path: "a.txt", Status: difft.Modified}

	result := ProcessFile(file,
		[]string{"old1", "old2"},
		[]string{"new1"},
		nil)

	t.Len(result.Rows, 2)
	t.Equal("old1", result.Rows[0].Left.Content)
	t.Equal("new1", result.Rows[0].Right.Content)
	t.Equal(Removed, result.Rows[1].Kind)
	t.Equal("old2", result.Rows[1].Left.Content)
}

func (g *ProcessFileTests) MissingContentFallsBackToChunks(t *testgroup.T) {
	file := &difft.File{
		Path:   "a.txt",
		Status: difft.Modified,
		Chunks: [][]difft.ChunkLine{{
			{
				Lhs: &difft.Side{LineNumber: 4, Changes: []difft.Change{{Content: "foo"}}},
				Rhs: &difft.Side{LineNumber: 4, Changes: []difft.Change{{Content: "bar"}}},
			},
			{
				Rhs: &difft.Side{LineNumber: 5, Changes: []difft.Change{{Content: "baz"}}},
			},
		}},
	}

	result := ProcessFile(file, nil, nil, nil)

	t.Len(result.Rows, 2)
	t.Equal(Changed, result.Rows[0].Kind)
	t.Equal(5, result.Rows[0].Left.LineNumber)
	t.Equal("foo", result.Rows[0].Left.Content)
	t.Equal("bar", result.Rows[0].Right.Content)
	t.Equal(Added, result.Rows[1].Kind)
	t.Equal("baz", result.Rows[1].Right.Content)
}

func (g *ProcessFileTests) StatsAreAttached(t *testgroup.T) {
	file := &difft.File{Path: "a.txt", Status: difft.Modified}

	result := ProcessFile(file, []string{"x"}, []string{"x"}, &Stats{Additions: 3, Deletions: 1})

	t.Equal(3, result.Stats.Additions)
	t.Equal(1, result.Stats.Deletions)
}

func (g *ProcessFileTests) LanguageFallsBackToFilename(t *testgroup.T) {
	file := &difft.File{Path: "main.go", Status: difft.Modified}

	result := ProcessFile(file, nil, []string{"package main"}, nil)

	t.Equal("Go", result.Language)
}

func (g *ProcessFileTests) ReportedLanguageWins(t *testgroup.T) {
	file := &difft.File{Path: "main.go", Language: "Rust", Status: difft.Modified}

	result := ProcessFile(file, nil, []string{"package main"}, nil)

	t.Equal("Rust", result.Language)
}
