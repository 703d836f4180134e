package diff

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/bloomberg/go-testgroup"
	"github.com/samber/lo"

	"github.com/clabby/difftastic.nvim/lib/align"
	"github.com/clabby/difftastic.nvim/lib/difft"
	"github.com/clabby/difftastic.nvim/lib/vcs"
)

// fakeBackend serves canned listings and content without any subprocesses.
type fakeBackend struct {
	output  string
	failure error
	stats   vcs.FileStats
	renames map[string]string
	content map[string][]string
}

func (b *fakeBackend) DiffOutput(scope vcs.Scope) (string, error) {
	return b.output, b.failure
}

func (b *fakeBackend) Resolve(scope vcs.Scope) vcs.Resolved {
	return vcs.Resolved{Old: vcs.RevisionSource("old"), New: vcs.RevisionSource("new")}
}

func (b *fakeBackend) Content(src vcs.Source, path string) []string {
	return b.content[src.Revision()+":"+path]
}

func (b *fakeBackend) Stats(scope vcs.Scope) vcs.FileStats {
	return b.stats
}

func (b *fakeBackend) Renames(scope vcs.Scope) map[string]string {
	return b.renames
}

func listing(files ...map[string]any) string {
	data, err := json.Marshal(files)
	if err != nil {
		panic(err)
	}
	return string(data)
}

func entry(path, status string) map[string]any {
	return map[string]any{"path": path, "status": status, "chunks": []any{}}
}

func newTestEngine(t *testgroup.T, backend vcs.Backend, opts Options) *Engine {
	engine, err := NewEngineWithBackend(backend, opts)
	t.NoError(err)
	return engine
}

func TestEngine(t *testing.T) {
	testgroup.RunInParallel(t, &EngineTests{})
}

type EngineTests struct {
}

func (g *EngineTests) ListingFailureIsFatal(t *testgroup.T) {
	backend := &fakeBackend{failure: fmt.Errorf("git diff: boom")}
	engine := newTestEngine(t, backend, Options{})

	_, err := engine.Range("main..feature")

	t.NotNil(err)
}

func (g *EngineTests) UnparsableListingIsFatal(t *testgroup.T) {
	backend := &fakeBackend{output: "fatal: not a repository"}
	engine := newTestEngine(t, backend, Options{})

	_, err := engine.Range("main..feature")

	t.NotNil(err)
}

func (g *EngineTests) ArrowPathBecomesCreatedWithHistory(t *testgroup.T) {
	backend := &fakeBackend{
		output: listing(
			entry("x.rs", "changed"),
			entry("old.rs => new.rs", "changed"),
		),
		content: map[string][]string{
			"old:x.rs":   {"a"},
			"new:x.rs":   {"b"},
			"old:old.rs": {"content"},
			"new:new.rs": {"content"},
		},
	}
	engine := newTestEngine(t, backend, Options{})

	result, err := engine.Range("main..feature")

	t.NoError(err)
	t.Len(result.Files, 2)

	t.Equal("x.rs", result.Files[0].Path)
	t.Equal("", result.Files[0].MovedFrom)

	moved := result.Files[1]
	t.Equal("new.rs", moved.Path)
	t.Equal("old.rs", moved.MovedFrom)
	t.Equal(difft.Created, moved.Status)
}

func (g *EngineTests) RenameMapSuppressesPhantomDelete(t *testgroup.T) {
	backend := &fakeBackend{
		output: listing(
			entry("a.txt", "created"),
			entry("old.txt", "deleted"),
		),
		renames: map[string]string{"a.txt": "old.txt"},
		content: map[string][]string{
			"old:old.txt": {"content"},
			"new:a.txt":   {"content"},
		},
	}
	engine := newTestEngine(t, backend, Options{})

	result, err := engine.Range("main..feature")

	t.NoError(err)
	t.Len(result.Files, 1)
	t.Equal("a.txt", result.Files[0].Path)
	t.Equal("old.txt", result.Files[0].MovedFrom)
	t.Equal(difft.Created, result.Files[0].Status)
}

func (g *EngineTests) UnrelatedDeleteSurvivesReconciliation(t *testgroup.T) {
	backend := &fakeBackend{
		output: listing(
			entry("a.txt", "created"),
			entry("gone.txt", "deleted"),
		),
		renames: map[string]string{"a.txt": "old.txt"},
	}
	engine := newTestEngine(t, backend, Options{})

	result, err := engine.Range("main..feature")

	t.NoError(err)
	t.Equal([]string{"a.txt", "gone.txt"}, paths(result))
}

func (g *EngineTests) OutputPreservesListingOrder(t *testgroup.T) {
	var entries []map[string]any
	var want []string
	for i := 0; i < 64; i++ {
		path := fmt.Sprintf("dir/file%03d.txt", i)
		entries = append(entries, entry(path, "changed"))
		want = append(want, path)
	}

	backend := &fakeBackend{output: listing(entries...)}
	engine := newTestEngine(t, backend, Options{Routines: 8})

	result, err := engine.Range("main..feature")

	t.NoError(err)
	t.Equal(want, paths(result))
}

func (g *EngineTests) StatsMatchAcrossRenameEncodings(t *testgroup.T) {
	backend := &fakeBackend{
		output: listing(entry("src/old.rs => src/new.rs", "changed")),
		stats: vcs.FileStats{
			"src/{old.rs => new.rs}": {Additions: 7, Deletions: 2},
		},
	}
	engine := newTestEngine(t, backend, Options{})

	result, err := engine.Range("main..feature")

	t.NoError(err)
	t.Len(result.Files, 1)
	t.NotNil(result.Files[0].Stats)
	t.Equal(7, result.Files[0].Stats.Additions)
	t.Equal(2, result.Files[0].Stats.Deletions)
}

func (g *EngineTests) IncludeFilterKeepsOnlyMatches(t *testgroup.T) {
	backend := &fakeBackend{
		output: listing(
			entry("a.go", "changed"),
			entry("b.txt", "changed"),
			entry("pkg/c.go", "changed"),
		),
	}
	engine := newTestEngine(t, backend, Options{Include: []string{"**/*.go", "*.go"}})

	result, err := engine.Range("main..feature")

	t.NoError(err)
	t.Equal([]string{"a.go", "pkg/c.go"}, paths(result))
}

func (g *EngineTests) InvalidFilterFailsUpFront(t *testgroup.T) {
	_, err := NewEngineWithBackend(&fakeBackend{}, Options{Include: []string{"[unclosed"}})

	t.NotNil(err)
}

func (g *EngineTests) MissingEnrichmentStillReturnsFiles(t *testgroup.T) {
	backend := &fakeBackend{
		output: listing(entry("a.txt", "changed")),
	}
	engine := newTestEngine(t, backend, Options{})

	result, err := engine.Range("main..feature")

	t.NoError(err)
	t.Len(result.Files, 1)
	t.Nil(result.Files[0].Stats)
	t.Empty(result.Files[0].Rows)
}

func paths(result *Result) []string {
	return lo.Map(result.Files, func(f *align.DisplayFile, _ int) string {
		return f.Path
	})
}
