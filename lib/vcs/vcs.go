package vcs

import (
	"github.com/clabby/difftastic.nvim/lib/execs"
)

// Kind selects which backend handles a call.
type Kind int

const (
	Git Kind = iota
	Jj
)

func (k Kind) String() string {
	if k == Jj {
		return "jj"
	}
	return "git"
}

// ScopeKind tags what is being compared.
type ScopeKind int

const (
	// ScopeRange compares two revisions, given as a backend range expression.
	ScopeRange ScopeKind = iota
	// ScopeUnstaged compares the working tree against the index (git) or the
	// working copy against @ (jj).
	ScopeUnstaged
	// ScopeStaged compares the index against HEAD (git). jj has no staging
	// area, so it degenerates to the current revision's own change.
	ScopeStaged
)

// Scope is the diff comparison being requested. Built once per call and read
// by every resolver; never mutated.
type Scope struct {
	Kind  ScopeKind
	Range string
}

func RangeScope(r string) Scope {
	return Scope{Kind: ScopeRange, Range: r}
}

var (
	Unstaged = Scope{Kind: ScopeUnstaged}
	Staged   = Scope{Kind: ScopeStaged}
)

// Stat holds per-file line counts from the numeric diff.
type Stat struct {
	Additions int
	Deletions int
}

// FileStats maps a file path, as reported by the stats command, to its
// counts. Built once per call and read-only afterwards.
type FileStats map[string]Stat

type sourceKind int

const (
	sourceRevision sourceKind = iota
	sourceIndex
	sourceWorktree
)

// Source is one side's content address: a revision, the staging area, or the
// working tree.
type Source struct {
	kind sourceKind
	rev  string
}

func RevisionSource(rev string) Source {
	return Source{kind: sourceRevision, rev: rev}
}

func IndexSource() Source {
	return Source{kind: sourceIndex}
}

func WorktreeSource() Source {
	return Source{kind: sourceWorktree}
}

func (s Source) Revision() string {
	return s.rev
}

// Resolved holds the old/new content addresses for a scope.
type Resolved struct {
	Old Source
	New Source
}

// Backend is the process capability for one VCS: each method spawns external
// commands and nothing else, so tests substitute a Runner returning canned
// text. The kind is selected once at the facade boundary; no helper
// re-dispatches on it.
type Backend interface {
	// DiffOutput runs the external diff tool over the scope and returns its
	// raw structured output. Failures here are fatal for the whole call.
	DiffOutput(scope Scope) (string, error)

	// Resolve turns the scope into old/new content sources for per-file
	// lookups.
	Resolve(scope Scope) Resolved

	// Content returns a file's lines at a source. A failed command or a file
	// absent at that revision both collapse to nil: newly added or removed
	// files legitimately have no content on one side.
	Content(src Source, path string) []string

	// Stats returns per-file addition/deletion counts for the scope.
	// Best-effort: any failure yields an empty map.
	Stats(scope Scope) FileStats

	// Renames returns a new-path to old-path map for the scope. Best-effort.
	Renames(scope Scope) map[string]string
}

// NewBackend builds the backend for a kind, rooted at dir.
func NewBackend(kind Kind, runner execs.Runner, dir string) Backend {
	if kind == Jj {
		return newJjBackend(runner, dir)
	}
	return newGitBackend(runner, dir)
}

// difftEnv asks difftastic for structured output. DFT_UNSTABLE is required
// because the JSON format is still gated as unstable upstream.
var difftEnv = map[string]string{
	"DFT_DISPLAY":  "json",
	"DFT_UNSTABLE": "yes",
}
