package diff

import (
	"github.com/samber/lo"
	"github.com/schollz/progressbar/v3"

	"github.com/clabby/difftastic.nvim/lib/align"
	"github.com/clabby/difftastic.nvim/lib/consoles"
	"github.com/clabby/difftastic.nvim/lib/difft"
	"github.com/clabby/difftastic.nvim/lib/execs"
	"github.com/clabby/difftastic.nvim/lib/filters"
	"github.com/clabby/difftastic.nvim/lib/utils"
	"github.com/clabby/difftastic.nvim/lib/vcs"
)

type Options struct {
	// Dir is where backend commands run; empty means the current directory.
	Dir string
	// Include/Exclude are doublestar glob rules applied to the final list.
	Include []string
	Exclude []string
	// Progress draws a bar over the per-file assembly phase.
	Progress bool
	// Routines caps the assembly worker pool; 0 means one per CPU.
	Routines int

	Console consoles.Console
}

// Result is what the host binding receives: the ordered file list, ready for
// side-by-side rendering.
type Result struct {
	Files []*align.DisplayFile `json:"files"`
}

// Engine retrieves normalized, rename-aware diffs from one VCS backend.
// The backend is selected once here; nothing downstream re-checks the kind.
type Engine struct {
	backend vcs.Backend
	filter  filters.PathFilter
	opts    Options
}

func NewEngine(kind vcs.Kind, runner execs.Runner, opts Options) (*Engine, error) {
	filter, err := filters.ParsePathFilter(opts.Include, opts.Exclude)
	if err != nil {
		return nil, err
	}

	if opts.Console == nil {
		opts.Console = consoles.NewNullConsole()
	}

	return &Engine{
		backend: vcs.NewBackend(kind, runner, opts.Dir),
		filter:  filter,
		opts:    opts,
	}, nil
}

// NewEngineWithBackend wires an explicit backend, used by tests.
func NewEngineWithBackend(backend vcs.Backend, opts Options) (*Engine, error) {
	filter, err := filters.ParsePathFilter(opts.Include, opts.Exclude)
	if err != nil {
		return nil, err
	}

	if opts.Console == nil {
		opts.Console = consoles.NewNullConsole()
	}

	return &Engine{backend: backend, filter: filter, opts: opts}, nil
}

// Range diffs a commit range (git) or revset (jj).
func (e *Engine) Range(rangeStr string) (*Result, error) {
	return e.run(vcs.RangeScope(rangeStr))
}

// Unstaged diffs the working tree against the index (git) or the working
// copy against @ (jj).
func (e *Engine) Unstaged() (*Result, error) {
	return e.run(vcs.Unstaged)
}

// Staged diffs the index against HEAD (git). jj has no staging area, so this
// shows the current revision's own change instead.
func (e *Engine) Staged() (*Result, error) {
	return e.run(vcs.Staged)
}

func (e *Engine) run(scope vcs.Scope) (*Result, error) {
	raw, err := e.backend.DiffOutput(scope)
	if err != nil {
		return nil, err
	}

	files, err := difft.Parse(raw)
	if err != nil {
		return nil, err
	}

	// Everything shared by the workers is frozen before the fan-out: the
	// stats and rename maps and the resolved content sources are read-only
	// from here on.
	stats := normalizeStats(e.backend.Stats(scope))
	renames := e.backend.Renames(scope)
	resolved := e.backend.Resolve(scope)

	var bar *progressbar.ProgressBar
	if e.opts.Progress {
		bar = utils.NewProgressBar(len(files))
	}

	display := utils.ParallelMap(files, func(file *difft.File) *align.DisplayFile {
		result := e.assemble(file, resolved, stats)
		if bar != nil {
			_ = bar.Add(1)
		}
		return result
	}, utils.ParallelOptions{Routines: e.opts.Routines})

	if bar != nil {
		_ = bar.Finish()
	}

	display = reconcile(display, renames)

	display = lo.Filter(display, func(file *align.DisplayFile, _ int) bool {
		return e.filter(file.Path)
	})

	return &Result{Files: display}, nil
}

func (e *Engine) assemble(file *difft.File, resolved vcs.Resolved, stats vcs.FileStats) *align.DisplayFile {
	// The listing itself may carry arrow-encoded paths, so split before any
	// content lookup even though reconciliation has not run yet.
	oldPath, newPath := vcs.SplitRenamePath(file.Path)

	var fileStats *align.Stats
	if s, ok := stats[newPath]; ok {
		fileStats = &align.Stats{Additions: s.Additions, Deletions: s.Deletions}
	}

	oldLines := e.backend.Content(resolved.Old, oldPath)
	newLines := e.backend.Content(resolved.New, newPath)

	result := align.ProcessFile(file, oldLines, newLines, fileStats)

	if oldPath != newPath {
		result.Path = newPath
		result.MovedFrom = oldPath
		result.Status = difft.Created
	}

	return result
}

// normalizeStats rewrites arrow-encoded stat keys to the new path, so lookup
// by the listing's path works even when the two commands encode renames
// differently.
func normalizeStats(stats vcs.FileStats) vcs.FileStats {
	normalized := make(vcs.FileStats, len(stats))
	for path, stat := range stats {
		_, newPath := vcs.SplitRenamePath(path)
		normalized[newPath] = stat
	}
	return normalized
}
