package vcs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/clabby/difftastic.nvim/lib/execs"
	"github.com/clabby/difftastic.nvim/lib/utils"
)

type gitBackend struct {
	runner execs.Runner
	dir    string
	root   *utils.Lazy[string]
}

func newGitBackend(runner execs.Runner, dir string) *gitBackend {
	g := &gitBackend{
		runner: runner,
		dir:    dir,
	}
	g.root = utils.NewLazy(func() (string, error) {
		out, err := g.run("rev-parse", "--show-toplevel")
		return strings.TrimSpace(out), err
	})
	return g
}

func (g *gitBackend) run(args ...string) (string, error) {
	return g.runner.Run(execs.Cmd{Name: "git", Args: args, Dir: g.dir})
}

func (g *gitBackend) DiffOutput(scope Scope) (string, error) {
	args := []string{"-c", "diff.external=difft", "diff"}
	switch scope.Kind {
	case ScopeRange:
		args = append(args, scope.Range)
	case ScopeStaged:
		args = append(args, "--cached")
	}

	return g.runner.Run(execs.Cmd{Name: "git", Args: args, Dir: g.dir, Env: difftEnv})
}

func (g *gitBackend) Resolve(scope Scope) Resolved {
	switch scope.Kind {
	case ScopeUnstaged:
		return Resolved{Old: IndexSource(), New: WorktreeSource()}
	case ScopeStaged:
		return Resolved{Old: RevisionSource("HEAD"), New: IndexSource()}
	default:
		oldRef, newRef := g.resolveRange(scope.Range)
		return Resolved{Old: RevisionSource(oldRef), New: RevisionSource(newRef)}
	}
}

// resolveRange classifies a user range string into old/new refs. "A...B"
// diffs B against the merge base (falling back to A^ when there is none),
// "A..B" is taken literally, and a single ref R means R^..R. An empty left
// side ("..HEAD") is passed through for git itself to reject.
func (g *gitBackend) resolveRange(r string) (string, string) {
	if a, b, found := strings.Cut(r, "..."); found {
		if base := g.mergeBase(a, b); base != "" {
			return base, b
		}
		return a + "^", b
	}

	if a, b, found := strings.Cut(r, ".."); found {
		return a, b
	}

	return r + "^", r
}

func (g *gitBackend) mergeBase(a, b string) string {
	out, err := g.run("merge-base", a, b)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

func (g *gitBackend) Content(src Source, path string) []string {
	switch src.kind {
	case sourceIndex:
		return g.show(":" + path)
	case sourceWorktree:
		return g.worktreeContent(path)
	default:
		return g.show(src.rev + ":" + path)
	}
}

// show fetches one file's content at a revision. Failure collapses to nil:
// a file that does not exist on one side of the diff is the normal case for
// created and deleted files, not an error.
func (g *gitBackend) show(spec string) []string {
	out, err := g.run("show", spec)
	if err != nil {
		return nil
	}
	return SplitLines(out)
}

func (g *gitBackend) worktreeContent(path string) []string {
	root, err := g.root.Get()
	if err != nil {
		return nil
	}

	content, err := os.ReadFile(filepath.Join(root, path))
	if err != nil {
		return nil
	}
	return SplitLines(string(content))
}

func (g *gitBackend) Stats(scope Scope) FileStats {
	args := []string{"diff", "--numstat"}
	switch scope.Kind {
	case ScopeRange:
		args = append(args, scope.Range)
	case ScopeStaged:
		args = []string{"diff", "--cached", "--numstat"}
	}

	out, err := g.run(args...)
	if err != nil {
		return FileStats{}
	}
	return parseNumstat(out)
}

func (g *gitBackend) Renames(scope Scope) map[string]string {
	args := []string{"diff", "--name-status", "-M"}
	switch scope.Kind {
	case ScopeRange:
		args = append(args, scope.Range)
	case ScopeStaged:
		args = append(args, "--cached")
	}

	out, err := g.run(args...)
	if err != nil {
		return map[string]string{}
	}

	renames := make(map[string]string)
	for _, line := range SplitLines(out) {
		parts := strings.Split(line, "\t")
		if len(parts) < 3 || !strings.HasPrefix(parts[0], "R") {
			continue
		}

		oldPath := strings.TrimSpace(parts[1])
		newPath := strings.TrimSpace(parts[2])
		if oldPath == "" || newPath == "" || oldPath == newPath {
			continue
		}

		renames[newPath] = oldPath
	}
	return renames
}
