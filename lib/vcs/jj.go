package vcs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/clabby/difftastic.nvim/lib/execs"
	"github.com/clabby/difftastic.nvim/lib/utils"
)

type jjBackend struct {
	runner execs.Runner
	dir    string
	root   *utils.Lazy[string]
}

func newJjBackend(runner execs.Runner, dir string) *jjBackend {
	j := &jjBackend{
		runner: runner,
		dir:    dir,
	}
	j.root = utils.NewLazy(func() (string, error) {
		out, err := j.run("root")
		return strings.TrimSpace(out), err
	})
	return j
}

func (j *jjBackend) run(args ...string) (string, error) {
	return j.runner.Run(execs.Cmd{Name: "jj", Args: args, Dir: j.dir})
}

func (j *jjBackend) DiffOutput(scope Scope) (string, error) {
	args := []string{"diff"}
	switch scope.Kind {
	case ScopeRange:
		args = append(args, "-r", scope.Range)
	case ScopeStaged:
		args = append(args, "-r", "@")
	}
	args = append(args, "--tool", "difft")

	return j.runner.Run(execs.Cmd{Name: "jj", Args: args, Dir: j.dir, Env: difftEnv})
}

func (j *jjBackend) Resolve(scope Scope) Resolved {
	switch scope.Kind {
	case ScopeUnstaged:
		return Resolved{Old: RevisionSource("@"), New: WorktreeSource()}
	case ScopeStaged:
		// No staging area in jj: show the current revision's own change.
		return Resolved{Old: RevisionSource("@-"), New: RevisionSource("@")}
	default:
		oldRev, newRev := resolveRevsetRange(scope.Range)
		return Resolved{Old: RevisionSource(oldRev), New: RevisionSource(newRev)}
	}
}

// resolveRevsetRange recognizes "A..B" with both sides non-empty; anything
// else is a single revset, bounded from the predecessor of its earliest
// commit to its latest, so a revset spanning several commits still yields
// one old/new pair.
func resolveRevsetRange(r string) (string, string) {
	if a, b, found := strings.Cut(r, ".."); found {
		oldRev := strings.TrimSpace(a)
		newRev := strings.TrimSpace(b)
		if oldRev != "" && newRev != "" {
			return oldRev, newRev
		}
	}

	return "roots(" + r + ")-", "heads(" + r + ")"
}

func (j *jjBackend) Content(src Source, path string) []string {
	switch src.kind {
	case sourceWorktree:
		return j.worktreeContent(path)
	case sourceIndex:
		// jj has no index; Resolve never produces this.
		return nil
	default:
		out, err := j.run("file", "show", "-r", src.rev, path)
		if err != nil {
			return nil
		}
		return SplitLines(out)
	}
}

func (j *jjBackend) worktreeContent(path string) []string {
	root, err := j.root.Get()
	if err != nil {
		return nil
	}

	content, err := os.ReadFile(filepath.Join(root, path))
	if err != nil {
		return nil
	}
	return SplitLines(string(content))
}

// Stats translates the revset endpoints to git commits and asks git for
// numstat, which jj cannot produce itself. This only works in colocated
// repositories; anywhere else it degrades to no stats, which only loses
// enrichment, never the file list.
func (j *jjBackend) Stats(scope Scope) FileStats {
	switch scope.Kind {
	case ScopeUnstaged:
		// jj's own --stat output has no machine-readable form, and there is
		// no commit pair to hand to git for uncommitted changes.
		return FileStats{}
	case ScopeStaged:
		return j.rangeStats("@")
	default:
		return j.rangeStats(scope.Range)
	}
}

func (j *jjBackend) rangeStats(revset string) FileStats {
	oldCommit := j.ResolveCommit("roots(" + revset + ")-")
	newCommit := j.ResolveCommit("heads(" + revset + ")")

	switch {
	case oldCommit != "" && newCommit != "":
		return j.gitNumstat(oldCommit + ".." + newCommit)
	case newCommit != "":
		return j.gitNumstat(newCommit + "^.." + newCommit)
	default:
		return FileStats{}
	}
}

func (j *jjBackend) gitNumstat(rangeStr string) FileStats {
	out, err := j.runner.Run(execs.Cmd{
		Name: "git",
		Args: []string{"diff", "--numstat", rangeStr},
		Dir:  j.dir,
	})
	if err != nil {
		return FileStats{}
	}
	return parseNumstat(out)
}

// ResolveCommit translates a revset to a git commit id via a template query.
// The output must be exactly one line of exactly 40 hex characters; any other
// shape means the revset is unresolvable here, reported as "", never as an
// error, because everything built on it is best-effort enrichment.
func (j *jjBackend) ResolveCommit(revset string) string {
	out, err := j.run("log", "-r", revset, "--no-graph", "-T", "commit_id")
	if err != nil {
		return ""
	}

	commit := strings.TrimSpace(out)
	if strings.ContainsAny(commit, "\n\r") || !isCommitHash(commit) {
		return ""
	}
	return commit
}

func isCommitHash(s string) bool {
	if len(s) != 40 {
		return false
	}
	for _, c := range s {
		if !isHexDigit(c) {
			return false
		}
	}
	return true
}

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func (j *jjBackend) Renames(scope Scope) map[string]string {
	args := []string{"diff", "--summary"}
	switch scope.Kind {
	case ScopeRange:
		args = append(args, "-r", scope.Range)
	case ScopeStaged:
		args = append(args, "-r", "@")
	}

	out, err := j.run(args...)
	if err != nil {
		return map[string]string{}
	}

	renames := make(map[string]string)
	for _, line := range SplitLines(out) {
		if !strings.HasPrefix(line, "R ") {
			continue
		}

		oldPath, newPath := SplitRenamePath(strings.TrimSpace(line[2:]))
		if oldPath == "" || newPath == "" || oldPath == newPath {
			continue
		}

		renames[newPath] = oldPath
	}
	return renames
}
