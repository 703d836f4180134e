package main

import (
	"github.com/alecthomas/kong"

	"github.com/clabby/difftastic.nvim/lib/consoles"
	"github.com/clabby/difftastic.nvim/lib/diff"
	"github.com/clabby/difftastic.nvim/lib/execs"
	"github.com/clabby/difftastic.nvim/lib/vcs"
)

var cli struct {
	Dir      string   `short:"C" default:"." type:"path" help:"Run as if started in this directory."`
	Vcs      string   `enum:"auto,git,jj" default:"auto" help:"Version control system to use."`
	Include  []string `help:"Only keep files matching these glob patterns."`
	Exclude  []string `help:"Drop files matching these glob patterns."`
	Progress bool     `help:"Show progress while assembling files."`

	Diff     DiffCmd     `cmd:"" help:"Show the diff for a commit range (git) or revset (jj)."`
	Unstaged UnstagedCmd `cmd:"" help:"Show unstaged changes: working tree vs index (git), working copy vs @ (jj)."`
	Staged   StagedCmd   `cmd:"" help:"Show staged changes: index vs HEAD (git), the change of @ itself (jj)."`
	Serve    ServeCmd    `cmd:"" help:"Serve diffs as JSON over HTTP."`
}

type context struct {
	kind    vcs.Kind
	runner  execs.Runner
	console consoles.Console
	opts    diff.Options
}

func main() {
	ctx := kong.Parse(&cli, kong.ShortUsageOnError())

	console := consoles.NewStdErrConsole()

	kind, err := resolveKind(cli.Vcs, cli.Dir)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(&context{
		kind:    kind,
		runner:  execs.NewExecRunner(),
		console: console,
		opts: diff.Options{
			Dir:      cli.Dir,
			Include:  cli.Include,
			Exclude:  cli.Exclude,
			Progress: cli.Progress,
			Console:  console,
		},
	})
	ctx.FatalIfErrorf(err)
}

func resolveKind(name, dir string) (vcs.Kind, error) {
	switch name {
	case "git":
		return vcs.Git, nil
	case "jj":
		return vcs.Jj, nil
	default:
		return vcs.Detect(dir)
	}
}
