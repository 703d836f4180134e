package main

import (
	"github.com/clabby/difftastic.nvim/lib/diff"
	"github.com/clabby/difftastic.nvim/lib/server"
)

type DiffCmd struct {
	Range string `arg:"" help:"Commit range (git) or revset (jj), e.g. 'main..feature' or '@'."`
}

func (c *DiffCmd) Run(ctx *context) error {
	engine, err := diff.NewEngine(ctx.kind, ctx.runner, ctx.opts)
	if err != nil {
		return err
	}

	result, err := engine.Range(c.Range)
	if err != nil {
		return err
	}

	return printResult(ctx, result)
}

type UnstagedCmd struct{}

func (c *UnstagedCmd) Run(ctx *context) error {
	engine, err := diff.NewEngine(ctx.kind, ctx.runner, ctx.opts)
	if err != nil {
		return err
	}

	result, err := engine.Unstaged()
	if err != nil {
		return err
	}

	return printResult(ctx, result)
}

type StagedCmd struct{}

func (c *StagedCmd) Run(ctx *context) error {
	engine, err := diff.NewEngine(ctx.kind, ctx.runner, ctx.opts)
	if err != nil {
		return err
	}

	result, err := engine.Staged()
	if err != nil {
		return err
	}

	return printResult(ctx, result)
}

type ServeCmd struct {
	Addr string `default:"localhost:7433" help:"Address to listen on."`
}

func (c *ServeCmd) Run(ctx *context) error {
	return server.Run(server.Options{
		Addr: c.Addr,
		Dir:  cli.Dir,
		Kind: ctx.kind,
	}, ctx.runner, ctx.console)
}
