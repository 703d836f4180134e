package server

import (
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/clabby/difftastic.nvim/lib/diff"
	"github.com/clabby/difftastic.nvim/lib/vcs"
)

type scopeParams struct {
	Vcs     string   `form:"vcs"`
	Include []string `form:"include"`
	Exclude []string `form:"exclude"`
}

type rangeParams struct {
	scopeParams
	Range string `form:"range"`
}

func (s *server) initDiffs(r *gin.Engine) {
	r.GET("/api/diff", getP[rangeParams](s.diffRange))
	r.GET("/api/diff/unstaged", getP[scopeParams](s.diffUnstaged))
	r.GET("/api/diff/staged", getP[scopeParams](s.diffStaged))
}

func (s *server) diffRange(params *rangeParams) (any, error) {
	if params.Range == "" {
		return nil, errors.New("range is required")
	}

	engine, err := s.engine(&params.scopeParams)
	if err != nil {
		return nil, err
	}

	return engine.Range(params.Range)
}

func (s *server) diffUnstaged(params *scopeParams) (any, error) {
	engine, err := s.engine(params)
	if err != nil {
		return nil, err
	}

	return engine.Unstaged()
}

func (s *server) diffStaged(params *scopeParams) (any, error) {
	engine, err := s.engine(params)
	if err != nil {
		return nil, err
	}

	return engine.Staged()
}

func (s *server) engine(params *scopeParams) (*diff.Engine, error) {
	kind := s.opts.Kind
	switch params.Vcs {
	case "":
		// keep the kind detected at startup
	case "git":
		kind = vcs.Git
	case "jj":
		kind = vcs.Jj
	default:
		return nil, errors.Errorf("unknown vcs: %v", params.Vcs)
	}

	return diff.NewEngine(kind, s.runner, diff.Options{
		Dir:     s.opts.Dir,
		Include: params.Include,
		Exclude: params.Exclude,
		Console: s.console,
	})
}
