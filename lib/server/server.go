package server

import (
	"github.com/gin-gonic/gin"
	"github.com/teris-io/shortid"

	"github.com/clabby/difftastic.nvim/lib/consoles"
	"github.com/clabby/difftastic.nvim/lib/execs"
	"github.com/clabby/difftastic.nvim/lib/vcs"
)

type Options struct {
	Addr string
	Dir  string
	Kind vcs.Kind
}

type server struct {
	opts    Options
	runner  execs.Runner
	console consoles.Console
}

// Run serves the diff facade over HTTP for editor and host integrations.
// It blocks until the listener fails.
func Run(opts Options, runner execs.Runner, console consoles.Console) error {
	if console == nil {
		console = consoles.NewNullConsole()
	}

	s := &server{
		opts:    opts,
		runner:  runner,
		console: console,
	}

	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery(), requestID())

	s.initDiffs(r)

	console.Printf("Serving diffs on %v\n", opts.Addr)

	return r.Run(opts.Addr)
}

func requestID() gin.HandlerFunc {
	sid, err := shortid.New(1, shortid.DefaultABC, 2342)

	return func(c *gin.Context) {
		if err == nil {
			if id, idErr := sid.Generate(); idErr == nil {
				c.Header("X-Request-ID", id)
			}
		}
		c.Next()
	}
}
