package vcs

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/clabby/difftastic.nvim/lib/execs"
)

// fakeRunner replays canned command transcripts, keyed by the full command
// line, so backend tests never spawn real tools.
type fakeRunner struct {
	outputs map[string]string
	calls   []string
}

func newFakeRunner(outputs map[string]string) *fakeRunner {
	return &fakeRunner{outputs: outputs}
}

func (r *fakeRunner) Run(c execs.Cmd) (string, error) {
	key := strings.Join(append([]string{c.Name}, c.Args...), " ")
	r.calls = append(r.calls, key)

	out, ok := r.outputs[key]
	if !ok {
		return "", errors.Errorf("%v: no such command in transcript", key)
	}
	return out, nil
}
