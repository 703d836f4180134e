package execs

import (
	"bytes"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// Cmd describes one invocation of an external tool.
type Cmd struct {
	Name string
	Args []string
	Dir  string
	Env  map[string]string
}

// Runner executes one external command and returns its stdout. A spawn
// failure or non-zero exit is an error carrying the operation and the
// captured stderr, never a silent empty result.
type Runner interface {
	Run(cmd Cmd) (string, error)
}

type execRunner struct{}

func NewExecRunner() Runner {
	return &execRunner{}
}

func (r *execRunner) Run(c Cmd) (string, error) {
	cmd := exec.Command(c.Name, c.Args...)
	cmd.Dir = c.Dir

	if len(c.Env) > 0 {
		cmd.Env = os.Environ()
		for k, v := range c.Env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", errors.Errorf("%v: %v", Operation(c), msg)
	}

	return stdout.String(), nil
}

// Operation names a command for error messages: the binary plus its leading
// subcommand words, without arguments that may hold paths or revisions.
func Operation(c Cmd) string {
	parts := []string{c.Name}
	for _, a := range c.Args {
		if strings.HasPrefix(a, "-") || len(parts) == 3 {
			break
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}
