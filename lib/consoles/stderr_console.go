package consoles

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// stderrConsole writes progress text to stderr, keeping stdout free for the
// JSON result.
type stderrConsole struct {
	prefixes []string
}

func NewStdErrConsole() Console {
	return &stderrConsole{}
}

func (o *stderrConsole) Printf(format string, a ...any) {
	builder := strings.Builder{}
	builder.WriteString("[")
	builder.WriteString(time.Now().Format("15:04:05"))
	builder.WriteString("] ")
	for _, prefix := range o.prefixes {
		builder.WriteString(prefix)
	}
	builder.WriteString(fmt.Sprintf(format, a...))
	_, _ = fmt.Fprint(os.Stderr, builder.String())
}

func (o *stderrConsole) PushPrefix(format string, a ...any) {
	o.prefixes = append(o.prefixes, fmt.Sprintf(format, a...))
}

func (o *stderrConsole) PopPrefix() {
	o.prefixes = o.prefixes[:len(o.prefixes)-1]
}
