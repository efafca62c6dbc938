package environment

import (
	"bytes"
	stderrors "errors"
	"os"
	"os/exec"

	"github.com/vincent-herlemont/cli-integration-test/pkg/logging"
)

// CommandConfigurator adjusts an invocation before it is handed back to
// the caller. It receives the workspace root and the invocation already
// bound to it. It must only configure: no execution, no blocking, no
// mutation of the Environment.
type CommandConfigurator func(workspace string, inv *Invocation) *Invocation

// Result is the captured outcome of a finished invocation. A non-zero
// ExitCode is data for the caller to assert on, never an error of the
// harness. Err is set only when the process could not be run at all.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
}

// Invocation is a configured-but-not-yet-run external command. Produced
// by Environment.Command with the working directory bound to the
// workspace; the caller appends arguments and environment, then calls
// Run.
type Invocation struct {
	cmd *exec.Cmd
}

// Append adds arguments to the invocation.
func (i *Invocation) Append(args ...string) *Invocation {
	i.cmd.Args = append(i.cmd.Args, args...)
	return i
}

// Setenv adds one environment variable to the invocation, starting from
// the parent process environment on first use.
func (i *Invocation) Setenv(key, value string) *Invocation {
	if i.cmd.Env == nil {
		i.cmd.Env = os.Environ()
	}
	i.cmd.Env = append(i.cmd.Env, key+"="+value)
	return i
}

// SetDir overrides the working directory bound by Command.
func (i *Invocation) SetDir(dir string) *Invocation {
	i.cmd.Dir = dir
	return i
}

// Dir returns the invocation's working directory.
func (i *Invocation) Dir() string {
	return i.cmd.Dir
}

// Run executes the invocation, blocking until the process exits, and
// captures both output streams and the exit status. A hung child hangs
// the calling test; timeouts are the test runner's responsibility.
func (i *Invocation) Run() *Result {
	var stdout, stderr bytes.Buffer
	i.cmd.Stdout = &stdout
	i.cmd.Stderr = &stderr

	logging.LogCommand(i.cmd.Path, i.cmd.Args[1:])

	err := i.cmd.Run()
	res := &Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case stderrors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
	default:
		res.ExitCode = -1
		res.Err = err
	}
	return res
}

// Command resolves name to an executable belonging to the same build
// (cmd/<name> of the enclosing module, compiled once per test run) and
// returns an invocation with the workspace bound as working directory,
// after passing it through the stored configurator. Resolution failure
// aborts the test.
func (e *Environment) Command(name string) *Invocation {
	e.tb.Helper()

	bin, err := resolveBinary(name)
	if err != nil {
		e.tb.Fatalf("environment %q: %v", e.label, err)
	}

	cmd := exec.Command(bin)
	cmd.Dir = e.root

	return e.cfgCommand(e.root, &Invocation{cmd: cmd})
}
