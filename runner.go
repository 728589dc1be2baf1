package latex2svg

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
)

// CommandRunner abstracts external process execution to enable testing
// without real subprocesses.
type CommandRunner interface {
	// Run executes name with args in dir, blocking until the process exits.
	// extraEnv entries ("KEY=value") are appended to the current environment.
	Run(ctx context.Context, dir string, extraEnv []string, name string, args ...string) (stdout string, stderr string, err error)
}

// ExecRunner implements CommandRunner using os/exec.
type ExecRunner struct{}

func (r *ExecRunner) Run(ctx context.Context, dir string, extraEnv []string, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	if len(extraEnv) > 0 {
		cmd.Env = append(os.Environ(), extraEnv...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// toolOutput joins captured stdout and stderr for error reporting. LaTeX
// reports errors on stdout while dvisvgm and scour use stderr, so failures
// surface both streams.
func toolOutput(stdout, stderr string) string {
	switch {
	case stdout == "":
		return stderr
	case stderr == "":
		return stdout
	default:
		return fmt.Sprintf("%s\n%s", stdout, stderr)
	}
}
