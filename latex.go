package latex2svg

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// defaultLatexArgv produces a DVI and stops at the first error instead of
// prompting interactively.
func defaultLatexArgv() []string {
	return []string{"latex", "-interaction", "nonstopmode", "-halt-on-error"}
}

// documentCompiler abstracts the LaTeX compilation stage.
type documentCompiler interface {
	Compile(ctx context.Context, dir, texFile string) error
}

// latexCompiler invokes the external LaTeX compiler to produce a DVI next
// to the source document.
type latexCompiler struct {
	runner CommandRunner
	argv   []string
}

func newLatexCompiler(runner CommandRunner, argv []string) *latexCompiler {
	if len(argv) == 0 {
		argv = defaultLatexArgv()
	}
	return &latexCompiler{runner: runner, argv: argv}
}

// Compile runs the compiler on texFile inside dir. A non-zero exit aborts
// the pipeline with the captured compiler output surfaced verbatim.
func (c *latexCompiler) Compile(ctx context.Context, dir, texFile string) error {
	args := append(append([]string{}, c.argv[1:]...), texFile)
	stdout, stderr, err := c.runner.Run(ctx, dir, nil, c.argv[0], args...)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrLatexNotFound, c.argv[0])
		}
		return fmt.Errorf("%w: %s", ErrLatexCompile, strings.TrimSpace(toolOutput(stdout, stderr)))
	}
	return nil
}
