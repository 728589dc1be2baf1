package latex2svg

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os/exec"
	"strings"
)

// defaultScourArgv minifies to a single line and strips everything the
// destination editor does not need.
func defaultScourArgv() []string {
	return []string{
		"scour",
		"--shorten-ids",
		"--no-line-breaks",
		"--remove-metadata",
		"--enable-comment-stripping",
		"--strip-xml-prolog",
	}
}

// svgOptimizer abstracts the optional SVG minification stage.
// Optimize reports optimized=false without error when the optimizer is not
// installed, in which case the unoptimized SVG is used.
type svgOptimizer interface {
	Optimize(ctx context.Context, dir, inFile, outFile string) (optimized bool, err error)
}

// scourOptimizer invokes the external scour tool.
type scourOptimizer struct {
	runner CommandRunner
	argv   []string
}

func newScourOptimizer(runner CommandRunner, argv []string) *scourOptimizer {
	if len(argv) == 0 {
		argv = defaultScourArgv()
	}
	return &scourOptimizer{runner: runner, argv: argv}
}

// Optimize minifies inFile into outFile (scour requires distinct files).
// Shortened IDs get a random prefix so several equations can share an HTML
// page or editor document without ID collisions.
func (o *scourOptimizer) Optimize(ctx context.Context, dir, inFile, outFile string) (bool, error) {
	args := append(append([]string{}, o.argv[1:]...),
		"--shorten-ids-prefix="+randomIDPrefix()+"_",
		"-i", inFile,
		"-o", outFile,
	)

	stdout, stderr, err := o.runner.Run(ctx, dir, nil, o.argv[0], args...)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %s", ErrSVGOptimize, strings.TrimSpace(toolOutput(stdout, stderr)))
	}
	return true, nil
}

const idPrefixLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// randomIDPrefix returns three random ASCII letters. XML IDs may not start
// with a digit, so only letters are used.
func randomIDPrefix() string {
	b := make([]byte, 3)
	for i := range b {
		b[i] = idPrefixLetters[rand.IntN(len(idPrefixLetters))]
	}
	return string(b)
}
