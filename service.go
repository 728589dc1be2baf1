package latex2svg

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vlarroque/latex2svg/internal/fileutil"
)

// Artifact names inside the per-run working directory. latex and dvisvgm
// derive their output names from the input, so these stay in sync.
const (
	texFile      = "equation.tex"
	dviFile      = "equation.dvi"
	svgFile      = "equation.svg"
	optimizedSVG = "optimized.svg"
)

// Service orchestrates the LaTeX-to-SVG pipeline.
type Service struct {
	cfg       serviceConfig
	runner    CommandRunner
	compiler  documentCompiler
	converter svgConverter
	optimizer svgOptimizer
	clipboard ClipboardWriter
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithLibgs, WithOptimizer).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{optimizer: OptimizerScour},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create stages if not injected (e.g., by tests)
	if s.runner == nil {
		s.runner = &ExecRunner{}
	}
	if s.compiler == nil {
		s.compiler = newLatexCompiler(s.runner, s.cfg.latexArgv)
	}
	if s.converter == nil {
		s.converter = newDvisvgmConverter(s.runner, s.cfg.dvisvgmArgv, s.cfg.libgs)
	}
	if s.optimizer == nil {
		s.optimizer = newScourOptimizer(s.runner, s.cfg.scourArgv)
	}
	if s.clipboard == nil {
		s.clipboard = systemClipboard{}
	}

	return s
}

// Convert runs the full pipeline: build document, compile, convert, rewrite
// attributes, optimize. The context is passed to every external process.
//
// All intermediate artifacts live in a per-run temporary directory that is
// removed on every exit path. No partial output is ever returned.
func (s *Service) Convert(ctx context.Context, input Input) (*Result, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	fontSize := input.FontSize
	if fontSize == 0 {
		fontSize = DefaultFontSize
	}

	dir := s.cfg.workDir
	if dir == "" {
		tmpDir, cleanup, err := fileutil.TempWorkspace("latex2svg-")
		if err != nil {
			return nil, err
		}
		defer cleanup()
		dir = tmpDir
	}

	// Build and write the standalone document
	document := BuildDocument(input.Latex, input.Preamble, fontSize)
	if err := os.WriteFile(filepath.Join(dir, texFile), []byte(document), 0o600); err != nil {
		return nil, fmt.Errorf("writing document: %w", err)
	}

	// Compile to DVI
	if err := s.compiler.Compile(ctx, dir, texFile); err != nil {
		return nil, err
	}

	// Convert DVI to SVG. The preview class ignores the font size option for
	// math, so output sizing happens here through the dvisvgm scale.
	scale := s.cfg.scale
	if scale == 0 {
		scale = fontSize / 10
	}
	report, err := s.converter.Convert(ctx, dir, dviFile, scale)
	if err != nil {
		return nil, err
	}
	metrics, err := parseMetrics(report, fontSize)
	if err != nil {
		return nil, err
	}

	// Rewrite root attributes to em units
	raw, err := os.ReadFile(filepath.Join(dir, svgFile)) // #nosec G304 -- path is inside the run's temp dir
	if err != nil {
		return nil, fmt.Errorf("reading converter output: %w", err)
	}
	processed, err := postProcess(string(raw), metrics)
	if err != nil {
		return nil, err
	}

	result := &Result{
		SVG:    processed,
		Width:  metrics.Width,
		Height: metrics.Height,
		Valign: -metrics.Depth,
	}

	// Optimize (optional stage)
	if s.cfg.optimizer != OptimizerNone {
		final, warning, err := s.optimize(ctx, dir, processed)
		if err != nil {
			return nil, err
		}
		result.SVG = final
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}
	}

	return result, nil
}

// Copy publishes the final SVG to the system clipboard, replacing its
// current content.
func (s *Service) Copy(svg string) error {
	return s.clipboard.Write(svg)
}

// optimize writes the post-processed SVG back to disk and runs the
// optimizer on it. When the optimizer is not installed the unoptimized SVG
// is returned with a warning, matching the tool's best-effort contract.
func (s *Service) optimize(ctx context.Context, dir, processed string) (svg string, warning string, err error) {
	if err := os.WriteFile(filepath.Join(dir, svgFile), []byte(processed), 0o600); err != nil {
		return "", "", fmt.Errorf("writing intermediate SVG: %w", err)
	}

	optimized, err := s.optimizer.Optimize(ctx, dir, svgFile, optimizedSVG)
	if err != nil {
		return "", "", err
	}
	if !optimized {
		return processed, "scour not found, using unoptimized SVG", nil
	}

	final, err := os.ReadFile(filepath.Join(dir, optimizedSVG)) // #nosec G304 -- path is inside the run's temp dir
	if err != nil {
		return "", "", fmt.Errorf("reading optimized SVG: %w", err)
	}
	return string(final), "", nil
}

// validateInput checks that required fields are present and valid.
// Validation failures surface before any external process is invoked.
func (s *Service) validateInput(input Input) error {
	if strings.TrimSpace(input.Latex) == "" {
		return ErrEmptyLatex
	}
	if input.FontSize < 0 {
		return fmt.Errorf("%w: %.2f", ErrInvalidFontSize, input.FontSize)
	}
	return nil
}
