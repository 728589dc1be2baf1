package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	latex2svg "github.com/vlarroque/latex2svg"
	"github.com/vlarroque/latex2svg/internal/config"
	"github.com/vlarroque/latex2svg/internal/tui"
)

// Sentinel errors for CLI operations.
var (
	ErrWriteSVG = errors.New("failed to write SVG file")
)

// filePermissions: rw-r--r--, owner read+write, others read.
const filePermissions = 0o644

// Converter is the interface for the conversion service.
type Converter interface {
	Convert(ctx context.Context, input latex2svg.Input) (*latex2svg.Result, error)
	Copy(svg string) error
}

// Compile-time interface implementation check.
var _ Converter = (*latex2svg.Service)(nil)

// realMain dispatches on mode (version, doctor, argument, interactive),
// builds the service, and returns the process exit code.
func realMain(flags *cliFlags, args []string, env *Environment) int {
	if flags.version {
		fmt.Fprintf(env.Stdout, "latex2svg %s\n", Version)
		return ExitSuccess
	}

	if flags.doctor {
		return runDoctorCmd(flags.jsonOutput, env)
	}

	// Load configuration
	if flags.config != "" {
		cfg, err := config.LoadConfig(flags.config)
		if err != nil {
			fmt.Fprintln(env.Stderr, err)
			return exitCodeFor(err)
		}
		env.Config = cfg
	}

	// Resolve the equation source: positional fragments joined into one
	// document, or the interactive form when no arguments were given.
	source, ok, err := resolveSource(args, flags, env)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitGeneral
	}
	if !ok {
		// Interactive entry cancelled; nothing to convert.
		return ExitSuccess
	}

	svc := buildService(flags, env.Config)
	if err := run(context.Background(), svc, source, flags, env); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// resolveSource returns the LaTeX source and whether a conversion should
// proceed. Multiple positional fragments are joined with a single space and
// rendered as one document.
func resolveSource(args []string, flags *cliFlags, env *Environment) (string, bool, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), true, nil
	}

	latex, submitted, err := tui.Run()
	if err != nil {
		return "", false, err
	}
	if !submitted {
		if !flags.quiet {
			fmt.Fprintln(env.Stderr, "Cancelled")
		}
		return "", false, nil
	}
	return latex, true, nil
}

// buildService assembles a Service from config-file and flag settings.
func buildService(flags *cliFlags, cfg *config.Config) *latex2svg.Service {
	var opts []latex2svg.Option

	if len(cfg.LatexCmd) > 0 {
		opts = append(opts, latex2svg.WithLatexCommand(cfg.LatexCmd...))
	}
	if len(cfg.DvisvgmCmd) > 0 {
		opts = append(opts, latex2svg.WithDvisvgmCommand(cfg.DvisvgmCmd...))
	}
	if len(cfg.ScourCmd) > 0 {
		opts = append(opts, latex2svg.WithScourCommand(cfg.ScourCmd...))
	}
	if cfg.Optimizer != "" {
		opts = append(opts, latex2svg.WithOptimizer(cfg.Optimizer))
	}
	if cfg.Scale != 0 {
		opts = append(opts, latex2svg.WithScale(cfg.Scale))
	}
	if cfg.Libgs != "" {
		opts = append(opts, latex2svg.WithLibgs(cfg.Libgs))
	} else if libgs := os.Getenv("LIBGS"); libgs != "" {
		opts = append(opts, latex2svg.WithLibgs(libgs))
	}

	return latex2svg.New(opts...)
}

// run executes the pipeline for one equation and publishes the result.
func run(ctx context.Context, svc Converter, source string, flags *cliFlags, env *Environment) error {
	input := latex2svg.Input{
		Latex:    source,
		FontSize: resolveFontSize(flags, env.Config),
		Preamble: env.Config.Preamble,
	}

	if flags.verbose {
		fmt.Fprintf(env.Stderr, "Converting %d bytes of LaTeX at %.1fpt\n", len(input.Latex), effectiveFontSize(input.FontSize))
	}

	result, err := svc.Convert(ctx, input)
	if err != nil {
		return err
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(env.Stderr, "warning: %s\n", warning)
	}
	if flags.verbose {
		fmt.Fprintf(env.Stderr, "SVG size: %.4fem x %.4fem (valign %.4fem)\n", result.Width, result.Height, result.Valign)
	}

	if flags.output != "" {
		if err := os.WriteFile(flags.output, []byte(result.SVG), filePermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteSVG, err)
		}
		if !flags.quiet {
			fmt.Fprintf(env.Stdout, "Created %s\n", flags.output)
		}
	}

	if flags.toStdout {
		fmt.Fprintln(env.Stdout, result.SVG)
	}

	if !flags.noClipboard && !env.Config.NoClipboard {
		if err := svc.Copy(result.SVG); err != nil {
			return err
		}
		if !flags.quiet {
			fmt.Fprintln(env.Stdout, "SVG copied to clipboard")
		}
	}

	return nil
}

// resolveFontSize applies flag > config > library default precedence.
// Returning 0 defers to the library default.
func resolveFontSize(flags *cliFlags, cfg *config.Config) float64 {
	if flags.fontSizeSet {
		return flags.fontSize
	}
	return cfg.FontSize
}

// effectiveFontSize resolves 0 to the library default for display.
func effectiveFontSize(fontSize float64) float64 {
	if fontSize == 0 {
		return latex2svg.DefaultFontSize
	}
	return fontSize
}
