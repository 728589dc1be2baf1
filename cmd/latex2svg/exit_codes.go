package main

import (
	"errors"
	"os"

	latex2svg "github.com/vlarroque/latex2svg"
	"github.com/vlarroque/latex2svg/internal/config"
)

// Exit codes for the latex2svg CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess   = 0 // Successful conversion
	ExitGeneral   = 1 // General/unexpected error
	ExitUsage     = 2 // Invalid flags, config, or validation
	ExitIO        = 3 // File not found, permission denied, write failure
	ExitToolchain = 4 // latex/dvisvgm/scour failures
	ExitClipboard = 5 // Clipboard unavailable
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Clipboard errors (exit 5)
	if errors.Is(err, latex2svg.ErrClipboardUnavailable) {
		return ExitClipboard
	}

	// Toolchain errors (exit 4)
	if errors.Is(err, latex2svg.ErrLatexNotFound) ||
		errors.Is(err, latex2svg.ErrLatexCompile) ||
		errors.Is(err, latex2svg.ErrDvisvgmNotFound) ||
		errors.Is(err, latex2svg.ErrDvisvgmConvert) ||
		errors.Is(err, latex2svg.ErrSVGOptimize) ||
		errors.Is(err, latex2svg.ErrMalformedSVG) {
		return ExitToolchain
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrWriteSVG) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrInvalidFontSize) ||
		errors.Is(err, config.ErrInvalidScale) ||
		errors.Is(err, config.ErrInvalidOptimizer) ||
		errors.Is(err, config.ErrEmptyCommand) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, latex2svg.ErrEmptyLatex) ||
		errors.Is(err, latex2svg.ErrInvalidFontSize) {
		return ExitUsage
	}

	return ExitGeneral
}
