package latex2svg

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyLatex      = errors.New("latex fragment cannot be empty")
	ErrInvalidFontSize = errors.New("font size must be positive")

	// Toolchain errors.
	ErrLatexNotFound   = errors.New("latex not found")
	ErrLatexCompile    = errors.New("latex compilation failed")
	ErrDvisvgmNotFound = errors.New("dvisvgm not found")
	ErrDvisvgmConvert  = errors.New("dvisvgm conversion failed")
	ErrSVGOptimize     = errors.New("svg optimization failed")

	// Post-processing errors.
	ErrMalformedSVG = errors.New("malformed SVG from converter")

	// Clipboard errors.
	ErrClipboardUnavailable = errors.New("system clipboard unavailable")
)
