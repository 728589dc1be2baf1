package latex2svg

import (
	"strconv"
	"strings"
)

// documentTemplate wraps a math fragment into a minimal standalone document.
// The preview class crops the page to the equation's bounding box, which
// dvisvgm turns into a tight viewBox.
const documentTemplate = `\documentclass[{{ fontsize }}pt,preview]{standalone}
\usepackage{amsmath}
\usepackage{amsfonts}
{{ preamble }}
\begin{document}
\begin{preview}
{{ code }}
\end{preview}
\end{document}
`

// DefaultPreamble is used when Input.Preamble is empty.
const DefaultPreamble = `\usepackage[T1]{fontenc}
\usepackage[utf8]{inputenc}
\usepackage{amsmath}
`

// BuildDocument wraps a LaTeX fragment into a complete standalone source
// document. It is pure string substitution: deterministic for the same
// inputs, and no validation of the LaTeX itself (left to the compiler).
func BuildDocument(latex, preamble string, fontSize float64) string {
	if preamble == "" {
		preamble = DefaultPreamble
	}
	return strings.NewReplacer(
		"{{ fontsize }}", formatFontSize(fontSize),
		"{{ preamble }}", preamble,
		"{{ code }}", latex,
	).Replace(documentTemplate)
}

// formatFontSize renders a font size without a trailing ".0" so that whole
// sizes produce conventional class options like "12pt".
func formatFontSize(fontSize float64) string {
	return strconv.FormatFloat(fontSize, 'f', -1, 64)
}
