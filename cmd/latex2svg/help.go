package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: latex2svg [flags] [latex_code ...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a LaTeX math expression to a minified SVG and copy it to the")
	fmt.Fprintln(w, "system clipboard. Multiple fragments are joined into one equation.")
	fmt.Fprintln(w, "Without arguments, an interactive multi-line entry form opens.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -s, --font-size <pt>    LaTeX font size in pt (default 12); -fs and --fs also accepted")
	fmt.Fprintln(w, "  -c, --config <name>     Config file name or path")
	fmt.Fprintln(w, "  -o, --output <path>     Also write the SVG to a file")
	fmt.Fprintln(w, "      --stdout            Print the SVG to standard output")
	fmt.Fprintln(w, "      --no-clipboard      Skip the clipboard stage")
	fmt.Fprintln(w, "  -q, --quiet             Only show errors")
	fmt.Fprintln(w, "  -v, --verbose           Show pipeline details")
	fmt.Fprintln(w, "      --doctor            Check the external toolchain and exit")
	fmt.Fprintln(w, "      --json              Doctor output as JSON")
	fmt.Fprintln(w, "      --version           Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Requires latex and dvisvgm on PATH; scour is optional but recommended.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Example:")
	fmt.Fprintln(w, `  latex2svg --fs 16 '$H(X) = - \sum_{x \in \mathcal{X}} p(x) \log_2 p(x)$'`)
}
