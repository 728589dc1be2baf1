// Package latex2svg converts LaTeX math expressions to SVG using an external
// LaTeX toolchain (latex, dvisvgm and optionally scour).
//
// # Quick Start
//
// Create a service, convert an equation, and copy it to the clipboard:
//
//	svc := latex2svg.New()
//
//	result, err := svc.Convert(ctx, latex2svg.Input{
//	    Latex:    `$E = mc^2$`,
//	    FontSize: 12,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := svc.Copy(result.SVG); err != nil {
//	    log.Fatal(err)
//	}
//
// The result contains the minified SVG (result.SVG) plus its width, height
// and baseline offset in em units, parsed from the dvisvgm size report.
//
// # Conversion Pipeline
//
// Each call to Convert runs these stages in a fresh temporary directory,
// which is removed on every exit path:
//
//  1. Wrap the fragment into a standalone preview document
//  2. Compile the document to DVI with latex
//  3. Convert the DVI to SVG with dvisvgm
//  4. Rewrite the SVG root attributes to em units for editor paste
//  5. Minify the SVG with scour (skipped when scour is not installed)
//
// All external tools are invoked through the CommandRunner interface, so
// tests can substitute a mock and never spawn real processes.
//
// # Requirements
//
// A TeX distribution providing latex and dvisvgm must be on PATH. dvisvgm
// may additionally need Ghostscript, located via the LIBGS environment
// variable or the system search path; see WithLibgs.
package latex2svg
