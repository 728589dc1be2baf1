package latex2svg_test

import (
	"fmt"

	latex2svg "github.com/vlarroque/latex2svg"
)

func ExampleBuildDocument() {
	doc := latex2svg.BuildDocument(`$x^2$`, `\usepackage{amssymb}`, 12)
	fmt.Print(doc)
	// Output:
	// \documentclass[12pt,preview]{standalone}
	// \usepackage{amsmath}
	// \usepackage{amsfonts}
	// \usepackage{amssymb}
	// \begin{document}
	// \begin{preview}
	// $x^2$
	// \end{preview}
	// \end{document}
}
