package latex2svg

import (
	"fmt"
	"regexp"
	"strings"
)

// Volatile pieces stripped from the converter output: the XML prolog and
// comments such as "<!-- This file was generated by dvisvgm ... -->".
var (
	xmlPrologRe  = regexp.MustCompile(`<\?xml[^?]*\?>\s*`)
	xmlCommentRe = regexp.MustCompile(`(?s)<!--.*?-->\s*`)
	svgRootRe    = regexp.MustCompile(`<svg\b[^>]*>`)
)

// postProcess rewrites the raw dvisvgm output into a self-contained,
// text-relative SVG: the root width and height move from absolute pt to em
// units and a vertical-align style carries the baseline offset, so the
// equation sits correctly when pasted next to text. Comments and the XML
// prolog are dropped as they vary between tool versions.
func postProcess(svg string, m svgMetrics) (string, error) {
	svg = xmlPrologRe.ReplaceAllString(svg, "")
	svg = xmlCommentRe.ReplaceAllString(svg, "")

	// Located after stripping so an <svg> inside a comment does not count.
	root := svgRootRe.FindString(svg)
	if root == "" {
		return "", fmt.Errorf("%w: missing svg root element", ErrMalformedSVG)
	}
	patched := root
	patched = setRootAttr(patched, "width", fmt.Sprintf("%.6fem", m.Width))
	patched = setRootAttr(patched, "height", fmt.Sprintf("%.6fem", m.Height))
	patched = setRootAttr(patched, "style", fmt.Sprintf("vertical-align:%.6fem", -m.Depth))

	return strings.Replace(svg, root, patched, 1), nil
}

// setRootAttr replaces attribute name within a root tag string, or inserts
// it right after "<svg" when absent. The leading whitespace requirement
// keeps "style" from matching inside e.g. "font-style".
func setRootAttr(root, name, value string) string {
	attrRe := regexp.MustCompile(`(\s)` + name + `="[^"]*"`)
	attr := fmt.Sprintf(`%s="%s"`, name, value)
	if attrRe.MatchString(root) {
		return attrRe.ReplaceAllString(root, "${1}"+attr)
	}
	return "<svg " + attr + root[len("<svg"):]
}
