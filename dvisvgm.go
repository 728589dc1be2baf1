package latex2svg

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

// defaultDvisvgmArgv embeds no fonts (paths only, required for editor paste)
// and computes the exact glyph bounding box.
func defaultDvisvgmArgv() []string {
	return []string{"dvisvgm", "--no-fonts", "--exact-bbox"}
}

// texToDTP converts TeX points (1/72.27") to DTP points (1/72"). dvisvgm
// produces a viewBox in DTP pt but reports sizes in TeX pt.
const texToDTP = 1.00375

// svgConverter abstracts the DVI-to-SVG conversion stage.
type svgConverter interface {
	Convert(ctx context.Context, dir, dviFile string, scale float64) (report string, err error)
}

// dvisvgmConverter invokes the external dvisvgm tool. dvisvgm may need a
// Ghostscript library to process PostScript specials; when libgs is set it
// is forwarded through the LIBGS environment variable.
type dvisvgmConverter struct {
	runner CommandRunner
	argv   []string
	libgs  string
}

func newDvisvgmConverter(runner CommandRunner, argv []string, libgs string) *dvisvgmConverter {
	if len(argv) == 0 {
		argv = defaultDvisvgmArgv()
	}
	return &dvisvgmConverter{runner: runner, argv: argv, libgs: libgs}
}

// Convert runs dvisvgm on dviFile inside dir, producing an SVG next to it.
// It returns dvisvgm's stderr report, which carries the size and depth
// measurements parsed by parseMetrics.
func (c *dvisvgmConverter) Convert(ctx context.Context, dir, dviFile string, scale float64) (string, error) {
	args := append(append([]string{}, c.argv[1:]...), fmt.Sprintf("--scale=%f", scale), dviFile)

	var extraEnv []string
	if c.libgs != "" {
		extraEnv = []string{"LIBGS=" + c.libgs}
	}

	stdout, stderr, err := c.runner.Run(ctx, dir, extraEnv, c.argv[0], args...)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%w: %s", ErrDvisvgmNotFound, c.argv[0])
		}
		return "", fmt.Errorf("%w: %s", ErrDvisvgmConvert, strings.TrimSpace(toolOutput(stdout, stderr)))
	}
	return stderr, nil
}

// svgMetrics holds the output dimensions in em units.
type svgMetrics struct {
	Width  float64
	Height float64
	Depth  float64 // baseline depth; 0 when dvisvgm reports none
}

// Size and depth patterns in the dvisvgm report, e.g.
// "  graphic size: 113.240692pt x 14.174778pt" and "depth=4.289152pt".
var (
	sizeRe  = regexp.MustCompile(`\b([0-9.]+)pt x ([0-9.]+)pt`)
	depthRe = regexp.MustCompile(`\bdepth=([0-9.e-]+)pt`)
)

// parseMetrics extracts width, height and depth from the dvisvgm report and
// converts them from TeX pt to em units at the given font size. A report
// without a size line is an error: publishing a zero-size SVG would put an
// invisible equation on the clipboard. A missing depth only means the
// equation has no descender and stays 0.
func parseMetrics(report string, fontSize float64) (svgMetrics, error) {
	var m svgMetrics
	match := sizeRe.FindStringSubmatch(report)
	if match == nil {
		return m, fmt.Errorf("%w: no size report in converter output", ErrDvisvgmConvert)
	}
	m.Width = toEm(match[1], fontSize)
	m.Height = toEm(match[2], fontSize)
	if match := depthRe.FindStringSubmatch(report); match != nil {
		m.Depth = toEm(match[1], fontSize)
	}
	return m, nil
}

// toEm converts a TeX pt measurement to em units at fontSize.
func toEm(texPt string, fontSize float64) float64 {
	v, err := strconv.ParseFloat(texPt, 64)
	if err != nil {
		return 0
	}
	return v / fontSize * texToDTP
}
