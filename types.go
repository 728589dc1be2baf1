package latex2svg

// DefaultFontSize is the LaTeX font size in TeX points used when
// Input.FontSize is zero.
const DefaultFontSize = 12.0

// Optimizer selection constants.
const (
	OptimizerScour = "scour"
	OptimizerNone  = "none"
)

// Input contains conversion parameters for a single run.
type Input struct {
	Latex    string  // LaTeX math fragment (required)
	FontSize float64 // TeX pt (0 = DefaultFontSize)
	Preamble string  // extra preamble ("" = DefaultPreamble)
}

// Result holds the final SVG and its dimensions.
//
// Width, Height and Valign are in em units relative to the font size, so
// the SVG scales with the surrounding text when embedded. Valign is the
// negated baseline depth, suitable for a vertical-align style.
type Result struct {
	SVG      string
	Width    float64
	Height   float64
	Valign   float64
	Warnings []string // non-fatal notices (e.g. optimizer unavailable)
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	latexArgv   []string
	dvisvgmArgv []string
	scourArgv   []string
	optimizer   string
	libgs       string
	workDir     string
	scale       float64 // 0 = derive from font size
}

// WithRunner replaces the command runner (used by tests).
func WithRunner(r CommandRunner) Option {
	return func(s *Service) {
		s.runner = r
	}
}

// WithClipboard replaces the clipboard writer (used by tests).
func WithClipboard(w ClipboardWriter) Option {
	return func(s *Service) {
		s.clipboard = w
	}
}

// WithLatexCommand overrides the LaTeX compiler invocation.
// The first element is the binary, the rest are fixed arguments.
// Panics if argv is empty (programmer error).
func WithLatexCommand(argv ...string) Option {
	mustArgv("WithLatexCommand", argv)
	return func(s *Service) {
		s.cfg.latexArgv = argv
	}
}

// WithDvisvgmCommand overrides the DVI-to-SVG converter invocation.
// Panics if argv is empty (programmer error).
func WithDvisvgmCommand(argv ...string) Option {
	mustArgv("WithDvisvgmCommand", argv)
	return func(s *Service) {
		s.cfg.dvisvgmArgv = argv
	}
}

// WithScourCommand overrides the SVG optimizer invocation.
// Panics if argv is empty (programmer error).
func WithScourCommand(argv ...string) Option {
	mustArgv("WithScourCommand", argv)
	return func(s *Service) {
		s.cfg.scourArgv = argv
	}
}

// WithOptimizer selects the SVG optimizer: OptimizerScour (default) or
// OptimizerNone. Panics on unknown names (programmer error).
func WithOptimizer(name string) Option {
	if name != OptimizerScour && name != OptimizerNone {
		panic("latex2svg: unknown optimizer " + name)
	}
	return func(s *Service) {
		s.cfg.optimizer = name
	}
}

// WithLibgs sets the Ghostscript library path exported to dvisvgm via the
// LIBGS environment variable.
func WithLibgs(path string) Option {
	return func(s *Service) {
		s.cfg.libgs = path
	}
}

// WithWorkDir uses a fixed working directory instead of a fresh temporary
// directory per run. The directory is not removed after the run; intended
// for debugging intermediate artifacts.
func WithWorkDir(dir string) Option {
	return func(s *Service) {
		s.cfg.workDir = dir
	}
}

// WithScale overrides the dvisvgm output scale. The default scale is
// FontSize/10: the standalone preview class does not grow math with the
// class font size option, so sizing is applied at the SVG stage instead.
func WithScale(scale float64) Option {
	return func(s *Service) {
		s.cfg.scale = scale
	}
}

// mustArgv panics when an override argv has no binary name.
func mustArgv(option string, argv []string) {
	if len(argv) == 0 {
		panic("latex2svg: " + option + " requires at least a binary name")
	}
}
