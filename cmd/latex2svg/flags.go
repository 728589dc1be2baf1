package main

import (
	"os"
	"strings"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the latex2svg command.
type cliFlags struct {
	fontSize    float64
	fontSizeSet bool // --font-size explicitly given (flag wins over config)
	config      string
	output      string
	toStdout    bool
	noClipboard bool
	quiet       bool
	verbose     bool
	version     bool
	doctor      bool
	jsonOutput  bool
}

// normalizeFlagName aliases the historical --fs spelling to --font-size.
func normalizeFlagName(f *flag.FlagSet, name string) flag.NormalizedName {
	if name == "fs" {
		name = "font-size"
	}
	return flag.NormalizedName(name)
}

// rewriteFontSizeFlag maps the single-dash -fs spelling to --font-size.
// pflag would otherwise read -fs as the clustered shorthands -f -s.
func rewriteFontSizeFlag(args []string) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		switch {
		case arg == "-fs":
			out[i] = "--font-size"
		case strings.HasPrefix(arg, "-fs="):
			out[i] = "--font-size=" + arg[len("-fs="):]
		default:
			out[i] = arg
		}
	}
	return out
}

// parseFlags parses command-line flags and returns the remaining positional
// arguments (the LaTeX fragments).
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("latex2svg", flag.ContinueOnError)
	fs.SetNormalizeFunc(normalizeFlagName)
	f := &cliFlags{}

	fs.Float64VarP(&f.fontSize, "font-size", "s", 0, "LaTeX font size in pt (default 12)")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.output, "output", "o", "", "also write the SVG to a file")
	fs.BoolVar(&f.toStdout, "stdout", false, "print the SVG to standard output")
	fs.BoolVar(&f.noClipboard, "no-clipboard", false, "skip the clipboard stage")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show pipeline details")
	fs.BoolVar(&f.version, "version", false, "show version information")
	fs.BoolVar(&f.doctor, "doctor", false, "check the external toolchain and exit")
	fs.BoolVar(&f.jsonOutput, "json", false, "doctor output as JSON")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(rewriteFontSizeFlag(args)); err != nil {
		return nil, nil, err
	}

	f.fontSizeSet = fs.Changed("font-size")
	return f, fs.Args(), nil
}
