package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"strconv"
	"strings"
)

// lookPath is swapped by tests to simulate missing tools.
var lookPath = exec.LookPath

// toolVersion is swapped by tests; production runs "<tool> --version".
var toolVersion = func(path string) (string, error) {
	out, err := exec.Command(path, "--version").Output() // #nosec G204 -- path comes from exec.LookPath
	if err != nil {
		return "", err
	}
	return firstLine(string(out)), nil
}

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string       `json:"status"` // "ready", "warnings", "errors"
	Tools    []toolStatus `json:"tools"`
	Env      envInfo      `json:"environment"`
	System   systemInfo   `json:"system"`
	Warnings []string     `json:"warnings,omitempty"`
	Errors   []string     `json:"errors,omitempty"`
}

// toolStatus holds detection results for one external tool.
type toolStatus struct {
	Name     string `json:"name"`
	Required bool   `json:"required"`
	Found    bool   `json:"found"`
	Path     string `json:"path,omitempty"`
	Version  string `json:"version,omitempty"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS          string `json:"os"`
	Arch        string `json:"arch"`
	Libgs       string `json:"libgs,omitempty"`
	Ghostscript string `json:"ghostscript,omitempty"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

// runDoctorCmd executes the doctor checks and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(jsonOutput bool, env *Environment) int {
	result := runDoctor()

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor() *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Env: envInfo{
			OS:    runtime.GOOS,
			Arch:  runtime.GOARCH,
			Libgs: os.Getenv("LIBGS"),
		},
	}

	checkTools(result)
	checkGhostscript(result)
	checkSystem(result)

	// Determine final status
	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkTools detects the external toolchain binaries.
func checkTools(result *doctorResult) {
	for _, tool := range []struct {
		name     string
		required bool
	}{
		{"latex", true},
		{"dvisvgm", true},
		{"scour", false},
	} {
		status := toolStatus{Name: tool.name, Required: tool.required}

		path, err := lookPath(tool.name)
		if err != nil {
			if tool.required {
				result.Errors = append(result.Errors,
					fmt.Sprintf("%s not found on PATH", tool.name))
			} else {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("%s not found on PATH; SVGs will not be minified", tool.name))
			}
			result.Tools = append(result.Tools, status)
			continue
		}

		status.Found = true
		status.Path = path
		if version, err := toolVersion(path); err == nil {
			status.Version = version
		} else {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("could not get %s version: %v", tool.name, err))
		}
		result.Tools = append(result.Tools, status)

		if tool.name == "dvisvgm" {
			warnDvisvgmVersion(result, status.Version)
		}
	}
}

var versionNumberRe = regexp.MustCompile(`\b(\d+)\.\d+`)

// warnDvisvgmVersion flags dvisvgm 3.x: its PDF input mode is known to be
// incompatible there. This tool feeds dvisvgm DVI input, which is unaffected,
// but custom dvisvgmCmd overrides using --pdf will break.
func warnDvisvgmVersion(result *doctorResult, version string) {
	match := versionNumberRe.FindStringSubmatch(version)
	if match == nil {
		return
	}
	major, err := strconv.Atoi(match[1])
	if err != nil || major < 3 {
		return
	}
	result.Warnings = append(result.Warnings,
		fmt.Sprintf("dvisvgm %d.x detected: the --pdf input mode is incompatible with this version; DVI input (the default) is unaffected", major))
}

// checkGhostscript verifies that dvisvgm can find a PostScript interpreter,
// either through LIBGS or a gs binary on PATH.
func checkGhostscript(result *doctorResult) {
	if result.Env.Libgs != "" {
		if _, err := os.Stat(result.Env.Libgs); err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("LIBGS points to %s but the file does not exist", result.Env.Libgs))
		}
		return
	}

	for _, name := range []string{"gs", "gswin64c", "gswin32c"} {
		if path, err := lookPath(name); err == nil {
			result.Env.Ghostscript = path
			return
		}
	}

	result.Warnings = append(result.Warnings,
		"no Ghostscript found (LIBGS unset, gs not on PATH); dvisvgm may fail on PostScript specials")
}

// checkSystem verifies system requirements.
func checkSystem(result *doctorResult) {
	// Check temp directory is writable
	tmpDir := os.TempDir()
	testFile := filepath.Join(tmpDir, "latex2svg-doctor-test")
	if err := os.WriteFile(testFile, []byte("test"), 0600); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Temp directory not writable: %s", tmpDir))
	} else {
		_ = os.Remove(testFile)
		result.System.TempWritable = true
	}
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "latex2svg doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Toolchain")
	for _, tool := range r.Tools {
		if tool.Found {
			fmt.Fprintf(w, "  [OK] %s: %s", tool.Name, tool.Path)
			if tool.Version != "" {
				fmt.Fprintf(w, " (%s)", tool.Version)
			}
			fmt.Fprintln(w)
		} else if tool.Required {
			fmt.Fprintf(w, "  [ERROR] %s: not found\n", tool.Name)
		} else {
			fmt.Fprintf(w, "  [WARN] %s: not found (optional)\n", tool.Name)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.Libgs != "" {
		fmt.Fprintf(w, "  [OK] LIBGS: %s\n", r.Env.Libgs)
	} else if r.Env.Ghostscript != "" {
		fmt.Fprintf(w, "  [OK] Ghostscript: %s\n", r.Env.Ghostscript)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Temp directory: not writable")
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to convert")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}

// firstLine returns the first line of s, trimmed.
func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.IndexByte(s, '\n'); idx != -1 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
