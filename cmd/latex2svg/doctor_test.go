package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os/exec"
	"strings"
	"testing"
)

// withFakeTools swaps the tool lookups for the duration of a test.
func withFakeTools(t *testing.T, paths map[string]string, versions map[string]string) {
	t.Helper()
	origLook, origVersion := lookPath, toolVersion
	t.Cleanup(func() {
		lookPath, toolVersion = origLook, origVersion
	})
	t.Setenv("LIBGS", "")

	lookPath = func(name string) (string, error) {
		if path, ok := paths[name]; ok {
			return path, nil
		}
		return "", exec.ErrNotFound
	}
	toolVersion = func(path string) (string, error) {
		if v, ok := versions[path]; ok {
			return v, nil
		}
		return "", errors.New("no version")
	}
}

func TestRunDoctor_AllToolsPresent(t *testing.T) {
	withFakeTools(t,
		map[string]string{
			"latex":   "/usr/bin/latex",
			"dvisvgm": "/usr/bin/dvisvgm",
			"scour":   "/usr/bin/scour",
			"gs":      "/usr/bin/gs",
		},
		map[string]string{
			"/usr/bin/latex":   "pdfTeX 3.141592653-2.6-1.40.25 (TeX Live 2023)",
			"/usr/bin/dvisvgm": "dvisvgm 2.14",
			"/usr/bin/scour":   "scour 0.38.2",
		})

	result := runDoctor()

	if result.Status != "ready" {
		t.Errorf("expected status ready, got %q (warnings: %v, errors: %v)",
			result.Status, result.Warnings, result.Errors)
	}
	if len(result.Tools) != 3 {
		t.Fatalf("expected 3 tools, got %d", len(result.Tools))
	}
	for _, tool := range result.Tools {
		if !tool.Found {
			t.Errorf("expected %s to be found", tool.Name)
		}
	}
	if result.Env.Ghostscript != "/usr/bin/gs" {
		t.Errorf("expected Ghostscript detection, got %q", result.Env.Ghostscript)
	}
}

func TestRunDoctor_MissingRequiredTool(t *testing.T) {
	withFakeTools(t,
		map[string]string{"latex": "/usr/bin/latex", "gs": "/usr/bin/gs"},
		map[string]string{"/usr/bin/latex": "pdfTeX 3.14"})

	result := runDoctor()

	if result.Status != "errors" {
		t.Errorf("expected status errors, got %q", result.Status)
	}
	if !containsSubstring(result.Errors, "dvisvgm not found") {
		t.Errorf("expected dvisvgm error, got %v", result.Errors)
	}
	// scour is optional: missing is only a warning
	if !containsSubstring(result.Warnings, "scour not found") {
		t.Errorf("expected scour warning, got %v", result.Warnings)
	}
}

func TestRunDoctor_Dvisvgm3Warning(t *testing.T) {
	withFakeTools(t,
		map[string]string{
			"latex":   "/usr/bin/latex",
			"dvisvgm": "/usr/bin/dvisvgm",
			"scour":   "/usr/bin/scour",
			"gs":      "/usr/bin/gs",
		},
		map[string]string{
			"/usr/bin/latex":   "pdfTeX 3.14",
			"/usr/bin/dvisvgm": "dvisvgm 3.1.2",
			"/usr/bin/scour":   "scour 0.38.2",
		})

	result := runDoctor()

	if result.Status != "warnings" {
		t.Errorf("expected status warnings, got %q", result.Status)
	}
	if !containsSubstring(result.Warnings, "--pdf input mode") {
		t.Errorf("expected dvisvgm 3.x warning, got %v", result.Warnings)
	}
}

func TestRunDoctor_NoGhostscript(t *testing.T) {
	withFakeTools(t,
		map[string]string{
			"latex":   "/usr/bin/latex",
			"dvisvgm": "/usr/bin/dvisvgm",
			"scour":   "/usr/bin/scour",
		},
		map[string]string{
			"/usr/bin/latex":   "pdfTeX 3.14",
			"/usr/bin/dvisvgm": "dvisvgm 2.14",
			"/usr/bin/scour":   "scour 0.38.2",
		})

	result := runDoctor()

	if !containsSubstring(result.Warnings, "no Ghostscript found") {
		t.Errorf("expected Ghostscript warning, got %v", result.Warnings)
	}
}

func TestRunDoctorCmd_JSONOutput(t *testing.T) {
	withFakeTools(t,
		map[string]string{
			"latex":   "/usr/bin/latex",
			"dvisvgm": "/usr/bin/dvisvgm",
			"scour":   "/usr/bin/scour",
			"gs":      "/usr/bin/gs",
		},
		map[string]string{
			"/usr/bin/latex":   "pdfTeX 3.14",
			"/usr/bin/dvisvgm": "dvisvgm 2.14",
			"/usr/bin/scour":   "scour 0.38.2",
		})

	env, stdout, _ := testEnv()
	code := runDoctorCmd(true, env)
	if code != ExitSuccess {
		t.Fatalf("expected exit 0, got %d", code)
	}

	var result doctorResult
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		t.Fatalf("expected valid JSON, got error %v:\n%s", err, stdout)
	}
	if len(result.Tools) != 3 {
		t.Errorf("expected 3 tools in JSON, got %d", len(result.Tools))
	}
}

func TestPrintDoctorResult(t *testing.T) {
	var buf bytes.Buffer
	printDoctorResult(&buf, &doctorResult{
		Status: "errors",
		Tools: []toolStatus{
			{Name: "latex", Required: true, Found: true, Path: "/usr/bin/latex", Version: "pdfTeX 3.14"},
			{Name: "dvisvgm", Required: true, Found: false},
			{Name: "scour", Required: false, Found: false},
		},
		Env:    envInfo{OS: "linux", Arch: "amd64", Libgs: "/usr/lib/libgs.so"},
		System: systemInfo{TempWritable: true},
		Errors: []string{"dvisvgm not found on PATH"},
	})

	out := buf.String()
	for _, want := range []string{
		"[OK] latex: /usr/bin/latex (pdfTeX 3.14)",
		"[ERROR] dvisvgm: not found",
		"[WARN] scour: not found (optional)",
		"LIBGS: /usr/lib/libgs.so",
		"Status: Not ready",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestFirstLine(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"dvisvgm 2.14\nCopyright (C) 2005-2022", "dvisvgm 2.14"},
		{"  single line  ", "single line"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := firstLine(tt.input); got != tt.want {
			t.Errorf("firstLine(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestWarnDvisvgmVersion(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		wantWarn bool
	}{
		{"version 2 fine", "dvisvgm 2.14", false},
		{"version 3 warns", "dvisvgm 3.0", true},
		{"version 4 warns", "dvisvgm 4.0.1", true},
		{"unparseable ignored", "dvisvgm unknown", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := &doctorResult{}
			warnDvisvgmVersion(result, tt.version)
			if got := len(result.Warnings) > 0; got != tt.wantWarn {
				t.Errorf("expected warn=%v for %q, got %v", tt.wantWarn, tt.version, result.Warnings)
			}
		})
	}
}

func containsSubstring(items []string, substr string) bool {
	for _, item := range items {
		if strings.Contains(item, substr) {
			return true
		}
	}
	return false
}
