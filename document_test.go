package latex2svg

import (
	"strings"
	"testing"
)

func TestBuildDocument(t *testing.T) {
	tests := []struct {
		name     string
		latex    string
		preamble string
		fontSize float64
		want     []string
		absent   []string
	}{
		{
			name:     "fragment wrapped in preview environment",
			latex:    `$E = mc^2$`,
			fontSize: 12,
			want: []string{
				`\documentclass[12pt,preview]{standalone}`,
				"\\begin{preview}\n$E = mc^2$\n\\end{preview}",
			},
		},
		{
			name:     "default preamble used when empty",
			latex:    `$x$`,
			fontSize: 12,
			want:     []string{`\usepackage[T1]{fontenc}`, `\usepackage[utf8]{inputenc}`},
		},
		{
			name:     "custom preamble replaces default",
			latex:    `$x$`,
			preamble: `\usepackage{mathrsfs}`,
			fontSize: 12,
			want:     []string{`\usepackage{mathrsfs}`},
			absent:   []string{`\usepackage[T1]{fontenc}`},
		},
		{
			name:     "font size reflected in class options",
			latex:    `$x$`,
			fontSize: 16,
			want:     []string{`\documentclass[16pt,preview]{standalone}`},
		},
		{
			name:     "fractional font size kept without trailing zero",
			latex:    `$x$`,
			fontSize: 10.5,
			want:     []string{`\documentclass[10.5pt,preview]{standalone}`},
		},
		{
			name:     "no placeholders remain",
			latex:    `$x$`,
			fontSize: 12,
			absent:   []string{"{{ fontsize }}", "{{ preamble }}", "{{ code }}"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildDocument(tt.latex, tt.preamble, tt.fontSize)

			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("expected document to contain %q, got:\n%s", want, got)
				}
			}
			for _, absent := range tt.absent {
				if strings.Contains(got, absent) {
					t.Errorf("expected document not to contain %q, got:\n%s", absent, got)
				}
			}
		})
	}
}

func TestBuildDocument_Deterministic(t *testing.T) {
	first := BuildDocument(`$\sum_{i=0}^n i$`, "", 14)
	second := BuildDocument(`$\sum_{i=0}^n i$`, "", 14)
	if first != second {
		t.Error("expected identical documents for identical inputs")
	}
}
