package latex2svg

import (
	"errors"
	"strings"
	"testing"
)

// rawSVG mimics raw dvisvgm output: prolog, generator comment, pt units.
const rawSVG = `<?xml version='1.0' encoding='UTF-8'?>
<!-- This file was generated by dvisvgm 2.14 -->
<svg version='1.1' xmlns='http://www.w3.org/2000/svg' xmlns:xlink='http://www.w3.org/1999/xlink' width="113.705417pt" height="14.232951pt" viewBox="-0.239051 -9.943794 113.705417 14.232951">
<g id='page1'>
<path d='M10 0H0V10H10Z'/>
</g>
</svg>`

func TestPostProcess(t *testing.T) {
	metrics := svgMetrics{Width: 9.472, Height: 1.186, Depth: 0.359}

	got, err := postProcess(rawSVG, metrics)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		`width="9.472000em"`,
		`height="1.186000em"`,
		`style="vertical-align:-0.359000em"`,
		`xmlns='http://www.w3.org/2000/svg'`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, got)
		}
	}

	for _, absent := range []string{
		"<?xml",
		"<!--",
		`width="113.705417pt"`,
		`height="14.232951pt"`,
	} {
		if strings.Contains(got, absent) {
			t.Errorf("expected output not to contain %q, got:\n%s", absent, got)
		}
	}

	// viewBox must survive untouched so the drawing still scales.
	if !strings.Contains(got, `viewBox="-0.239051 -9.943794 113.705417 14.232951"`) {
		t.Errorf("expected viewBox to be preserved, got:\n%s", got)
	}
}

func TestPostProcess_InsertsMissingAttributes(t *testing.T) {
	minimal := `<svg xmlns='http://www.w3.org/2000/svg'><path d='M0 0'/></svg>`

	got, err := postProcess(minimal, svgMetrics{Width: 1, Height: 2, Depth: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		`width="1.000000em"`,
		`height="2.000000em"`,
		`style="vertical-align:-0.000000em"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, got)
		}
	}
}

func TestPostProcess_MalformedSVG(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"no svg root", "<html><body>not svg</body></html>"},
		{"comment only", "<!-- generated -->"},
		{"svg root only inside a comment", "<!-- <svg foo='1'> -->"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := postProcess(tt.input, svgMetrics{})
			if !errors.Is(err, ErrMalformedSVG) {
				t.Errorf("expected ErrMalformedSVG, got %v", err)
			}
		})
	}
}

func TestSetRootAttr(t *testing.T) {
	tests := []struct {
		name  string
		root  string
		attr  string
		value string
		want  string
	}{
		{
			name:  "replaces existing attribute",
			root:  `<svg width="10pt" height="5pt">`,
			attr:  "width",
			value: "1em",
			want:  `<svg width="1em" height="5pt">`,
		},
		{
			name:  "inserts missing attribute after the tag name",
			root:  `<svg viewBox="0 0 1 1">`,
			attr:  "style",
			value: "vertical-align:0em",
			want:  `<svg style="vertical-align:0em" viewBox="0 0 1 1">`,
		},
		{
			name:  "does not match attribute name suffixes",
			root:  `<svg font-style="italic">`,
			attr:  "style",
			value: "x",
			want:  `<svg style="x" font-style="italic">`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := setRootAttr(tt.root, tt.attr, tt.value); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
