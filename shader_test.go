package glint

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseTwoSections(t *testing.T) {
	asset := `#shader vertex
line v1
line v2
line v3
#shader fragment
line f1
line f2
`
	src, err := Parse(strings.NewReader(asset))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	wantVertex := "line v1\nline v2\nline v3\n"
	if src.Vertex != wantVertex {
		t.Errorf("Vertex = %q, want %q", src.Vertex, wantVertex)
	}
	wantFragment := "line f1\nline f2\n"
	if src.Fragment != wantFragment {
		t.Errorf("Fragment = %q, want %q", src.Fragment, wantFragment)
	}
}

func TestParseDropsLinesBeforeMarker(t *testing.T) {
	asset := `// stray comment
stray line
#shader vertex
kept
`
	src, err := Parse(strings.NewReader(asset))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if src.Vertex != "kept\n" {
		t.Errorf("Vertex = %q, want %q", src.Vertex, "kept\n")
	}
	if src.Fragment != "" {
		t.Errorf("Fragment = %q, want empty", src.Fragment)
	}
	if strings.Contains(src.Vertex, "stray") {
		t.Error("lines before the first marker leaked into the vertex buffer")
	}
}

// A marker with an unrecognized stage name leaves the current section
// unchanged; following lines keep accumulating into it.
func TestParseUnrecognizedStageName(t *testing.T) {
	asset := `#shader vertex
v line
#shader geometry
still vertex
#shader fragment
f line
`
	src, err := Parse(strings.NewReader(asset))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	wantVertex := "v line\nstill vertex\n"
	if src.Vertex != wantVertex {
		t.Errorf("Vertex = %q, want %q", src.Vertex, wantVertex)
	}
	if src.Fragment != "f line\n" {
		t.Errorf("Fragment = %q, want %q", src.Fragment, "f line\n")
	}
}

func TestParseEmptyInput(t *testing.T) {
	src, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if src.Vertex != "" || src.Fragment != "" {
		t.Errorf("Parse(empty) = %+v, want empty buffers", src)
	}
}

func TestParseSingleSection(t *testing.T) {
	src, err := Parse(strings.NewReader("#shader fragment\nonly\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if src.Vertex != "" {
		t.Errorf("Vertex = %q, want empty", src.Vertex)
	}
	if src.Fragment != "only\n" {
		t.Errorf("Fragment = %q, want %q", src.Fragment, "only\n")
	}
}

func TestNextStage(t *testing.T) {
	tests := []struct {
		name       string
		cur        stage
		line       string
		want       stage
		wantMarker bool
	}{
		{"plain line keeps state", stageVertex, "gl_Position = position;", stageVertex, false},
		{"vertex marker", stageNone, "#shader vertex", stageVertex, true},
		{"fragment marker", stageVertex, "#shader fragment", stageFragment, true},
		{"unknown name keeps state", stageFragment, "#shader geometry", stageFragment, true},
		{"unknown name from none", stageNone, "#shader compute", stageNone, true},
		{"marker not at line start", stageNone, "  #shader vertex", stageVertex, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, marker := nextStage(tt.cur, tt.line)
			if got != tt.want || marker != tt.wantMarker {
				t.Errorf("nextStage(%v, %q) = (%v, %v), want (%v, %v)",
					tt.cur, tt.line, got, marker, tt.want, tt.wantMarker)
			}
		})
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "basic.shader")
	asset := "#shader vertex\nv\n#shader fragment\nf\n"
	if err := os.WriteFile(path, []byte(asset), 0o644); err != nil {
		t.Fatal(err)
	}

	src, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if src.Vertex != "v\n" || src.Fragment != "f\n" {
		t.Errorf("ParseFile() = %+v, want v/f buffers", src)
	}
}

func TestParseFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.shader")
	_, err := ParseFile(path)
	if err == nil {
		t.Fatal("ParseFile() error = nil, want error for missing file")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q does not name the path %q", err, path)
	}
}

func TestParseBundledAsset(t *testing.T) {
	src, err := ParseFile("assets/basic.shader")
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if !strings.Contains(src.Vertex, "gl_Position") {
		t.Error("bundled vertex stage missing gl_Position")
	}
	if !strings.Contains(src.Fragment, "u_Color") {
		t.Error("bundled fragment stage missing u_Color")
	}
	if strings.Contains(src.Vertex, shaderMarker) || strings.Contains(src.Fragment, shaderMarker) {
		t.Error("marker lines leaked into stage buffers")
	}
}
