package glint

import (
	"strings"
	"testing"

	"github.com/glint-gfx/glint/driver/drivertest"
)

func TestNewTriangle(t *testing.T) {
	d := drivertest.New()

	mesh, err := NewTriangle(d)
	if err != nil {
		t.Fatalf("NewTriangle() error = %v", err)
	}
	if err := mesh.Draw(); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	if !hasCall(d.CallLog(), "DrawArrays") {
		t.Error("triangle should draw unindexed via DrawArrays")
	}
	if hasCall(d.CallLog(), "DrawElements") {
		t.Error("triangle issued DrawElements without an index buffer")
	}
}

func TestNewQuad(t *testing.T) {
	d := drivertest.New()

	mesh, err := NewQuad(d)
	if err != nil {
		t.Fatalf("NewQuad() error = %v", err)
	}
	if err := mesh.Draw(); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	if !hasCall(d.CallLog(), "DrawElements") {
		t.Error("quad should draw via its index buffer")
	}
	// Four vertices, six indices.
	if !hasCall(d.CallLog(), "BufferData(0x8892, 8 floats)") {
		t.Errorf("vertex upload missing, calls: %v", d.CallLog())
	}
	if !hasCall(d.CallLog(), "BufferData(0x8893, 6 uints)") {
		t.Errorf("index upload missing, calls: %v", d.CallLog())
	}
}

func TestNewMeshRejectsBadVertices(t *testing.T) {
	d := drivertest.New()

	tests := []struct {
		name     string
		vertices []float32
	}{
		{"empty", nil},
		{"odd float count", []float32{0, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewMesh(d, tt.vertices, nil); err == nil {
				t.Error("NewMesh() error = nil, want vertex data error")
			}
		})
	}
}

func TestMeshDelete(t *testing.T) {
	d := drivertest.New()

	mesh, err := NewQuad(d)
	if err != nil {
		t.Fatalf("NewQuad() error = %v", err)
	}
	if err := mesh.Delete(); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if live := d.LiveBuffers(); len(live) != 0 {
		t.Errorf("live buffers after Delete = %v, want none", live)
	}
	// Second delete is a no-op.
	if err := mesh.Delete(); err != nil {
		t.Errorf("second Delete() error = %v, want nil", err)
	}
	if n := countCalls(d.CallLog(), "DeleteVertexArray"); n != 1 {
		t.Errorf("DeleteVertexArray issued %d times, want 1", n)
	}
}

func TestMeshAttributeSetup(t *testing.T) {
	d := drivertest.New()

	if _, err := NewTriangle(d); err != nil {
		t.Fatalf("NewTriangle() error = %v", err)
	}

	log := strings.Join(d.CallLog(), "\n")
	for _, want := range []string{"EnableVertexAttribArray(0)", "VertexAttribPointer(0, 2)"} {
		if !strings.Contains(log, want) {
			t.Errorf("mesh setup missing %s; calls:\n%s", want, log)
		}
	}
}
