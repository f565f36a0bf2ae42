package opengl

import (
	"errors"
	"image"
	"image/jpeg"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/nkdemo"
)

func TestLoadShaderSources(t *testing.T) {
	vert, frag, err := LoadShaderSources(filepath.Join("..", "..", "shaders"))
	if err != nil {
		t.Fatalf("LoadShaderSources() error = %v", err)
	}
	if !strings.Contains(vert, "uniform mat4 mvpMatrix") || !strings.Contains(vert, "in vec3 position") {
		t.Errorf("vertex shader missing mvpMatrix or position:\n%s", vert)
	}
	if !strings.Contains(frag, "#version 330 core") {
		t.Errorf("fragment shader is not GLSL 330 core:\n%s", frag)
	}
}

func TestLoadShaderSourcesMissingFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, VertexShaderFile), []byte("void main() {}"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := LoadShaderSources(dir)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("error = %v, want not-exist", err)
	}
	if !strings.Contains(err.Error(), "fragment") {
		t.Errorf("error %q does not name the fragment shader", err)
	}
}

func TestKeyMappingRoundTrip(t *testing.T) {
	for k := nkdemo.KeyUp; k < nkdemo.KeyCount; k++ {
		g, ok := guiKeyToGLFW(k)
		if !ok {
			t.Errorf("%v has no GLFW key", k)
			continue
		}
		if back := glfwKeyToGUIKey(g); back != k {
			t.Errorf("%v -> %v -> %v", k, g, back)
		}
	}
	if _, ok := guiKeyToGLFW(nkdemo.KeyNone); ok {
		t.Error("KeyNone mapped to a GLFW key")
	}
	if k := glfwKeyToGUIKey(glfw.KeySpace); k != nkdemo.KeyNone {
		t.Errorf("space = %v, want none", k)
	}
}

func TestEscapePostsClose(t *testing.T) {
	q := nkdemo.NewIntents()
	w := &Window{intents: q}

	w.keyCallback(nil, glfw.KeyUp, 0, glfw.Press, 0)
	w.keyCallback(nil, glfw.KeyEscape, 0, glfw.Release, 0)
	if q.Len() != 0 {
		t.Fatalf("queued %d intents for non-escape presses", q.Len())
	}

	w.keyCallback(nil, glfw.KeyEscape, 0, glfw.Press, 0)
	var got []nkdemo.Intent
	q.Drain(func(i nkdemo.Intent) { got = append(got, i) })
	if len(got) != 1 || got[0] != nkdemo.IntentClose {
		t.Errorf("intents = %v, want [close]", got)
	}
}

func TestTriangleVertices(t *testing.T) {
	if n := len(triangleVertices) / floatsPerVertex; n != 3 {
		t.Fatalf("%d vertices, want 3", n)
	}
	if len(triangleVertices)%floatsPerVertex != 0 {
		t.Error("vertex data is not a whole number of vertices")
	}
	for i := 2; i < len(triangleVertices); i += floatsPerVertex {
		if triangleVertices[i] != 0 {
			t.Errorf("vertex %d has z = %v, want 0", i/floatsPerVertex, triangleVertices[i])
		}
	}
}

func TestNullTerminated(t *testing.T) {
	tests := map[string]string{
		"":         "\x00",
		"void":     "void\x00",
		"void\x00": "void\x00",
		"a\x00b":   "a\x00b\x00",
	}
	for in, want := range tests {
		if got := nullTerminated(in); got != want {
			t.Errorf("nullTerminated(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFlipRows(t *testing.T) {
	pix := []byte{
		1, 1,
		2, 2,
		3, 3,
	}
	FlipRows(pix, 2, 3)
	want := []byte{3, 3, 2, 2, 1, 1}
	for i := range want {
		if pix[i] != want[i] {
			t.Fatalf("FlipRows = %v, want %v", pix, want)
		}
	}
}

func TestWriteJPEG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	path := filepath.Join(t.TempDir(), "shot.jpg")
	if err := WriteJPEG(path, img); err != nil {
		t.Fatalf("WriteJPEG() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := jpeg.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Bounds() != img.Bounds() {
		t.Errorf("bounds = %v, want %v", got.Bounds(), img.Bounds())
	}
}

func TestWriteJPEGBadPath(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	if err := WriteJPEG(filepath.Join(t.TempDir(), "missing", "shot.jpg"), img); err == nil {
		t.Error("expected error for a missing directory")
	}
}
