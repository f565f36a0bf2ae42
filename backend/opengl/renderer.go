// Package opengl provides the GLFW window and the OpenGL 4.1 scene renderer
// for the demo.
package opengl

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Shader file names inside the shader directory.
const (
	VertexShaderFile   = "triangle.vert"
	FragmentShaderFile = "triangle.frag"
)

const floatsPerVertex = 3

// triangleVertices is the model-space triangle.
var triangleVertices = []float32{
	-0.6, -0.4, 0.0,
	0.6, -0.4, 0.0,
	0.0, 0.6, 0.0,
}

// Renderer clears the framebuffer and draws the triangle.
// It implements nkdemo.Scene.
type Renderer struct {
	triangle *Triangle
}

// NewRenderer compiles the triangle shaders found in shaderDir and uploads
// its vertices. A current OpenGL context is required.
func NewRenderer(shaderDir string) (*Renderer, error) {
	t := &Triangle{}
	if err := t.PrepareToRender(shaderDir); err != nil {
		return nil, err
	}
	return &Renderer{triangle: t}, nil
}

// Clear sets the viewport and clears color and depth.
// Depth state is set every frame because the GUI pass disables it.
func (r *Renderer) Clear(width, height int, color [4]float32) {
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.ClearDepth(1.0)
	gl.ClearColor(color[0], color[1], color[2], color[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw renders the triangle.
func (r *Renderer) Draw(mvp mgl32.Mat4) {
	r.triangle.Render(mvp)
}

// Delete releases OpenGL resources.
func (r *Renderer) Delete() {
	if r.triangle != nil {
		r.triangle.Delete()
	}
}

// Triangle owns the GPU handles for the rotating triangle.
type Triangle struct {
	vao, vbo    uint32
	program     uint32
	mvpLoc      int32
	vertexCount int32
}

// PrepareToRender does the one-time GPU setup: shaders, uniform lookup and
// vertex upload.
func (t *Triangle) PrepareToRender(shaderDir string) (err error) {
	vert, frag, err := LoadShaderSources(shaderDir)
	if err != nil {
		return err
	}

	t.program, err = createShaderProgram(vert, frag)
	if err != nil {
		return fmt.Errorf("triangle shader: %w", err)
	}
	defer func() {
		if err != nil {
			t.Delete()
		}
	}()

	t.mvpLoc = gl.GetUniformLocation(t.program, gl.Str("mvpMatrix\x00"))
	if t.mvpLoc < 0 {
		return fmt.Errorf("triangle shader: uniform mvpMatrix not found")
	}
	position := gl.GetAttribLocation(t.program, gl.Str("position\x00"))
	if position < 0 {
		return fmt.Errorf("triangle shader: attribute position not found")
	}

	t.vertexCount = int32(len(triangleVertices) / floatsPerVertex)

	gl.GenVertexArrays(1, &t.vao)
	gl.BindVertexArray(t.vao)

	gl.GenBuffers(1, &t.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, t.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(triangleVertices)*4, gl.Ptr(triangleVertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(uint32(position))
	gl.VertexAttribPointerWithOffset(uint32(position), floatsPerVertex, gl.FLOAT, false, 0, 0)

	// Reset VAO/VBO to default
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return nil
}

// Render draws the triangle with the given model-view-projection matrix.
// mgl32 matrices are column-major, which is what GL expects untransposed.
func (t *Triangle) Render(mvp mgl32.Mat4) {
	gl.UseProgram(t.program)
	gl.BindVertexArray(t.vao)
	gl.UniformMatrix4fv(t.mvpLoc, 1, false, &mvp[0])
	gl.DrawArrays(gl.TRIANGLES, 0, t.vertexCount)
	gl.BindVertexArray(0)
}

// Delete releases OpenGL resources.
func (t *Triangle) Delete() {
	if t.vbo != 0 {
		gl.DeleteBuffers(1, &t.vbo)
		t.vbo = 0
	}
	if t.vao != 0 {
		gl.DeleteVertexArrays(1, &t.vao)
		t.vao = 0
	}
	if t.program != 0 {
		gl.DeleteProgram(t.program)
		t.program = 0
	}
}

// LoadShaderSources reads the vertex and fragment shader sources from dir.
func LoadShaderSources(dir string) (vertex, fragment string, err error) {
	vb, err := os.ReadFile(filepath.Join(dir, VertexShaderFile))
	if err != nil {
		return "", "", fmt.Errorf("read vertex shader: %w", err)
	}
	fb, err := os.ReadFile(filepath.Join(dir, FragmentShaderFile))
	if err != nil {
		return "", "", fmt.Errorf("read fragment shader: %w", err)
	}
	return string(vb), string(fb), nil
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader compilation failed: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment shader compilation failed: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("shader program linking failed: %s", string(log))
	}

	// Shaders are linked into the program now; the deferred deletes only
	// drop our references.
	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)

	return program, nil
}

func compileShader(source string, kind uint32) (uint32, error) {
	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(nullTerminated(source))
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s", string(log))
	}
	return shader, nil
}

func nullTerminated(s string) string {
	if len(s) > 0 && s[len(s)-1] == 0 {
		return s
	}
	return s + "\x00"
}
