// Package glrender draws a triangle strip ribbon with OpenGL.
// All functions must be called from the thread owning the current GL context.
package glrender

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/all-core/gl"
	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/glgl/v4.6-core/glgl"
	"github.com/soypat/hilbert"
	"github.com/soypat/hilbert/viewport"
)

//go:embed hilbert.glsl
var embeddedShader string

// Names of the uniforms the shader program is expected to declare.
const (
	UniformScale       = "uScale"
	UniformTranslate   = "uTranslate"
	UniformResolution  = "u_resolution"
	UniformNumSegments = "uNumSegments"
)

// DefaultShader returns the embedded combined vertex and fragment program.
func DefaultShader() io.Reader {
	return strings.NewReader(embeddedShader)
}

// Uniforms are the per-frame shader parameters.
type Uniforms struct {
	Scale      float32
	Translate  ms2.Vec
	Resolution ms2.Vec
}

// NewUniforms returns the uniforms drawing state v in a framebuffer of width×height pixels.
func NewUniforms(v viewport.State, width, height int) Uniforms {
	return Uniforms{
		Scale:      v.Scale,
		Translate:  v.Translate,
		Resolution: ms2.Vec{X: float32(width), Y: float32(height)},
	}
}

// Renderer owns the GL program and vertex buffer of an uploaded strip.
type Renderer struct {
	prog     glgl.Program
	vao      glgl.VertexArray
	vbo      glgl.VertexBuffer
	count    int32
	segments int

	locScale, locTranslate, locResolution int32
}

// attribPos is the vertex shader input fed with strip vertices.
const attribPos = "aPos"

// stripLayout describes a Strip buffer to the vertex array: one vec2 of
// float32 per vertex, tightly packed.
func stripLayout(prog glgl.Program) glgl.AttribLayout {
	return glgl.AttribLayout{
		Program: prog,
		Type:    gl.FLOAT,
		Name:    attribPos + "\x00",
		Packing: 2,
		Stride:  int(unsafe.Sizeof(ms2.Vec{})),
	}
}

// NewRenderer compiles the combined GLSL program read from shaderSource and
// uploads strip to a static vertex buffer. The strip is not retained.
func NewRenderer(shaderSource io.Reader, strip hilbert.Strip) (*Renderer, error) {
	if len(strip) < 3 {
		return nil, errors.New("triangle strip needs at least 3 vertices")
	}
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initializing GL: %w", err)
	}
	combinedSource, err := glgl.ParseCombined(shaderSource)
	if err != nil {
		return nil, fmt.Errorf("parsing shader: %w", err)
	}
	prog, err := glgl.CompileProgram(combinedSource)
	if err != nil {
		return nil, fmt.Errorf("compiling shader: %w", err)
	}
	prog.Bind()
	r := &Renderer{
		prog:     prog,
		count:    int32(len(strip)),
		segments: hilbert.NumSegments(strip),
	}
	// glgl only sets float uniforms by name, vec2 and int uniforms are set
	// through locations queried from the bound program.
	var id int32
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &id)
	// Unused uniforms may be optimized out, their location is then -1
	// and setting them is a no-op.
	loc := func(name string) int32 { return gl.GetUniformLocation(uint32(id), gl.Str(name+"\x00")) }
	r.locScale = loc(UniformScale)
	r.locTranslate = loc(UniformTranslate)
	r.locResolution = loc(UniformResolution)
	gl.Uniform1i(loc(UniformNumSegments), int32(r.segments))

	r.vao = glgl.NewVAO()
	r.vbo, err = glgl.NewVertexBuffer(glgl.StaticDraw, []ms2.Vec(strip))
	if err != nil {
		prog.Delete()
		return nil, fmt.Errorf("uploading strip: %w", err)
	}
	if err = r.vao.AddAttribute(r.vbo, stripLayout(prog)); err != nil {
		r.Delete()
		return nil, fmt.Errorf("adding attribute %s: %w", attribPos, err)
	}
	if err = glgl.Err(); err != nil {
		r.Delete()
		return nil, err
	}
	return r, nil
}

// NumSegments returns the number of curve segments of the uploaded strip.
func (r *Renderer) NumSegments() int { return r.segments }

// Draw clears the framebuffer and draws the strip with uniforms u.
func (r *Renderer) Draw(u Uniforms) {
	gl.Clear(gl.COLOR_BUFFER_BIT)
	r.prog.Bind()
	gl.Uniform1f(r.locScale, u.Scale)
	gl.Uniform2f(r.locTranslate, u.Translate.X, u.Translate.Y)
	gl.Uniform2f(r.locResolution, u.Resolution.X, u.Resolution.Y)
	r.vao.Bind()
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, r.count)
}

// Delete releases the program and vertex buffer owned by r. The vertex
// array name is released with the context. r must not be used afterwards.
func (r *Renderer) Delete() {
	r.vao.Unbind()
	r.vbo.Delete()
	r.prog.Delete()
	*r = Renderer{}
}
