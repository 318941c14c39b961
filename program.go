package main

import (
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// Vertex attribute slots of the textured and solid pipelines. Vertex
// buffers must interleave their data to match these exactly; a mismatch
// binds attributes to the wrong slot and renders garbage without any GL
// error, which is why newProgram verifies the resolved locations.
const (
	positionSlot = 0
	texCoordSlot = 1
)

// Program wraps a linked GL program and caches its uniform locations.
type Program struct {
	id       uint32
	uniforms map[string]int32
}

func compileShader(source string, stage uint32) (uint32, error) {
	shader := gl.CreateShader(stage)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		logText := strings.Repeat("\x00", int(logLen)+1)
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(logText))
		gl.DeleteShader(shader)
		return 0, errors.Errorf("compile shader: %s", strings.TrimRight(logText, "\x00"))
	}
	return shader, nil
}

// newProgram compiles and links a vertex/fragment pair. attribs maps
// attribute names to the slots they must resolve to, uniforms lists the
// names that must survive linking. Both are checked after the link so a
// contract violation fails loudly at initialization instead of drawing
// garbage later. GetUniformLocation returns -1 both for a missing name and
// for one the driver optimized out; either breaks the contract, so both
// are fatal here.
func newProgram(vsource, fsource string, attribs map[string]uint32, uniforms []string) (*Program, error) {
	vs, err := compileShader(vsource, gl.VERTEX_SHADER)
	if err != nil {
		return nil, errors.Wrap(err, "vertex")
	}
	defer gl.DeleteShader(vs)

	fs, err := compileShader(fsource, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, errors.Wrap(err, "fragment")
	}
	defer gl.DeleteShader(fs)

	id := gl.CreateProgram()
	gl.AttachShader(id, vs)
	gl.AttachShader(id, fs)
	gl.LinkProgram(id)
	gl.DetachShader(id, vs)
	gl.DetachShader(id, fs)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLen)
		logText := strings.Repeat("\x00", int(logLen)+1)
		gl.GetProgramInfoLog(id, logLen, nil, gl.Str(logText))
		gl.DeleteProgram(id)
		return nil, errors.Errorf("link program: %s", strings.TrimRight(logText, "\x00"))
	}

	p := &Program{
		id:       id,
		uniforms: make(map[string]int32),
	}
	for name, slot := range attribs {
		loc := gl.GetAttribLocation(id, gl.Str(name+"\x00"))
		if loc != int32(slot) {
			p.Release()
			return nil, errors.Errorf("attribute %q bound to slot %d, want %d", name, loc, slot)
		}
	}
	for _, name := range uniforms {
		loc := gl.GetUniformLocation(id, gl.Str(name+"\x00"))
		if loc < 0 {
			p.Release()
			return nil, errors.Errorf("missing uniform %q", name)
		}
		p.uniforms[name] = loc
	}
	return p, nil
}

func (p *Program) Bind() {
	gl.UseProgram(p.id)
}

func (p *Program) Unbind() {
	gl.UseProgram(0)
}

func (p *Program) uniformLoc(name string) int32 {
	loc, ok := p.uniforms[name]
	if !ok {
		loc = gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
		p.uniforms[name] = loc
	}
	return loc
}

// SetMat4 uploads a column-major 4x4 matrix. The program must be current.
func (p *Program) SetMat4(name string, mat mgl32.Mat4) {
	gl.UniformMatrix4fv(p.uniformLoc(name), 1, false, &mat[0])
}

func (p *Program) SetInt(name string, v int32) {
	gl.Uniform1i(p.uniformLoc(name), v)
}

func (p *Program) SetVec4(name string, x, y, z, w float32) {
	gl.Uniform4f(p.uniformLoc(name), x, y, z, w)
}

func (p *Program) Release() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}
