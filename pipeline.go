package main

import (
	"log"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// PipelineMode selects which textured fragment variant a pipeline links.
// The choice is made per material when the pipeline is built; the two
// variants are distinct programs.
type PipelineMode int

const (
	// Opaque emits RGB only; alpha in the texture is never read and the
	// framebuffer treats the fragment as fully opaque.
	Opaque PipelineMode = iota
	// Blended emits the texture sample verbatim, RGBA. While a blended
	// pipeline is active, standard over compositing is enabled.
	Blended
)

func (m PipelineMode) String() string {
	switch m {
	case Opaque:
		return "opaque"
	case Blended:
		return "blended"
	default:
		return "unknown"
	}
}

func (m PipelineMode) fragmentSource() string {
	if m == Blended {
		return texFragmentBlendedSource
	}
	return texFragmentOpaqueSource
}

// texturedBindings is the contract shared by both textured pipelines.
var (
	texturedAttribs = map[string]uint32{
		"position":  positionSlot,
		"tex_coord": texCoordSlot,
	}
	texturedUniforms = []string{"mvp", "tex"}
)

// Pipeline is one linked textured program plus the render state that
// belongs to it. Uniform and texture bindings live in the DrawCommand,
// not in globals, so recording draws stays explicit and testable.
type Pipeline struct {
	mode PipelineMode
	prog *Program
}

func NewPipeline(mode PipelineMode) (*Pipeline, error) {
	prog, err := newProgram(texVertexSource, mode.fragmentSource(), texturedAttribs, texturedUniforms)
	if err != nil {
		return nil, errors.Wrapf(err, "%v pipeline", mode)
	}
	return &Pipeline{mode: mode, prog: prog}, nil
}

func (p *Pipeline) Mode() PipelineMode {
	return p.mode
}

// Begin makes the pipeline's program current and applies its blend state.
func (p *Pipeline) Begin() {
	p.prog.Bind()
	if p.mode == Blended {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}
}

func (p *Pipeline) End() {
	if p.mode == Blended {
		gl.Disable(gl.BLEND)
	}
	p.prog.Unbind()
}

func (p *Pipeline) Release() {
	p.prog.Release()
}

// DrawCommand carries everything one textured draw reads: the mesh, the
// texture bound to the single sampler, and the composed transform. The
// uniform and sampler are set right before the draw call and are read-only
// while it is in flight.
type DrawCommand struct {
	Mesh    *Mesh
	Texture *Texture
	MVP     mgl32.Mat4
}

// Draw issues one command. Issuing a command without a mesh or texture is
// a programming error, not a runtime condition: the GPU would sample
// garbage silently, so it panics instead.
func (p *Pipeline) Draw(cmd DrawCommand) {
	if cmd.Mesh == nil || cmd.Texture == nil {
		log.Panicf("%v pipeline: draw with unbound resource: mesh=%v texture=%v",
			p.mode, cmd.Mesh != nil, cmd.Texture != nil)
	}
	p.prog.SetMat4("mvp", cmd.MVP)
	cmd.Texture.Bind(0)
	p.prog.SetInt("tex", 0)
	cmd.Mesh.Draw()
}
