package main

import (
	"github.com/faiface/glhf"
	"github.com/faiface/mainthread"
	"github.com/go-gl/mathgl/mgl32"
)

// TexturedQuad is one textured surface in the scene. The pipeline mode is
// part of the material: opaque geometry skips blend state entirely,
// translucent geometry picks the blended program.
type TexturedQuad struct {
	mesh    *Mesh
	texture *Texture
	model   mgl32.Mat4
	mode    PipelineMode
}

// QuadRender owns the two textured pipelines and the quads drawn with
// them. Opaque quads are drawn before blended ones so over compositing
// sees the finished opaque scene.
type QuadRender struct {
	game      *Game
	pipelines [2]*Pipeline
	quads     []*TexturedQuad
}

func NewQuadRender(game *Game) (*QuadRender, error) {
	r := &QuadRender{game: game}
	var err error
	mainthread.Call(func() {
		for _, mode := range []PipelineMode{Opaque, Blended} {
			r.pipelines[mode], err = NewPipeline(mode)
			if err != nil {
				return
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// AddQuad builds the mesh for one textured quad and registers it.
func (r *QuadRender) AddQuad(texture *Texture, model mgl32.Mat4, mode PipelineMode) {
	var mesh *Mesh
	mainthread.Call(func() {
		mesh = NewMesh(makeQuadData(nil))
	})
	r.quads = append(r.quads, &TexturedQuad{
		mesh:    mesh,
		texture: texture,
		model:   model,
		mode:    mode,
	})
}

func (r *QuadRender) Draw() {
	vp := r.game.get3dmat()
	for _, mode := range []PipelineMode{Opaque, Blended} {
		pipeline := r.pipelines[mode]
		pipeline.Begin()
		for _, q := range r.quads {
			if q.mode != pipeline.Mode() {
				continue
			}
			pipeline.Draw(DrawCommand{
				Mesh:    q.mesh,
				Texture: q.texture,
				MVP:     vp.Mul4(q.model),
			})
		}
		pipeline.End()
	}
}

// Cuboid is an axis-aligned solid-colored box.
type Cuboid struct {
	mesh  *SolidMesh
	color mgl32.Vec4
	model mgl32.Mat4
}

// CuboidRender draws solid-colored cuboids with the position-only program.
type CuboidRender struct {
	game    *Game
	prog    *Program
	cuboids []*Cuboid
}

func NewCuboidRender(game *Game) (*CuboidRender, error) {
	r := &CuboidRender{game: game}
	var err error
	mainthread.Call(func() {
		r.prog, err = newProgram(solidVertexSource, solidFragmentSource,
			map[string]uint32{"position": positionSlot}, []string{"mvp", "color"})
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (r *CuboidRender) AddCuboid(center, size mgl32.Vec3, color mgl32.Vec4) {
	var mesh *SolidMesh
	mainthread.Call(func() {
		mesh = NewSolidMesh(makeCuboidData(nil, center, size))
	})
	r.cuboids = append(r.cuboids, &Cuboid{
		mesh:  mesh,
		color: color,
		model: mgl32.Ident4(),
	})
}

func (r *CuboidRender) Draw() {
	vp := r.game.get3dmat()
	r.prog.Bind()
	for _, c := range r.cuboids {
		r.prog.SetMat4("mvp", vp.Mul4(c.model))
		r.prog.SetVec4("color", c.color[0], c.color[1], c.color[2], c.color[3])
		c.mesh.Draw()
	}
	r.prog.Unbind()
}

// LineRender draws the crosshair overlay.
type LineRender struct {
	game   *Game
	shader *glhf.Shader
	cross  *Lines
}

func NewLineRender(game *Game) (*LineRender, error) {
	r := &LineRender{
		game: game,
	}
	var err error
	mainthread.Call(func() {
		r.shader, err = glhf.NewShader(glhf.AttrFormat{
			glhf.Attr{Name: "pos", Type: glhf.Vec3},
		}, glhf.AttrFormat{
			glhf.Attr{Name: "matrix", Type: glhf.Mat4},
		}, lineVertexSource, lineFragmentSource)

		if err != nil {
			return
		}
		r.cross = NewLines(r.shader, makeCrossData())
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (r *LineRender) drawCross() {
	width, height := r.game.win.GetFramebufferSize()
	project := mgl32.Ortho2D(0, float32(width), float32(height), 0)
	model := mgl32.Translate3D(float32(width/2), float32(height/2), 0)
	model = model.Mul4(mgl32.Scale3D(float32(height/30), float32(height/30), 0))
	r.cross.Draw(project.Mul4(model))
}

func (r *LineRender) Draw() {
	r.shader.Begin()
	r.drawCross()
	r.shader.End()
}
