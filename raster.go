package main

import (
	"github.com/go-gl/mathgl/mgl32"
)

// A minimal triangle rasterizer over the software stages. It exists to run
// the full vertex-to-framebuffer path without a GL context: clip-space
// transform, perspective divide, perspective-correct varying
// interpolation, depth test, fragment shading and blending.

// Framebuffer holds RGB color and a depth plane, row 0 at the bottom of
// the viewport.
type Framebuffer struct {
	Width, Height int
	Color         []mgl32.Vec3
	Depth         []float32
}

func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{
		Width:  width,
		Height: height,
		Color:  make([]mgl32.Vec3, width*height),
		Depth:  make([]float32, width*height),
	}
	fb.Clear(mgl32.Vec3{})
	return fb
}

func (fb *Framebuffer) Clear(color mgl32.Vec3) {
	for i := range fb.Color {
		fb.Color[i] = color
		fb.Depth[i] = 1
	}
}

func (fb *Framebuffer) At(x, y int) mgl32.Vec3 {
	return fb.Color[y*fb.Width+x]
}

// screenVertex is a vertex after the perspective divide and viewport map.
// uvw and invw carry tex_coord/w and 1/w for perspective-correct
// interpolation across the primitive.
type screenVertex struct {
	x, y, z float32
	uvw     mgl32.Vec2
	invw    float32
}

func edge(ax, ay, bx, by, px, py float32) float32 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// renderSoft rasterizes a triangle list through one of the two textured
// pipeline variants. Vertices outside the frustum are not clipped; the
// per-pixel bounds check is enough for the scenes the tests draw.
func renderSoft(fb *Framebuffer, mode PipelineMode, mvp mgl32.Mat4, verts []VertexIn, tex *TexData) {
	for i := 0; i+2 < len(verts); i += 3 {
		var sv [3]screenVertex
		degenerate := false
		for j := 0; j < 3; j++ {
			out := TransformVertex(mvp, verts[i+j])
			w := out.ClipPos[3]
			if w == 0 {
				degenerate = true
				break
			}
			inv := 1 / w
			sv[j] = screenVertex{
				x:    (out.ClipPos[0]*inv + 1) / 2 * float32(fb.Width),
				y:    (out.ClipPos[1]*inv + 1) / 2 * float32(fb.Height),
				z:    out.ClipPos[2] * inv,
				uvw:  out.TexCoord.Mul(inv),
				invw: inv,
			}
		}
		if degenerate {
			continue
		}
		fb.rasterTriangle(mode, sv, tex)
	}
}

func (fb *Framebuffer) rasterTriangle(mode PipelineMode, sv [3]screenVertex, tex *TexData) {
	area := edge(sv[0].x, sv[0].y, sv[1].x, sv[1].y, sv[2].x, sv[2].y)
	if area == 0 {
		return
	}

	minX := int(floor(min(sv[0].x, min(sv[1].x, sv[2].x))))
	maxX := int(floor(max(sv[0].x, max(sv[1].x, sv[2].x))))
	minY := int(floor(min(sv[0].y, min(sv[1].y, sv[2].y))))
	maxY := int(floor(max(sv[0].y, max(sv[1].y, sv[2].y))))
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= fb.Width {
		maxX = fb.Width - 1
	}
	if maxY >= fb.Height {
		maxY = fb.Height - 1
	}

	inv := 1 / area
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px, py := float32(x)+0.5, float32(y)+0.5
			w0 := edge(sv[1].x, sv[1].y, sv[2].x, sv[2].y, px, py) * inv
			w1 := edge(sv[2].x, sv[2].y, sv[0].x, sv[0].y, px, py) * inv
			w2 := edge(sv[0].x, sv[0].y, sv[1].x, sv[1].y, px, py) * inv
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			// Depth func LESS. Equal depth failing also keeps pixels on
			// an edge shared by two triangles from shading twice.
			z := w0*sv[0].z + w1*sv[1].z + w2*sv[2].z
			idx := y*fb.Width + x
			if z >= fb.Depth[idx] {
				continue
			}

			invw := w0*sv[0].invw + w1*sv[1].invw + w2*sv[2].invw
			uv := sv[0].uvw.Mul(w0).Add(sv[1].uvw.Mul(w1)).Add(sv[2].uvw.Mul(w2)).Mul(1 / invw)
			sample := tex.Sample(uv[0], uv[1])

			switch mode {
			case Blended:
				fb.Color[idx] = BlendOver(ShadeBlended(sample), fb.Color[idx])
			default:
				fb.Color[idx] = ShadeOpaque(sample)
			}
			fb.Depth[idx] = z
		}
	}
}
