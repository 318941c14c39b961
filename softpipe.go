package main

import (
	"github.com/go-gl/mathgl/mgl32"
)

// CPU mirror of the draw-stage programs. Each function is a pure,
// stateless transform with no ordering assumptions between invocations,
// matching what the GPU guarantees within one draw. The test suite runs
// these against the GLSL contract's documented behavior; renderSoft runs
// them end to end over a framebuffer.

// VertexIn is one vertex as the textured pipelines consume it: a
// position in slot 0 and a texture coordinate in slot 1.
type VertexIn struct {
	Position mgl32.Vec3
	TexCoord mgl32.Vec2
}

// VertexOut is the vertex stage's two outputs: a homogeneous clip-space
// position (the perspective divide happens downstream) and the texture
// coordinate forwarded unchanged.
type VertexOut struct {
	ClipPos  mgl32.Vec4
	TexCoord mgl32.Vec2
}

// TransformVertex applies the model-view-projection transform and passes
// the texture coordinate through. A degenerate mvp produces degenerate
// geometry; validation is the caller's job.
func TransformVertex(mvp mgl32.Mat4, in VertexIn) VertexOut {
	return VertexOut{
		ClipPos:  mvp.Mul4x1(in.Position.Vec4(1)),
		TexCoord: in.TexCoord,
	}
}

// ShadeOpaque resolves a fragment color for the opaque variant: RGB from
// the sample, alpha never read.
func ShadeOpaque(sample mgl32.Vec4) mgl32.Vec3 {
	return mgl32.Vec3{sample[0], sample[1], sample[2]}
}

// ShadeBlended resolves a fragment color for the blended variant: the
// sample verbatim, alpha included. Compositing is the framebuffer's job.
func ShadeBlended(sample mgl32.Vec4) mgl32.Vec4 {
	return sample
}

// BlendOver composites a blended-variant source color over an existing
// framebuffer color with standard over blending.
func BlendOver(src mgl32.Vec4, dst mgl32.Vec3) mgl32.Vec3 {
	a := src[3]
	return mgl32.Vec3{
		src[0]*a + dst[0]*(1-a),
		src[1]*a + dst[1]*(1-a),
		src[2]*a + dst[2]*(1-a),
	}
}

// AddressMode resolves texture coordinates outside [0,1], mirroring the
// GL wrap modes the texture builder exposes.
type AddressMode int

const (
	AddressRepeat AddressMode = iota
	AddressClampToEdge
	AddressMirroredRepeat
)

// TexData is a CPU-side RGBA texture sampled with nearest filtering.
// Texels are row-major, row 0 at v=0.
type TexData struct {
	Width, Height int
	Pix           []mgl32.Vec4
	WrapS, WrapT  AddressMode
}

// NewSolidTexData returns a 1x1 texture of a single color.
func NewSolidTexData(c mgl32.Vec4) *TexData {
	return &TexData{Width: 1, Height: 1, Pix: []mgl32.Vec4{c}}
}

func wrapTexel(i, n int, mode AddressMode) int {
	switch mode {
	case AddressClampToEdge:
		if i < 0 {
			return 0
		}
		if i >= n {
			return n - 1
		}
		return i
	case AddressMirroredRepeat:
		period := 2 * n
		i = ((i % period) + period) % period
		if i >= n {
			return period - 1 - i
		}
		return i
	default:
		return ((i % n) + n) % n
	}
}

// Sample reads the nearest texel for a coordinate pair.
func (t *TexData) Sample(u, v float32) mgl32.Vec4 {
	x := wrapTexel(int(floor(u*float32(t.Width))), t.Width, t.WrapS)
	y := wrapTexel(int(floor(v*float32(t.Height))), t.Height, t.WrapT)
	return t.Pix[y*t.Width+x]
}
