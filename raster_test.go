package main

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpaqueQuadFillsFramebuffer(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	tex := NewSolidTexData(mgl32.Vec4{1, 0, 0, 0.5})

	renderSoft(fb, Opaque, mgl32.Ident4(), quadVertices(1), tex)

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			require.Equal(t, mgl32.Vec3{1, 0, 0}, fb.At(x, y), "pixel %d,%d", x, y)
		}
	}
}

func TestBlendedQuadOverBlack(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	tex := NewSolidTexData(mgl32.Vec4{1, 0, 0, 0.5})

	renderSoft(fb, Blended, mgl32.Ident4(), quadVertices(1), tex)

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := fb.At(x, y)
			assert.InDelta(t, 0.5, c[0], 1e-6, "pixel %d,%d", x, y)
			assert.InDelta(t, 0, c[1], 1e-6)
			assert.InDelta(t, 0, c[2], 1e-6)
		}
	}
}

func TestBlendedQuadOverOpaqueQuad(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	blue := NewSolidTexData(mgl32.Vec4{0, 0, 1, 1})
	red := NewSolidTexData(mgl32.Vec4{1, 0, 0, 0.5})

	renderSoft(fb, Opaque, mgl32.Ident4(), quadVertices(1), blue)
	// Nearer plane so the depth test passes.
	renderSoft(fb, Blended, mgl32.Translate3D(0, 0, -0.5), quadVertices(1), red)

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := fb.At(x, y)
			assert.InDelta(t, 0.5, c[0], 1e-6, "pixel %d,%d", x, y)
			assert.InDelta(t, 0, c[1], 1e-6)
			assert.InDelta(t, 0.5, c[2], 1e-6)
		}
	}
}

func TestDepthTestRejectsFartherFragments(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	near := NewSolidTexData(mgl32.Vec4{0, 1, 0, 1})
	far := NewSolidTexData(mgl32.Vec4{1, 0, 0, 1})

	renderSoft(fb, Opaque, mgl32.Translate3D(0, 0, -0.5), quadVertices(1), near)
	renderSoft(fb, Opaque, mgl32.Ident4(), quadVertices(1), far)

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			require.Equal(t, mgl32.Vec3{0, 1, 0}, fb.At(x, y))
		}
	}
}

func TestQuadOutsideViewportLeavesFramebufferUntouched(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	bg := mgl32.Vec3{0.1, 0.1, 0.1}
	fb.Clear(bg)
	tex := NewSolidTexData(mgl32.Vec4{1, 1, 1, 1})

	renderSoft(fb, Opaque, mgl32.Translate3D(10, 10, 0), quadVertices(1), tex)

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			require.Equal(t, bg, fb.At(x, y))
		}
	}
}

func TestDegenerateTransformDrawsNothing(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	tex := NewSolidTexData(mgl32.Vec4{1, 1, 1, 1})

	var zero mgl32.Mat4
	renderSoft(fb, Opaque, zero, quadVertices(1), tex)

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			require.Equal(t, mgl32.Vec3{}, fb.At(x, y))
		}
	}
}

func TestPerspectiveCorrectInterpolation(t *testing.T) {
	// A quad tilted away from the viewer: screen-space linear UVs would
	// land on the wrong texel near the far edge.
	fb := NewFramebuffer(16, 16)
	tex := &TexData{
		Width:  2,
		Height: 1,
		Pix: []mgl32.Vec4{
			{1, 0, 0, 1},
			{0, 1, 0, 1},
		},
	}

	proj := mgl32.Perspective(radian(90), 1, 0.1, 10)
	view := mgl32.Translate3D(0, 0, -2)
	model := mgl32.HomogRotate3DY(radian(60))
	mvp := proj.Mul4(view).Mul4(model)

	renderSoft(fb, Opaque, mvp, quadVertices(1), tex)

	// The u=0.5 boundary must sit where the world-space midline projects,
	// not at the screen-space midpoint of the covered span.
	var lo, hi int
	row := fb.Height / 2
	for x := 0; x < fb.Width; x++ {
		c := fb.At(x, row)
		if c == (mgl32.Vec3{}) {
			continue
		}
		if lo == 0 && hi == 0 {
			lo = x
		}
		hi = x
	}
	require.True(t, hi > lo, "quad should cover part of the row")

	mid := TransformVertex(mvp, VertexIn{Position: mgl32.Vec3{0, 0, 0}}).ClipPos
	midX := int((mid.X()/mid.W() + 1) / 2 * float32(fb.Width))
	for x := lo; x <= hi; x++ {
		c := fb.At(x, row)
		if x < midX {
			assert.Equal(t, mgl32.Vec3{1, 0, 0}, c, "pixel %d left of midline", x)
		} else if x > midX {
			assert.Equal(t, mgl32.Vec3{0, 1, 0}, c, "pixel %d right of midline", x)
		}
	}
}
