package main

import "github.com/go-gl/mathgl/mgl32"

// makeQuadData returns an xy-plane unit quad as two triangles in the
// textured vertex layout, texture coordinates running (0,0) at the lower
// left to (1,1) at the upper right. Model transforms place and size it.
func makeQuadData(vertices []float32) []float32 {
	return append(vertices, []float32{
		-0.5, -0.5, 0, 0, 0,
		+0.5, -0.5, 0, 1, 0,
		+0.5, +0.5, 0, 1, 1,

		+0.5, +0.5, 0, 1, 1,
		-0.5, +0.5, 0, 0, 1,
		-0.5, -0.5, 0, 0, 0,
	}...)
}

// quadVertices is the same quad in the software-stage vertex form.
func quadVertices(mvpSpace float32) []VertexIn {
	s := mvpSpace
	return []VertexIn{
		{Position: mgl32.Vec3{-s, -s, 0}, TexCoord: mgl32.Vec2{0, 0}},
		{Position: mgl32.Vec3{+s, -s, 0}, TexCoord: mgl32.Vec2{1, 0}},
		{Position: mgl32.Vec3{+s, +s, 0}, TexCoord: mgl32.Vec2{1, 1}},

		{Position: mgl32.Vec3{+s, +s, 0}, TexCoord: mgl32.Vec2{1, 1}},
		{Position: mgl32.Vec3{-s, +s, 0}, TexCoord: mgl32.Vec2{0, 1}},
		{Position: mgl32.Vec3{-s, -s, 0}, TexCoord: mgl32.Vec2{0, 0}},
	}
}

// makeCuboidData appends the 36 position-only vertices of an axis-aligned
// cuboid centered at center with full extents size.
func makeCuboidData(vertices []float32, center, size mgl32.Vec3) []float32 {
	x, y, z := center.X(), center.Y(), center.Z()
	hx, hy, hz := size.X()/2, size.Y()/2, size.Z()/2
	return append(vertices, []float32{
		// left
		x - hx, y - hy, z - hz,
		x - hx, y - hy, z + hz,
		x - hx, y + hy, z + hz,
		x - hx, y + hy, z + hz,
		x - hx, y + hy, z - hz,
		x - hx, y - hy, z - hz,
		// right
		x + hx, y - hy, z + hz,
		x + hx, y - hy, z - hz,
		x + hx, y + hy, z - hz,
		x + hx, y + hy, z - hz,
		x + hx, y + hy, z + hz,
		x + hx, y - hy, z + hz,
		// top
		x - hx, y + hy, z + hz,
		x + hx, y + hy, z + hz,
		x + hx, y + hy, z - hz,
		x + hx, y + hy, z - hz,
		x - hx, y + hy, z - hz,
		x - hx, y + hy, z + hz,
		// bottom
		x - hx, y - hy, z - hz,
		x + hx, y - hy, z - hz,
		x + hx, y - hy, z + hz,
		x + hx, y - hy, z + hz,
		x - hx, y - hy, z + hz,
		x - hx, y - hy, z - hz,
		// front
		x - hx, y - hy, z + hz,
		x + hx, y - hy, z + hz,
		x + hx, y + hy, z + hz,
		x + hx, y + hy, z + hz,
		x - hx, y + hy, z + hz,
		x - hx, y - hy, z + hz,
		// back
		x + hx, y - hy, z - hz,
		x - hx, y - hy, z - hz,
		x - hx, y + hy, z - hz,
		x - hx, y + hy, z - hz,
		x + hx, y + hy, z - hz,
		x + hx, y - hy, z - hz,
	}...)
}

func makeCrossData() []float32 {
	return []float32{
		-0.5, 0, 0, 0.5, 0, 0,
		0, -0.5, 0, 0, 0.5, 0,
	}
}
