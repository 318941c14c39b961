package main

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuadDataLayout(t *testing.T) {
	data := makeQuadData(nil)
	require.Equal(t, 6*texVertexFloats, len(data))

	corners := map[[2]float32]bool{}
	for i := 0; i < len(data); i += texVertexFloats {
		x, y, z := data[i], data[i+1], data[i+2]
		u, v := data[i+3], data[i+4]
		assert.Equal(t, float32(0), z)
		// Texture coordinates follow the position corners exactly.
		assert.Equal(t, x+0.5, u)
		assert.Equal(t, y+0.5, v)
		corners[[2]float32{u, v}] = true
	}
	assert.Equal(t, map[[2]float32]bool{
		{0, 0}: true, {1, 0}: true, {1, 1}: true, {0, 1}: true,
	}, corners)
}

func TestQuadDataAppends(t *testing.T) {
	prefix := []float32{1, 2, 3}
	data := makeQuadData(prefix)
	assert.Equal(t, prefix, data[:3])
	assert.Equal(t, 3+6*texVertexFloats, len(data))
}

func TestQuadVerticesMatchQuadData(t *testing.T) {
	data := makeQuadData(nil)
	verts := quadVertices(0.5)
	require.Equal(t, len(data)/texVertexFloats, len(verts))
	for i, v := range verts {
		o := i * texVertexFloats
		assert.Equal(t, mgl32.Vec3{data[o], data[o+1], data[o+2]}, v.Position)
		assert.Equal(t, mgl32.Vec2{data[o+3], data[o+4]}, v.TexCoord)
	}
}

func TestCuboidDataBounds(t *testing.T) {
	center := mgl32.Vec3{1, -2, 3}
	size := mgl32.Vec3{2, 4, 6}
	data := makeCuboidData(nil, center, size)
	require.Equal(t, 36*solidVertexFloats, len(data))

	for i := 0; i < len(data); i += solidVertexFloats {
		for axis := 0; axis < 3; axis++ {
			d := abs(data[i+axis] - center[axis])
			assert.InDelta(t, size[axis]/2, d, 1e-6, "vertex %d axis %d", i/solidVertexFloats, axis)
		}
	}
}

func TestCrossData(t *testing.T) {
	data := makeCrossData()
	// Two line segments, position-only.
	assert.Equal(t, 4*solidVertexFloats, len(data))
}
