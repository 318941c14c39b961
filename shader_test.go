package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The GLSL sources are the other half of the binding contract; these
// checks keep their declarations in lockstep with the host-side slot and
// uniform constants.

func TestTexVertexSourceDeclaresContract(t *testing.T) {
	src := texVertexSource
	assert.Contains(t, src, "layout (location = 0) in vec3 position;")
	assert.Contains(t, src, "layout (location = 1) in vec2 tex_coord;")
	assert.Contains(t, src, "uniform mat4 mvp;")
	assert.Contains(t, src, "out vec2 fs_tex_coord;")
	assert.Contains(t, src, "gl_Position = mvp * vec4(position, 1.0);")
	assert.Contains(t, src, "fs_tex_coord = tex_coord;")
}

func TestFragmentVariantsDeclareContract(t *testing.T) {
	for _, src := range []string{texFragmentOpaqueSource, texFragmentBlendedSource} {
		assert.Contains(t, src, "in vec2 fs_tex_coord;")
		assert.Contains(t, src, "uniform sampler2D tex;")
	}
	assert.Contains(t, texFragmentOpaqueSource, "out vec3 color;")
	assert.Contains(t, texFragmentBlendedSource, "out vec4 color;")
}

func TestFragmentVariantsAreBranchless(t *testing.T) {
	for _, src := range []string{texFragmentOpaqueSource, texFragmentBlendedSource} {
		assert.NotContains(t, src, "if (")
		assert.NotContains(t, src, "discard")
	}
}

func TestAllSourcesTargetGL33Core(t *testing.T) {
	sources := []string{
		texVertexSource,
		texFragmentOpaqueSource,
		texFragmentBlendedSource,
		solidVertexSource,
		solidFragmentSource,
		lineVertexSource,
		lineFragmentSource,
	}
	for _, src := range sources {
		assert.True(t, strings.HasPrefix(strings.TrimSpace(src), "#version 330 core"))
	}
}

func TestPipelineModeFragmentSource(t *testing.T) {
	assert.Equal(t, texFragmentOpaqueSource, Opaque.fragmentSource())
	assert.Equal(t, texFragmentBlendedSource, Blended.fragmentSource())
}

func TestPipelineDrawUnboundResourcePanics(t *testing.T) {
	// The nil checks run before any program or GL state is touched.
	p := &Pipeline{mode: Opaque}
	assert.Panics(t, func() { p.Draw(DrawCommand{}) })
	assert.Panics(t, func() { p.Draw(DrawCommand{Mesh: new(Mesh)}) })
	assert.Panics(t, func() { p.Draw(DrawCommand{Texture: new(Texture)}) })
}

func TestPipelineModeString(t *testing.T) {
	assert.Equal(t, "opaque", Opaque.String())
	assert.Equal(t, "blended", Blended.String())
	assert.Equal(t, "unknown", PipelineMode(42).String())
}
