package main

// Shader sources for the three draw pipelines. The textured vertex shader
// and its two fragment variants form the binding contract that every mesh,
// texture and uniform supplier has to satisfy: position at slot 0, texture
// coordinate at slot 1, a single mat4 "mvp" and a single 2D sampler "tex".
// The opaque and blended variants are separate programs, never a runtime
// branch inside one shader.

var (
	texVertexSource = `
#version 330 core

layout (location = 0) in vec3 position;
layout (location = 1) in vec2 tex_coord;

uniform mat4 mvp;

out vec2 fs_tex_coord;

void main() {
    gl_Position = mvp * vec4(position, 1.0);
    fs_tex_coord = tex_coord;
}
`

	texFragmentOpaqueSource = `
#version 330 core

in vec2 fs_tex_coord;
uniform sampler2D tex;

out vec3 color;

void main() {
    color = vec3(texture(tex, fs_tex_coord));
}
`

	texFragmentBlendedSource = `
#version 330 core

in vec2 fs_tex_coord;
uniform sampler2D tex;

out vec4 color;

void main() {
    color = texture(tex, fs_tex_coord);
}
`

	solidVertexSource = `
#version 330 core

layout (location = 0) in vec3 position;

uniform mat4 mvp;

void main() {
    gl_Position = mvp * vec4(position, 1.0);
}
`

	solidFragmentSource = `
#version 330 core

uniform vec4 color;

out vec4 frag_color;

void main() {
    frag_color = color;
}
`

	lineVertexSource = `
#version 330 core

in vec3 pos;

uniform mat4 matrix;

void main() {
    gl_Position = matrix * vec4(pos, 1.0);
}
`

	lineFragmentSource = `
#version 330 core

out vec4 color;

void main() {
    color = vec4(0, 0, 0, 1);
}
`
)
