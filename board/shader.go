package board

import "github.com/hexaflex/chess2d/shader"

// Uniform names, as declared by the board program.
const (
	UniformMVP        = "mvp"
	UniformBlackView  = "black_view"
	UniformWhiteColor = "white_color"
	UniformBlackColor = "black_color"
	UniformOpacity    = "opacity"
	UniformSideSize   = "side_size"
)

const vertex = `
#version 330 core

layout (location = 0) in vec2 position;

uniform mat4 mvp;

void main() {
    gl_Position = mvp * vec4(position, 0, 1);
}
`

const fragment = `
#version 330 core

uniform bool  black_view;
uniform vec3  white_color;
uniform vec3  black_color;
uniform float opacity;
uniform int   side_size;

out vec4 fragColor;

void main() {
    // floor() keeps the tile index continuous across 0; the & 1 of a two's
    // complement index is the floor-consistent parity.
    ivec2 tile = ivec2(floor(gl_FragCoord.xy / float(side_size)));
    int parity = (tile.x & 1) ^ (tile.y & 1) ^ int(black_view);

    if (parity != 0) {
        fragColor = vec4(black_color, opacity);
    } else {
        fragColor = vec4(white_color, opacity);
    }
}
`

const wgsl = `
struct Uniforms {
    mvp: mat4x4<f32>,
    white_color: vec3<f32>,
    opacity: f32,
    black_color: vec3<f32>,
    side_size: i32,
    black_view: u32,
}

@group(0) @binding(0) var<uniform> u: Uniforms;

@vertex
fn vs_main(@location(0) position: vec2<f32>) -> @builtin(position) vec4<f32> {
    return u.mvp * vec4<f32>(position, 0.0, 1.0);
}

@fragment
fn fs_main(@builtin(position) frag: vec4<f32>) -> @location(0) vec4<f32> {
    let tile = vec2<i32>(floor(frag.xy / f32(u.side_size)));
    let parity = (tile.x & 1) ^ (tile.y & 1) ^ i32(u.black_view & 1u);
    if (parity != 0) {
        return vec4<f32>(u.black_color, u.opacity);
    }
    return vec4<f32>(u.white_color, u.opacity);
}
`

// Program is the checkerboard program. It draws a position-only quad.
var Program = &shader.Program{
	Name:     "board",
	Vertex:   vertex,
	Fragment: fragment,
	WGSL:     wgsl,
	Uniforms: []shader.Uniform{
		{Name: UniformMVP, Type: shader.Mat4},
		{Name: UniformBlackView, Type: shader.Bool},
		{Name: UniformWhiteColor, Type: shader.Vec3},
		{Name: UniformBlackColor, Type: shader.Vec3},
		{Name: UniformOpacity, Type: shader.Float},
		{Name: UniformSideSize, Type: shader.Int},
	},
	Attributes: []shader.Attribute{
		{Name: "position", Location: 0, Size: 2},
	},
}
