package quad

import "github.com/hexaflex/chess2d/shader"

// Uniform names, as declared by the quad program.
const (
	UniformMVP     = "mvp"
	UniformTexture = "uTexture"
)

// Attribute locations.
const (
	LocationPosition = 0
	LocationTexCoord = 1
)

const vertex = `
#version 330 core

layout (location = 0) in vec2 position;
layout (location = 1) in vec2 texCoord;

uniform mat4 mvp;

out vec2 fragTexCoord;

void main() {
    fragTexCoord = texCoord;
    gl_Position  = mvp * vec4(position, 0, 1);
}
`

const fragment = `
#version 330 core

uniform sampler2D uTexture;

in  vec2 fragTexCoord;
out vec4 fragColor;

void main() {
    fragColor = texture(uTexture, fragTexCoord);
}
`

const wgsl = `
struct Uniforms {
    mvp: mat4x4<f32>,
}

@group(0) @binding(0) var<uniform> uniforms: Uniforms;
@group(0) @binding(1) var uSampler: sampler;
@group(0) @binding(2) var uTexture: texture_2d<f32>;

struct VertexInput {
    @location(0) position: vec2<f32>,
    @location(1) texCoord: vec2<f32>,
}

struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) texCoord: vec2<f32>,
}

@vertex
fn vs_main(in: VertexInput) -> VertexOutput {
    var out: VertexOutput;
    out.position = uniforms.mvp * vec4<f32>(in.position, 0.0, 1.0);
    out.texCoord = in.texCoord;
    return out;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    return textureSample(uTexture, uSampler, in.texCoord);
}
`

// Program is the textured-quad program.
var Program = &shader.Program{
	Name:     "quad",
	Vertex:   vertex,
	Fragment: fragment,
	WGSL:     wgsl,
	Uniforms: []shader.Uniform{
		{Name: UniformMVP, Type: shader.Mat4},
		{Name: UniformTexture, Type: shader.Sampler2D},
	},
	Attributes: []shader.Attribute{
		{Name: "position", Location: LocationPosition, Size: 2},
		{Name: "texCoord", Location: LocationTexCoord, Size: 2},
	},
}
