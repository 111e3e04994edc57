package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// AmbientLight lights every surface equally. Sky and Ground tint the result by normal direction
// so the model picks up the environment preset's colors (top from above, bottom from below).
type AmbientLight struct {
	Color     [3]float32
	Intensity float32
	Sky       [3]float32
	Ground    [3]float32
}

// DefaultAmbient is white at full intensity, with a neutral sky/ground.
func DefaultAmbient() AmbientLight {
	return AmbientLight{
		Color:     [3]float32{1, 1, 1},
		Intensity: 1,
		Sky:       [3]float32{0.6, 0.6, 0.6},
		Ground:    [3]float32{0.3, 0.3, 0.3},
	}
}

// Same attribute names as raylib meshes: vertexPosition, vertexTexCoord, vertexNormal.
// texture0 and colDiffuse are bound by raylib from the material's albedo map.
const (
	ambientVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 mvp;
uniform mat4 matModel;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  fragTexCoord = vertexTexCoord;
  fragNormal = normalize(mat3(matModel) * vertexNormal);
  gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`
	ambientFS = `#version 330
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform sampler2D texture0;
uniform vec4 colDiffuse;
uniform vec3 ambientColor;
uniform float ambientIntensity;
uniform vec3 skyColor;
uniform vec3 groundColor;
out vec4 finalColor;
void main() {
  vec4 albedo = texture(texture0, fragTexCoord) * colDiffuse;
  float up = normalize(fragNormal).y * 0.5 + 0.5;
  vec3 hemi = mix(groundColor, skyColor, up);
  vec3 light = ambientColor * ambientIntensity * 0.5 + hemi;
  finalColor = vec4(albedo.rgb * light, albedo.a);
}
`
)

// lighting owns the ambient shader and its uniform locations.
type lighting struct {
	shader       rl.Shader
	colorLoc     int32
	intensityLoc int32
	skyLoc       int32
	groundLoc    int32
}

// loadLighting compiles the ambient shader. Needs a live GL context.
func loadLighting() (lighting, bool) {
	shader := rl.LoadShaderFromMemory(ambientVS, ambientFS)
	if !rl.IsShaderValid(shader) {
		return lighting{}, false
	}
	return lighting{
		shader:       shader,
		colorLoc:     rl.GetShaderLocation(shader, "ambientColor"),
		intensityLoc: rl.GetShaderLocation(shader, "ambientIntensity"),
		skyLoc:       rl.GetShaderLocation(shader, "skyColor"),
		groundLoc:    rl.GetShaderLocation(shader, "groundColor"),
	}, true
}

// apply uploads the light each frame (cgo-safe: local arrays).
func (l lighting) apply(a AmbientLight) {
	if !rl.IsShaderValid(l.shader) {
		return
	}
	color := [3]float32{a.Color[0], a.Color[1], a.Color[2]}
	sky := [3]float32{a.Sky[0], a.Sky[1], a.Sky[2]}
	ground := [3]float32{a.Ground[0], a.Ground[1], a.Ground[2]}
	if l.colorLoc >= 0 {
		rl.SetShaderValueV(l.shader, l.colorLoc, color[:], rl.ShaderUniformVec3, 1)
	}
	if l.intensityLoc >= 0 {
		rl.SetShaderValue(l.shader, l.intensityLoc, []float32{a.Intensity}, rl.ShaderUniformFloat)
	}
	if l.skyLoc >= 0 {
		rl.SetShaderValueV(l.shader, l.skyLoc, sky[:], rl.ShaderUniformVec3, 1)
	}
	if l.groundLoc >= 0 {
		rl.SetShaderValueV(l.shader, l.groundLoc, ground[:], rl.ShaderUniformVec3, 1)
	}
}

func (l lighting) unload() {
	if rl.IsShaderValid(l.shader) {
		rl.UnloadShader(l.shader)
	}
}

// rgb converts an 8-bit preset color to shader floats.
func rgb(c [4]uint8) [3]float32 {
	return [3]float32{float32(c[0]) / 255, float32(c[1]) / 255, float32(c[2]) / 255}
}
