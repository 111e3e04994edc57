package scene

import (
	"image"

	"wheel-viewer/internal/asset"
	"wheel-viewer/internal/envpreset"
	"wheel-viewer/internal/gfxctx"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const skyboxScale = 1000

// Equirectangular skybox shader: samples a 2D panorama by view direction.
const (
	equirectVS = `#version 330
in vec3 vertexPosition;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragWorldPos;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragWorldPos = worldPos.xyz;
  gl_Position = matProjection * matView * worldPos;
}
`
	equirectFS = `#version 330
in vec3 fragWorldPos;
out vec4 finalColor;
uniform sampler2D skybox;
uniform vec3 cameraPosition;
void main() {
  vec3 dir = normalize(fragWorldPos - cameraPosition);
  float lon = atan(dir.z, dir.x);
  float lat = asin(clamp(dir.y, -1.0, 1.0));
  float u = lon / 6.28318530718 + 0.5;
  float v = 0.5 - lat / 3.14159265359;
  finalColor = texture(skybox, vec2(u, v));
}
`
)

// Cubemap skybox shader: the view rotation only, so the cube stays centered on the camera.
const (
	cubemapVS = `#version 330
in vec3 vertexPosition;
uniform mat4 matProjection;
uniform mat4 matView;
out vec3 fragPosition;
void main() {
  fragPosition = vertexPosition;
  mat4 rotView = mat4(mat3(matView));
  gl_Position = matProjection * rotView * vec4(vertexPosition, 1.0);
}
`
	cubemapFS = `#version 330
in vec3 fragPosition;
out vec4 finalColor;
uniform samplerCube environmentMap;
void main() {
  finalColor = vec4(texture(environmentMap, fragPosition).rgb, 1.0);
}
`
)

// backdrop is the environment behind the model: a panorama skybox when the preset has a file
// with a sky layout, otherwise a screen-space vertical gradient in the preset colors.
type backdrop struct {
	preset     envpreset.Preset
	projection asset.Projection

	tex       rl.Texture2D
	mesh      rl.Mesh
	mtl       rl.Material
	camPosLoc int32
	texLoc    int32
	loaded    bool
}

// uploadBackdrop moves a decoded panorama to the GPU. Unpack state is set through ctx:
// the flip-Y request is filtered out on desktop GL, so the flip is done on the CPU instead.
// Images without a sky layout are not uploaded.
func uploadBackdrop(ctx gfxctx.Context, b *asset.Bundle, flipY bool) (backdrop, error) {
	bd := backdrop{preset: b.Preset, projection: asset.ProjectionOf(b.Backdrop)}
	if bd.projection == asset.Flat {
		return bd, nil
	}
	img := rl.NewImageFromImage(b.Backdrop)
	defer rl.UnloadImage(img)
	if flipY {
		rl.ImageFlipVertical(img)
	}

	err := gfxctx.Unpack(ctx, flipY, func() error {
		if bd.projection == asset.Equirect {
			bd = bd.loadEquirect(img)
		} else {
			bd = bd.loadCubemap(img)
		}
		return nil
	})
	if err != nil {
		bd.unload()
	}
	return bd, err
}

func (bd backdrop) loadCubemap(img *rl.Image) backdrop {
	bd.tex = rl.LoadTextureCubemap(img, rl.CubemapLayoutAutoDetect)
	if !rl.IsTextureValid(bd.tex) {
		return bd
	}
	shader := rl.LoadShaderFromMemory(cubemapVS, cubemapFS)
	if !rl.IsShaderValid(shader) {
		rl.UnloadTexture(bd.tex)
		return bd
	}
	// DrawMesh binds MapCubemap as a cube texture to the sampler at this location.
	shader.UpdateLocation(rl.ShaderLocMapCubemap, rl.GetShaderLocation(shader, "environmentMap"))
	bd.mesh = rl.GenMeshCube(1, 1, 1)
	bd.mtl = rl.LoadMaterialDefault()
	bd.mtl.Shader = shader
	rl.SetMaterialTexture(&bd.mtl, rl.MapCubemap, bd.tex)
	bd.loaded = true
	return bd
}

func (bd backdrop) loadEquirect(img *rl.Image) backdrop {
	bd.tex = rl.LoadTextureFromImage(img)
	if !rl.IsTextureValid(bd.tex) {
		return bd
	}
	shader := rl.LoadShaderFromMemory(equirectVS, equirectFS)
	if !rl.IsShaderValid(shader) {
		rl.UnloadTexture(bd.tex)
		return bd
	}
	bd.mesh = rl.GenMeshCube(1, 1, 1)
	bd.mtl = rl.LoadMaterialDefault()
	bd.mtl.Shader = shader
	bd.camPosLoc = rl.GetShaderLocation(shader, "cameraPosition")
	bd.texLoc = rl.GetShaderLocation(shader, "skybox")
	bd.loaded = true
	return bd
}

// drawGradient fills the screen with the preset gradient. Call before BeginMode3D.
func (bd *backdrop) drawGradient() {
	if bd.loaded {
		return
	}
	top := rl.NewColor(bd.preset.Top[0], bd.preset.Top[1], bd.preset.Top[2], bd.preset.Top[3])
	bottom := rl.NewColor(bd.preset.Bottom[0], bd.preset.Bottom[1], bd.preset.Bottom[2], bd.preset.Bottom[3])
	rl.DrawRectangleGradientV(0, 0, int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()), top, bottom)
}

// drawSkybox draws the panorama as a large cube centered on the camera. Call inside BeginMode3D.
func (bd *backdrop) drawSkybox(cam rl.Camera3D) {
	if !bd.loaded {
		return
	}
	rl.DisableDepthMask()
	rl.DisableBackfaceCulling()
	pos := cam.Position
	transform := rl.MatrixMultiply(rl.MatrixScale(skyboxScale, skyboxScale, skyboxScale), rl.MatrixTranslate(pos.X, pos.Y, pos.Z))
	if bd.projection == asset.Equirect {
		if bd.camPosLoc >= 0 {
			camPos := []float32{pos.X, pos.Y, pos.Z}
			rl.SetShaderValueV(bd.mtl.Shader, bd.camPosLoc, camPos, rl.ShaderUniformVec3, 1)
		}
		if bd.texLoc >= 0 {
			rl.SetShaderValueTexture(bd.mtl.Shader, bd.texLoc, bd.tex)
		}
	}
	rl.DrawMesh(bd.mesh, bd.mtl, transform)
	rl.EnableBackfaceCulling()
	rl.EnableDepthMask()
}

func (bd *backdrop) unload() {
	if !bd.loaded {
		return
	}
	rl.UnloadShader(bd.mtl.Shader)
	rl.UnloadTexture(bd.tex)
	rl.UnloadMesh(&bd.mesh)
	bd.loaded = false
}

// bounds is used in logs.
func bounds(img image.Image) (int, int) {
	if img == nil {
		return 0, 0
	}
	return img.Bounds().Dx(), img.Bounds().Dy()
}
