package engine3D

import (
	"irrigation3d/internal/scene"
	"irrigation3d/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const lightingVS = `
#version 330
in vec3 vertexPosition;
in vec3 vertexNormal;

uniform mat4 mvp;
uniform mat4 matModel;
uniform mat4 matNormal;

out vec3 fragPosition;
out vec3 fragNormal;

void main() {
    fragPosition = vec3(matModel * vec4(vertexPosition, 1.0));
    fragNormal = normalize(vec3(matNormal * vec4(vertexNormal, 0.0)));
    gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`

const lightingFS = `
#version 330
in vec3 fragPosition;
in vec3 fragNormal;

uniform vec4 colDiffuse;
uniform vec3 viewPos;

uniform float ambient;
uniform vec3 pointPos;
uniform float pointIntensity;
uniform vec3 dirDirection;
uniform float dirIntensity;

uniform vec3 emissive;
uniform float roughness;
uniform float metalness;

out vec4 finalColor;

float lobe(vec3 n, vec3 l, vec3 v, float shininess) {
    return pow(max(dot(n, normalize(l + v)), 0.0), shininess);
}

void main() {
    vec3 n = normalize(fragNormal);
    vec3 v = normalize(viewPos - fragPosition);
    vec3 base = colDiffuse.rgb;

    vec3 toPoint = normalize(pointPos - fragPosition);
    vec3 toDir = normalize(-dirDirection);

    float diffuse = pointIntensity * max(dot(n, toPoint), 0.0)
                  + dirIntensity * max(dot(n, toDir), 0.0);

    float shininess = mix(96.0, 4.0, roughness);
    float specular = pointIntensity * lobe(n, toPoint, v, shininess)
                   + dirIntensity * lobe(n, toDir, v, shininess);
    vec3 specColor = mix(vec3(0.04), base, metalness) * (1.0 - 0.8 * roughness);

    vec3 color = base * (ambient + diffuse * (1.0 - 0.5 * metalness))
               + specColor * specular
               + emissive;

    finalColor = vec4(color, colDiffuse.a);
}
`

// LightingShader is the forward shader every mesh is drawn with.
type LightingShader struct {
	Shader rl.Shader

	viewPos        int32
	ambient        int32
	pointPos       int32
	pointIntensity int32
	dirDirection   int32
	dirIntensity   int32
	emissive       int32
	roughness      int32
	metalness      int32
}

func LoadLightingShader() *LightingShader {
	shader := rl.LoadShaderFromMemory(lightingVS, lightingFS)
	if shader.ID == 0 {
		utils.Error("Failed to compile lighting shader, meshes will draw unlit")
	}

	return &LightingShader{
		Shader:         shader,
		viewPos:        rl.GetShaderLocation(shader, "viewPos"),
		ambient:        rl.GetShaderLocation(shader, "ambient"),
		pointPos:       rl.GetShaderLocation(shader, "pointPos"),
		pointIntensity: rl.GetShaderLocation(shader, "pointIntensity"),
		dirDirection:   rl.GetShaderLocation(shader, "dirDirection"),
		dirIntensity:   rl.GetShaderLocation(shader, "dirIntensity"),
		emissive:       rl.GetShaderLocation(shader, "emissive"),
		roughness:      rl.GetShaderLocation(shader, "roughness"),
		metalness:      rl.GetShaderLocation(shader, "metalness"),
	}
}

// ApplyLights uploads the scene lights. Only the first light of each kind is
// used. Directional lights shine from their position toward the origin.
func (ls *LightingShader) ApplyLights(lights []scene.Light) {
	var ambient, point, dir bool
	for _, light := range lights {
		switch light.Kind {
		case scene.LightAmbient:
			if !ambient {
				ls.setFloat(ls.ambient, light.Intensity)
				ambient = true
			}
		case scene.LightPoint:
			if !point {
				ls.setVec3(ls.pointPos, light.Position)
				ls.setFloat(ls.pointIntensity, light.Intensity)
				point = true
			}
		case scene.LightDirectional:
			if !dir {
				ls.setVec3(ls.dirDirection, scene.Vec3{X: -light.Position.X, Y: -light.Position.Y, Z: -light.Position.Z})
				ls.setFloat(ls.dirIntensity, light.Intensity)
				dir = true
			}
		}
	}
}

func (ls *LightingShader) SetViewPos(eye scene.Vec3) {
	ls.setVec3(ls.viewPos, eye)
}

func (ls *LightingShader) SetMaterial(m *scene.Material) {
	ls.setFloat(ls.roughness, m.Roughness)
	ls.setFloat(ls.metalness, m.Metalness)
	rl.SetShaderValue(ls.Shader, ls.emissive, []float32{
		float32(m.Emissive.R) / 255,
		float32(m.Emissive.G) / 255,
		float32(m.Emissive.B) / 255,
	}, rl.ShaderUniformVec3)
}

func (ls *LightingShader) Unload() {
	if ls.Shader.ID != 0 {
		rl.UnloadShader(ls.Shader)
	}
}

func (ls *LightingShader) setFloat(loc int32, v float64) {
	if loc < 0 {
		return
	}
	rl.SetShaderValue(ls.Shader, loc, []float32{float32(v)}, rl.ShaderUniformFloat)
}

func (ls *LightingShader) setVec3(loc int32, v scene.Vec3) {
	if loc < 0 {
		return
	}
	rl.SetShaderValue(ls.Shader, loc, []float32{float32(v.X), float32(v.Y), float32(v.Z)}, rl.ShaderUniformVec3)
}
