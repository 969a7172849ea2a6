package engine3D

import (
	"github.com/go-gl/mathgl/mgl64"

	"irrigation3d/internal/scene"
	"irrigation3d/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws a composed scene with raylib. The scene tree is static, so
// world transforms are flattened once into draw lists on first use.
type Renderer struct {
	meshes   *MeshCache
	lighting *LightingShader
	material rl.Material

	prepared     *scene.Scene
	opaque       []drawItem
	transparent  []drawItem
	tori         []drawItem
	occluders    []bounds
	dropletWorld mgl64.Mat4

	Stats FrameStats
}

type drawItem struct {
	name     string
	mesh     scene.Mesh
	material *scene.Material
	world    mgl64.Mat4
}

type FrameStats struct {
	Meshes      int
	Transparent int
	Tori        int
	Droplets    int
	Stars       int
	Labels      int
	Hidden      int
	// Cached counts distinct primitives uploaded to the GPU so far.
	Cached int
}

// NewRenderer must be called after the window is open.
func NewRenderer() *Renderer {
	lighting := LoadLightingShader()

	material := rl.LoadMaterialDefault()
	if lighting.Shader.ID != 0 {
		material.Shader = lighting.Shader
	}

	return &Renderer{
		meshes:   NewMeshCache(),
		lighting: lighting,
		material: material,
	}
}

// CameraFor builds the raylib camera looking from eye at target.
func CameraFor(eye, target mgl64.Vec3, fov float64) rl.Camera3D {
	return rl.Camera3D{
		Position:   vecToVector3(eye),
		Target:     vecToVector3(target),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       float32(fov),
		Projection: rl.CameraPerspective,
	}
}

func (r *Renderer) prepare(s *scene.Scene) {
	r.opaque = r.opaque[:0]
	r.transparent = r.transparent[:0]
	r.tori = r.tori[:0]
	r.dropletWorld = mgl64.Ident4()

	scene.Walk(s.Root, func(node *scene.Node, world mgl64.Mat4) bool {
		if node == s.DropletGroup {
			r.dropletWorld = world
		}
		if node.Mesh == nil || node.Material == nil {
			return true
		}

		item := drawItem{name: node.Name, mesh: *node.Mesh, material: node.Material, world: world}
		switch {
		case node.Mesh.Kind == scene.MeshTorus:
			r.tori = append(r.tori, item)
		case node.Material.Transparent():
			r.transparent = append(r.transparent, item)
		default:
			r.opaque = append(r.opaque, item)
		}
		return true
	})

	r.occluders = labelOccluders(s.Root)
	r.prepared = s
	utils.Debug("Prepared scene: %d opaque, %d transparent, %d tori", len(r.opaque), len(r.transparent), len(r.tori))
}

// Render clears the frame and draws s from camera at time t seconds.
func (r *Renderer) Render(s *scene.Scene, camera rl.Camera3D, t float64) {
	if r.prepared != s {
		r.prepare(s)
	}
	r.Stats = FrameStats{}

	rl.ClearBackground(s.Background)

	rl.BeginMode3D(camera)

	drawStars(s.Stars, scene.DefaultStars.Factor)
	r.Stats.Stars = len(s.Stars)

	r.lighting.ApplyLights(s.Lights)
	r.lighting.SetViewPos(scene.Vec3{X: float64(camera.Position.X), Y: float64(camera.Position.Y), Z: float64(camera.Position.Z)})

	for i := range r.opaque {
		r.drawItem(&r.opaque[i])
	}
	r.drawDroplets(s)

	for _, item := range r.tori {
		drawTorus(item.mesh, item.world, item.material.Color)
		r.Stats.Tori++
	}

	if len(r.transparent) > 0 {
		rl.DisableDepthMask()
		for i := range r.transparent {
			r.drawItem(&r.transparent[i])
			r.Stats.Transparent++
		}
		rl.EnableDepthMask()
	}

	rl.EndMode3D()

	r.Stats.Hidden = drawLabels(s.Labels, camera, t, r.occluders)
	r.Stats.Labels = len(s.Labels) - r.Stats.Hidden
	r.Stats.Cached = r.meshes.Len()
}

func (r *Renderer) drawItem(item *drawItem) {
	mesh, ok := r.meshes.Get(item.mesh)
	if !ok {
		return
	}

	r.lighting.SetMaterial(item.material)
	r.material.Maps.Color = withOpacity(item.material)
	rl.DrawMesh(mesh, r.material, toMatrix(item.world.Mul4(meshCorrection(item.mesh))))
	r.Stats.Meshes++
}

func (r *Renderer) drawDroplets(s *scene.Scene) {
	if s.Field == nil || s.Droplet.Mesh == nil {
		return
	}

	template := s.Droplet.Local()
	item := drawItem{name: s.Droplet.Name, mesh: *s.Droplet.Mesh, material: s.Droplet.Material}

	for _, d := range s.Field.Droplets() {
		p := d.Position
		item.world = r.dropletWorld.Mul4(mgl64.Translate3D(p.X, p.Y, p.Z)).Mul4(template)
		r.drawItem(&item)
		r.Stats.Droplets++
	}
}

func (r *Renderer) Unload() {
	r.meshes.Unload()
	r.lighting.Unload()
	UnloadFonts()
}
