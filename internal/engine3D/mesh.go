package engine3D

import (
	"irrigation3d/internal/scene"
	"irrigation3d/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MeshCache uploads one GPU mesh per distinct primitive. Meshes need a live
// GL context, so they are generated on first use inside the frame loop.
type MeshCache struct {
	meshes map[scene.Mesh]rl.Mesh
}

func NewMeshCache() *MeshCache {
	return &MeshCache{meshes: make(map[scene.Mesh]rl.Mesh)}
}

// Get returns the mesh for m. The torus has no generated mesh and reports
// false; it is drawn immediate mode instead.
func (c *MeshCache) Get(m scene.Mesh) (rl.Mesh, bool) {
	if mesh, ok := c.meshes[m]; ok {
		return mesh, true
	}

	var mesh rl.Mesh
	switch m.Kind {
	case scene.MeshBox:
		mesh = rl.GenMeshCube(float32(m.Width), float32(m.Height), float32(m.Depth))
	case scene.MeshCylinder:
		if m.RadiusTop == 0 {
			mesh = rl.GenMeshCone(float32(m.RadiusBottom), float32(m.Height), m.Segments)
		} else {
			mesh = rl.GenMeshCylinder(float32(m.RadiusBottom), float32(m.Height), m.Segments)
		}
	case scene.MeshCone:
		mesh = rl.GenMeshCone(float32(m.Radius), float32(m.Height), m.Segments)
	case scene.MeshSphere:
		mesh = rl.GenMeshSphere(float32(m.Radius), m.HeightSegments, m.Segments)
	case scene.MeshPlane:
		mesh = rl.GenMeshPlane(float32(m.Width), float32(m.Height), 1, 1)
	default:
		return rl.Mesh{}, false
	}

	utils.Debug("Generated %s mesh (%d vertices)", m.Kind, mesh.VertexCount)
	c.meshes[m] = mesh
	return mesh, true
}

func (c *MeshCache) Len() int {
	return len(c.meshes)
}

func (c *MeshCache) Unload() {
	for key, mesh := range c.meshes {
		rl.UnloadMesh(&mesh)
		delete(c.meshes, key)
	}
}
