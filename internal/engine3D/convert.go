package engine3D

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"irrigation3d/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func toVector3(v scene.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

func vecToVector3(v mgl64.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v[0]), float32(v[1]), float32(v[2]))
}

// toMatrix converts a column-major mathgl matrix into raylib's layout.
func toMatrix(m mgl64.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: float32(m[0]), M1: float32(m[1]), M2: float32(m[2]), M3: float32(m[3]),
		M4: float32(m[4]), M5: float32(m[5]), M6: float32(m[6]), M7: float32(m[7]),
		M8: float32(m[8]), M9: float32(m[9]), M10: float32(m[10]), M11: float32(m[11]),
		M12: float32(m[12]), M13: float32(m[13]), M14: float32(m[14]), M15: float32(m[15]),
	}
}

// meshCorrection maps a raylib generated mesh onto the primitive conventions
// of the scene tree.
func meshCorrection(mesh scene.Mesh) mgl64.Mat4 {
	switch mesh.Kind {
	case scene.MeshCylinder, scene.MeshCone:
		// raylib builds these upward from y=0
		return mgl64.Translate3D(0, -mesh.Height/2, 0)
	case scene.MeshPlane:
		// raylib planes lie in XZ facing +Y
		return mgl64.HomogRotate3DX(math.Pi / 2)
	}
	return mgl64.Ident4()
}

// withOpacity returns c with alpha scaled by opacity.
func withOpacity(material *scene.Material) rl.Color {
	c := material.Color
	opacity := material.Opacity
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	c.A = uint8(math.Round(float64(c.A) * opacity))
	return c
}
