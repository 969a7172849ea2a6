package engine3D

import (
	"testing"

	"irrigation3d/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestMeshCacheLen(t *testing.T) {
	cache := NewMeshCache()
	if cache.Len() != 0 {
		t.Fatalf("Expected empty cache, got %d", cache.Len())
	}

	cache.meshes[*scene.Box(12, 1, 6)] = rl.Mesh{}
	cache.meshes[*scene.Box(12, 1, 6)] = rl.Mesh{}
	cache.meshes[*scene.Sphere(0.05, 8, 8)] = rl.Mesh{}

	if cache.Len() != 2 {
		t.Errorf("Expected 2 distinct primitives, got %d", cache.Len())
	}
}

func TestMeshCacheSkipsTorus(t *testing.T) {
	cache := NewMeshCache()

	if _, ok := cache.Get(*scene.Torus(1.01, 0.02, 8, 32)); ok {
		t.Error("Expected torus to have no generated mesh")
	}
	if cache.Len() != 0 {
		t.Errorf("Expected torus to stay out of the cache, got %d entries", cache.Len())
	}
}
