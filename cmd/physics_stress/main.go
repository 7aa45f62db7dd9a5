// Stress test for focus raycasts against growing collider counts
package main

import (
	"fmt"
	"math/rand"
	"time"

	"sevenlights/internal/components"
	"sevenlights/internal/engine"
	"sevenlights/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	testCounts := []int{100, 500, 1000, 2000, 5000, 10000, 20000}

	for _, count := range testCounts {
		testRaycasts(count)
	}
}

func testRaycasts(count int) {
	rng := rand.New(rand.NewSource(42)) // Consistent results

	// Spawn in a cube, size scales with count to keep density reasonable
	spawnSize := float32(50.0) + float32(count)/100.0

	pw := physics.NewPhysicsWorld()
	for i := 0; i < count; i++ {
		obj := engine.NewGameObject(fmt.Sprintf("Obj_%d", i))
		obj.Transform.Position = rl.Vector3{
			X: rng.Float32()*spawnSize - spawnSize/2,
			Y: rng.Float32()*spawnSize - spawnSize/2,
			Z: rng.Float32()*spawnSize - spawnSize/2,
		}
		if i%2 == 0 {
			s := 0.5 + rng.Float32()
			obj.AddComponent(components.NewBoxCollider(rl.Vector3{X: s, Y: s, Z: s}))
		} else {
			obj.AddComponent(components.NewSphereCollider(0.5 + rng.Float32()*0.5))
		}
		pw.AddObject(obj)
	}

	// Random viewpoints, all tracing at the default use distance and far
	const rays = 1000
	origins := make([]rl.Vector3, rays)
	dirs := make([]rl.Vector3, rays)
	for i := range origins {
		origins[i] = rl.Vector3{
			X: rng.Float32()*spawnSize - spawnSize/2,
			Y: rng.Float32()*spawnSize - spawnSize/2,
			Z: rng.Float32()*spawnSize - spawnSize/2,
		}
		dirs[i] = rl.Vector3Normalize(rl.Vector3{
			X: rng.Float32()*2 - 1,
			Y: rng.Float32()*2 - 1,
			Z: rng.Float32()*2 - 1,
		})
	}

	for _, dist := range []float32{4, spawnSize} {
		hits := 0
		start := time.Now()
		for i := range origins {
			if _, ok := pw.Raycast(origins[i], dirs[i], dist, nil); ok {
				hits++
			}
		}
		perRay := time.Since(start) / rays

		fmt.Printf("%5d colliders, range %6.1f: %8v per ray (%4d/%d hit)\n",
			count, dist, perRay, hits, rays)
	}
}
