// Stress test comparing spatial-hash overlap queries against brute force
package main

import (
	"fmt"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"overlap3d/internal/components"
	"overlap3d/internal/engine"
	"overlap3d/internal/physics"
)

const (
	queryRadius    = 3.0
	queriesPerSize = 1000
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(fmt.Sprintf("init logger: %v", err))
	}
	defer logger.Sync()

	testCounts := []int{100, 500, 1000, 2000, 5000, 10000}

	for _, count := range testCounts {
		testOverlap(count, logger)
	}
}

func testOverlap(count int, logger *zap.Logger) {
	rng := rand.New(rand.NewSource(42)) // Consistent results

	// Spawn in a cube, size scales with count to keep density reasonable
	spawnSize := float32(50.0) + float32(count)/100.0

	world := physics.NewWorld(logger)

	for i := 0; i < count; i++ {
		obj := engine.NewGameObject(fmt.Sprintf("obj-%d", i))
		obj.Transform.Position = randomPoint(rng, spawnSize)

		switch i % 3 {
		case 0:
			size := 0.5 + rng.Float32()
			obj.AddComponent(components.NewBoxCollider(rl.Vector3{X: size, Y: size, Z: size}))
			obj.Transform.Rotation = rl.Vector3{Y: rng.Float32() * 360}
		case 1:
			obj.AddComponent(components.NewSphereCollider(0.5 + rng.Float32()*0.5))
		default:
			obj.AddComponent(components.NewCapsuleCollider(0.4, 1.8))
		}

		world.AddObject(obj)
	}
	world.Refresh()

	// Warm up and sanity-check the grid against a linear scan
	probe := randomPoint(rng, spawnSize)
	gridHits := len(world.OverlapSphere(probe, queryRadius, physics.DefaultFilter()))
	bruteHits := bruteForceSphere(world, probe, queryRadius)
	status := "OK"
	if gridHits != bruteHits {
		status = fmt.Sprintf("MISMATCH grid=%d brute=%d", gridHits, bruteHits)
	}

	start := time.Now()
	totalHits := 0
	for i := 0; i < queriesPerSize; i++ {
		center := randomPoint(rng, spawnSize)
		totalHits += len(world.OverlapSphere(center, queryRadius, physics.DefaultFilter()))
	}
	elapsed := time.Since(start)

	fmt.Printf("%6d colliders: %8.2fus/query  %6.1f hits/query  [%s]\n",
		count,
		float64(elapsed.Microseconds())/queriesPerSize,
		float64(totalHits)/queriesPerSize,
		status)
}

// bruteForceSphere counts intersections with a linear scan over every
// registered collider, bypassing the grid.
func bruteForceSphere(world *physics.World, center rl.Vector3, radius float32) int {
	hits := 0
	for _, c := range world.Colliders() {
		g := c.GetGameObject()
		switch col := c.(type) {
		case *components.BoxCollider:
			obb := physics.NewOBB(col.GetCenter(), col.GetHalfExtents(), g.WorldRotation())
			if obb.IntersectsSphere(center, radius) {
				hits++
			}
		case *components.SphereCollider:
			diff := rl.Vector3Subtract(col.GetCenter(), center)
			sum := col.GetWorldRadius() + radius
			if rl.Vector3DotProduct(diff, diff) <= sum*sum {
				hits++
			}
		case *components.CapsuleCollider:
			p0, p1 := col.GetEndpoints()
			if physics.NewCapsule(p0, p1, col.GetWorldRadius()).IntersectsSphere(center, radius) {
				hits++
			}
		}
	}
	return hits
}

func randomPoint(rng *rand.Rand, spawnSize float32) rl.Vector3 {
	return rl.Vector3{
		X: rng.Float32()*spawnSize - spawnSize/2,
		Y: rng.Float32()*spawnSize - spawnSize/2,
		Z: rng.Float32()*spawnSize - spawnSize/2,
	}
}
