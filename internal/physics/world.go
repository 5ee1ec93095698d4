package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"overlap3d/internal/components"
	"overlap3d/internal/engine"
)

// Spatial grid cell size - colliders are inserted into every cell their
// bounds cover, so queries only visit the cells under the query volume.
const CellSize = 5.0

// cellKey addresses one cell of the spatial hash.
type cellKey struct {
	X, Y, Z int
}

func cellAt(v float32) int {
	return int(math.Floor(float64(v) / CellSize))
}

// World is the spatial-query backend: a registry of colliders with a
// spatial-hash broad phase and box/sphere/capsule narrow-phase tests.
//
// World is not internally synchronized; callers in concurrent hosts must
// serialize access themselves.
type World struct {
	colliders []components.Collider
	grid      map[cellKey][]components.Collider
	gridDirty bool

	// Trigger pair tracking across Update calls
	activePairs map[triggerPair]bool

	log *zap.Logger
}

func NewWorld(log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	return &World{
		colliders:   make([]components.Collider, 0),
		grid:        make(map[cellKey][]components.Collider),
		activePairs: make(map[triggerPair]bool),
		log:         log,
	}
}

// AddObject registers every supported collider component on g. Collider
// implementations the world has no narrow-phase for are reported and
// skipped.
func (w *World) AddObject(g *engine.GameObject) {
	for _, comp := range g.Components() {
		col, ok := comp.(components.Collider)
		if !ok {
			continue
		}
		w.Add(col)
	}
}

// Add registers a single collider.
func (w *World) Add(c components.Collider) {
	switch c.(type) {
	case *components.BoxCollider, *components.SphereCollider, *components.CapsuleCollider:
	default:
		w.log.Warn("world: collider shape not supported, skipping",
			zap.String("shape", shapeName(c)))
		return
	}
	w.colliders = append(w.colliders, c)
	w.gridDirty = true
}

// Remove unregisters all colliders belonging to g.
func (w *World) Remove(g *engine.GameObject) {
	kept := w.colliders[:0]
	for _, c := range w.colliders {
		if c.GetGameObject() != g {
			kept = append(kept, c)
		}
	}
	w.colliders = kept
	w.gridDirty = true
}

// Colliders returns the registered colliders in registration order.
func (w *World) Colliders() []components.Collider {
	return w.colliders
}

// Refresh rebuilds the spatial hash from current transforms. Add and Remove
// mark the grid dirty automatically; call Refresh after moving objects
// between queries.
func (w *World) Refresh() {
	for k := range w.grid {
		delete(w.grid, k)
	}
	for _, c := range w.colliders {
		v, ok := worldVolume(c)
		if !ok {
			continue
		}
		insertIntoCells(w.grid, v.bounds(), c)
	}
	w.gridDirty = false
}

func insertIntoCells(grid map[cellKey][]components.Collider, b AABB, c components.Collider) {
	minX, minY, minZ := cellAt(b.Min.X), cellAt(b.Min.Y), cellAt(b.Min.Z)
	maxX, maxY, maxZ := cellAt(b.Max.X), cellAt(b.Max.Y), cellAt(b.Max.Z)
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			for z := minZ; z <= maxZ; z++ {
				key := cellKey{x, y, z}
				grid[key] = append(grid[key], c)
			}
		}
	}
}

// candidates collects the colliders registered in cells covered by the query
// bounds, deduplicated, in cell-scan order.
func (w *World) candidates(b AABB) []components.Collider {
	if w.gridDirty {
		w.Refresh()
	}

	minX, minY, minZ := cellAt(b.Min.X), cellAt(b.Min.Y), cellAt(b.Min.Z)
	maxX, maxY, maxZ := cellAt(b.Max.X), cellAt(b.Max.Y), cellAt(b.Max.Z)

	var out []components.Collider
	seen := make(map[components.Collider]struct{})
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			for z := minZ; z <= maxZ; z++ {
				for _, c := range w.grid[cellKey{x, y, z}] {
					if _, dup := seen[c]; dup {
						continue
					}
					seen[c] = struct{}{}
					out = append(out, c)
				}
			}
		}
	}
	return out
}

// OverlapBox returns all colliders intersecting an oriented box. rotation is
// euler degrees in the engine's X-then-Y-then-Z convention.
func (w *World) OverlapBox(center, halfExtents, rotation rl.Vector3, f QueryFilter) []components.Collider {
	f = f.normalized()
	obb := NewOBB(center, halfExtents, rotation)
	var out []components.Collider
	for _, c := range w.candidates(obb.Bounds()) {
		if !f.Accepts(c) {
			continue
		}
		v, ok := worldVolume(c)
		if !ok {
			continue
		}
		if v.intersectsOBB(obb) {
			out = append(out, c)
		}
	}
	return out
}

// OverlapSphere returns all colliders intersecting a sphere.
func (w *World) OverlapSphere(center rl.Vector3, radius float32, f QueryFilter) []components.Collider {
	f = f.normalized()
	var out []components.Collider
	for _, c := range w.candidates(NewAABBFromSphere(center, radius)) {
		if !f.Accepts(c) {
			continue
		}
		v, ok := worldVolume(c)
		if !ok {
			continue
		}
		if v.intersectsSphere(center, radius) {
			out = append(out, c)
		}
	}
	return out
}

// OverlapCapsule returns all colliders intersecting the capsule spanned by
// the cap centers p0 and p1.
func (w *World) OverlapCapsule(p0, p1 rl.Vector3, radius float32, f QueryFilter) []components.Collider {
	f = f.normalized()
	capsule := NewCapsule(p0, p1, radius)
	var out []components.Collider
	for _, c := range w.candidates(capsule.Bounds()) {
		if !f.Accepts(c) {
			continue
		}
		v, ok := worldVolume(c)
		if !ok {
			continue
		}
		if v.intersectsCapsule(capsule) {
			out = append(out, c)
		}
	}
	return out
}
