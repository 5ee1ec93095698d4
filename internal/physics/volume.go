package physics

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"overlap3d/internal/components"
)

type volumeKind int

const (
	volumeBox volumeKind = iota
	volumeSphere
	volumeCapsule
)

// volume is a collider's world-space primitive, resolved from its transform
// at test time.
type volume struct {
	kind    volumeKind
	obb     OBB        // volumeBox
	center  rl.Vector3 // volumeSphere
	radius  float32    // volumeSphere
	capsule Capsule    // volumeCapsule
}

// worldVolume derives the world-space primitive for a collider. Returns
// false for detached colliders and for shapes the world has no narrow-phase
// for.
func worldVolume(c components.Collider) (volume, bool) {
	if c == nil || c.GetGameObject() == nil {
		return volume{}, false
	}
	switch col := c.(type) {
	case *components.BoxCollider:
		obb := NewOBB(col.GetCenter(), col.GetHalfExtents(), col.GetGameObject().WorldRotation())
		return volume{kind: volumeBox, obb: obb}, true
	case *components.SphereCollider:
		return volume{kind: volumeSphere, center: col.GetCenter(), radius: col.GetWorldRadius()}, true
	case *components.CapsuleCollider:
		p0, p1 := col.GetEndpoints()
		return volume{kind: volumeCapsule, capsule: NewCapsule(p0, p1, col.GetWorldRadius())}, true
	default:
		return volume{}, false
	}
}

func (v volume) bounds() AABB {
	switch v.kind {
	case volumeSphere:
		return NewAABBFromSphere(v.center, v.radius)
	case volumeCapsule:
		return v.capsule.Bounds()
	default:
		return v.obb.Bounds()
	}
}

func (v volume) intersectsOBB(o OBB) bool {
	switch v.kind {
	case volumeSphere:
		return o.IntersectsSphere(v.center, v.radius)
	case volumeCapsule:
		return v.capsule.IntersectsOBB(o)
	default:
		return v.obb.IntersectsOBB(o)
	}
}

func (v volume) intersectsSphere(center rl.Vector3, radius float32) bool {
	switch v.kind {
	case volumeSphere:
		diff := rl.Vector3Subtract(v.center, center)
		sum := v.radius + radius
		return rl.Vector3DotProduct(diff, diff) <= sum*sum
	case volumeCapsule:
		return v.capsule.IntersectsSphere(center, radius)
	default:
		return v.obb.IntersectsSphere(center, radius)
	}
}

func (v volume) intersectsCapsule(c Capsule) bool {
	switch v.kind {
	case volumeSphere:
		return c.IntersectsSphere(v.center, v.radius)
	case volumeCapsule:
		return v.capsule.IntersectsCapsule(c)
	default:
		return c.IntersectsOBB(v.obb)
	}
}

// shapeName names a collider's concrete type for diagnostics.
func shapeName(c components.Collider) string {
	return fmt.Sprintf("%T", c)
}
