package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"overlap3d/internal/components"
)

type RaycastHit struct {
	Collider components.Collider
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// Raycast tests the ray against every registered collider passing the filter
// and returns the closest hit.
func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32, f QueryFilter) (RaycastHit, bool) {
	direction = rl.Vector3Normalize(direction)
	f = f.normalized()

	var closestHit RaycastHit
	closestHit.Distance = maxDistance
	hit := false

	for _, c := range w.colliders {
		if !f.Accepts(c) {
			continue
		}
		v, ok := worldVolume(c)
		if !ok {
			continue
		}
		var hitInfo RaycastHit
		switch v.kind {
		case volumeSphere:
			hitInfo, ok = raycastSphere(origin, direction, v.center, v.radius, maxDistance)
		case volumeCapsule:
			hitInfo, ok = raycastCapsule(origin, direction, v.capsule, maxDistance)
		default:
			hitInfo, ok = raycastOBB(origin, direction, v.obb, maxDistance)
		}
		if ok && hitInfo.Distance < closestHit.Distance {
			closestHit = hitInfo
			closestHit.Collider = c
			hit = true
		}
	}

	return closestHit, hit
}

// raycastOBB runs the slab test in the box's local frame.
func raycastOBB(origin, direction rl.Vector3, o OBB, maxDistance float32) (RaycastHit, bool) {
	// Project the ray into the box's local axes
	rel := rl.Vector3Subtract(origin, o.Center)
	localOrigin := [3]float32{}
	localDir := [3]float32{}
	for i := 0; i < 3; i++ {
		localOrigin[i] = rl.Vector3DotProduct(rel, o.Axes[i])
		localDir[i] = rl.Vector3DotProduct(direction, o.Axes[i])
	}
	half := [3]float32{o.HalfSize.X, o.HalfSize.Y, o.HalfSize.Z}

	tmin := float32(math.Inf(-1))
	tmax := float32(math.Inf(1))
	hitAxis := 0
	hitSign := float32(-1)

	for i := 0; i < 3; i++ {
		if absf(localDir[i]) < 1e-8 {
			if localOrigin[i] < -half[i] || localOrigin[i] > half[i] {
				return RaycastHit{}, false
			}
			continue
		}
		t1 := (-half[i] - localOrigin[i]) / localDir[i]
		t2 := (half[i] - localOrigin[i]) / localDir[i]
		sign := float32(-1)
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1
		}
		if t1 > tmin {
			tmin = t1
			hitAxis = i
			hitSign = sign
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return RaycastHit{}, false
		}
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Scale(o.Axes[hitAxis], hitSign)

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}

func raycastSphere(origin, direction, center rl.Vector3, radius, maxDistance float32) (RaycastHit, bool) {
	oc := rl.Vector3Subtract(origin, center)
	a := rl.Vector3DotProduct(direction, direction)
	b := 2.0 * rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return RaycastHit{}, false
	}

	t := (-b - float32(math.Sqrt(float64(discriminant)))) / (2 * a)
	if t < 0 {
		t = (-b + float32(math.Sqrt(float64(discriminant)))) / (2 * a)
	}
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, center))

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}

// raycastCapsule collapses the capsule to a sphere at the segment point
// nearest the ray and runs the sphere test there.
func raycastCapsule(origin, direction rl.Vector3, c Capsule, maxDistance float32) (RaycastHit, bool) {
	rayEnd := rl.Vector3Add(origin, rl.Vector3Scale(direction, maxDistance))
	_, onSegment := closestPointsSegmentSegment(origin, rayEnd, c.P0, c.P1)
	return raycastSphere(origin, direction, onSegment, c.Radius, maxDistance)
}
