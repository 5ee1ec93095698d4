package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Capsule is a world-space capsule: the set of points within Radius of the
// segment P0-P1. A zero-length segment is a sphere.
type Capsule struct {
	P0     rl.Vector3
	P1     rl.Vector3
	Radius float32
}

func NewCapsule(p0, p1 rl.Vector3, radius float32) Capsule {
	return Capsule{P0: p0, P1: p1, Radius: radius}
}

// Bounds returns the world-space AABB enclosing the capsule.
func (c Capsule) Bounds() AABB {
	min := rl.Vector3{
		X: minf(c.P0.X, c.P1.X) - c.Radius,
		Y: minf(c.P0.Y, c.P1.Y) - c.Radius,
		Z: minf(c.P0.Z, c.P1.Z) - c.Radius,
	}
	max := rl.Vector3{
		X: maxf(c.P0.X, c.P1.X) + c.Radius,
		Y: maxf(c.P0.Y, c.P1.Y) + c.Radius,
		Z: maxf(c.P0.Z, c.P1.Z) + c.Radius,
	}
	return AABB{Min: min, Max: max}
}

// ClosestPointOnSegment returns the point on segment a-b closest to p.
func ClosestPointOnSegment(a, b, p rl.Vector3) rl.Vector3 {
	ab := rl.Vector3Subtract(b, a)
	lenSq := rl.Vector3DotProduct(ab, ab)
	if lenSq < 1e-8 {
		return a
	}
	t := rl.Vector3DotProduct(rl.Vector3Subtract(p, a), ab) / lenSq
	t = clampf(t, 0, 1)
	return rl.Vector3Add(a, rl.Vector3Scale(ab, t))
}

// closestPointsSegmentSegment returns the pair of closest points between
// segments a0-a1 and b0-b1.
func closestPointsSegmentSegment(a0, a1, b0, b1 rl.Vector3) (rl.Vector3, rl.Vector3) {
	d1 := rl.Vector3Subtract(a1, a0)
	d2 := rl.Vector3Subtract(b1, b0)
	r := rl.Vector3Subtract(a0, b0)

	a := rl.Vector3DotProduct(d1, d1)
	e := rl.Vector3DotProduct(d2, d2)
	f := rl.Vector3DotProduct(d2, r)

	var s, t float32
	const eps = 1e-8

	switch {
	case a < eps && e < eps:
		// Both segments degenerate to points
		return a0, b0
	case a < eps:
		s = 0
		t = clampf(f/e, 0, 1)
	default:
		c := rl.Vector3DotProduct(d1, r)
		if e < eps {
			t = 0
			s = clampf(-c/a, 0, 1)
		} else {
			b := rl.Vector3DotProduct(d1, d2)
			denom := a*e - b*b
			if denom > eps {
				s = clampf((b*f-c*e)/denom, 0, 1)
			} else {
				// Parallel segments: pick an arbitrary s
				s = 0
			}
			t = (b*s + f) / e
			// If t fell outside, clamp it and recompute s
			if t < 0 {
				t = 0
				s = clampf(-c/a, 0, 1)
			} else if t > 1 {
				t = 1
				s = clampf((b-c)/a, 0, 1)
			}
		}
	}

	pa := rl.Vector3Add(a0, rl.Vector3Scale(d1, s))
	pb := rl.Vector3Add(b0, rl.Vector3Scale(d2, t))
	return pa, pb
}

// IntersectsSphere tests the capsule against a sphere.
func (c Capsule) IntersectsSphere(center rl.Vector3, radius float32) bool {
	closest := ClosestPointOnSegment(c.P0, c.P1, center)
	diff := rl.Vector3Subtract(center, closest)
	sum := c.Radius + radius
	return rl.Vector3DotProduct(diff, diff) <= sum*sum
}

// IntersectsCapsule tests two capsules via the closest points between their
// core segments.
func (c Capsule) IntersectsCapsule(other Capsule) bool {
	pa, pb := closestPointsSegmentSegment(c.P0, c.P1, other.P0, other.P1)
	diff := rl.Vector3Subtract(pb, pa)
	sum := c.Radius + other.Radius
	return rl.Vector3DotProduct(diff, diff) <= sum*sum
}

// IntersectsOBB collapses the capsule to a sphere at the segment point
// nearest the box, then runs the box-sphere test.
func (c Capsule) IntersectsOBB(o OBB) bool {
	onSegment := ClosestPointOnSegment(c.P0, c.P1, o.Center)
	onBox := o.ClosestPoint(onSegment)
	// Refine once: re-project the box's closest point back onto the segment
	onSegment = ClosestPointOnSegment(c.P0, c.P1, onBox)
	return o.IntersectsSphere(onSegment, c.Radius)
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
