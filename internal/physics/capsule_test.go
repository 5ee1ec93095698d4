package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestClosestPointOnSegment(t *testing.T) {
	a := rl.Vector3{Y: -1}
	b := rl.Vector3{Y: 1}

	mid := ClosestPointOnSegment(a, b, rl.Vector3{X: 5, Y: 0.5})
	assert.InDelta(t, 0.5, mid.Y, 1e-5)
	assert.InDelta(t, 0, mid.X, 1e-5)

	clamped := ClosestPointOnSegment(a, b, rl.Vector3{Y: 10})
	assert.InDelta(t, 1, clamped.Y, 1e-5, "beyond the end clamps to the endpoint")

	point := ClosestPointOnSegment(a, a, rl.Vector3{X: 3})
	assert.Equal(t, a, point, "degenerate segment returns its point")
}

func TestCapsuleIntersectsSphere(t *testing.T) {
	capsule := NewCapsule(rl.Vector3{Y: -1}, rl.Vector3{Y: 1}, 0.5)

	assert.True(t, capsule.IntersectsSphere(rl.Vector3{Y: 2}, 0.6), "sphere reaches the cap")
	assert.False(t, capsule.IntersectsSphere(rl.Vector3{Y: 2.2}, 0.6))
	assert.True(t, capsule.IntersectsSphere(rl.Vector3{X: 0.8}, 0.4), "sphere against the side")
}

func TestCapsuleIntersectsCapsule(t *testing.T) {
	a := NewCapsule(rl.Vector3{Y: -1}, rl.Vector3{Y: 1}, 0.5)
	crossing := NewCapsule(rl.Vector3{X: -1, Y: 0.5}, rl.Vector3{X: 1, Y: 0.5}, 0.5)
	apart := NewCapsule(rl.Vector3{X: 2, Y: -1}, rl.Vector3{X: 2, Y: 1}, 0.5)
	parallel := NewCapsule(rl.Vector3{X: 0.9, Y: -1}, rl.Vector3{X: 0.9, Y: 1}, 0.5)

	assert.True(t, a.IntersectsCapsule(crossing), "perpendicular capsules through the core")
	assert.False(t, a.IntersectsCapsule(apart))
	assert.True(t, a.IntersectsCapsule(parallel), "parallel capsules within radius sum")
}

func TestCapsuleIntersectsOBB(t *testing.T) {
	box := NewOBB(rl.Vector3{}, rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}, rl.Vector3{})

	touching := NewCapsule(rl.Vector3{X: 1.0, Y: -1}, rl.Vector3{X: 1.0, Y: 1}, 0.6)
	assert.True(t, touching.IntersectsOBB(box))

	missing := NewCapsule(rl.Vector3{X: 1.2, Y: -1}, rl.Vector3{X: 1.2, Y: 1}, 0.6)
	assert.False(t, missing.IntersectsOBB(box))

	above := NewCapsule(rl.Vector3{Y: 1.0}, rl.Vector3{Y: 3}, 0.6)
	assert.True(t, above.IntersectsOBB(box), "cap hanging over the top face")
}

func TestCapsuleBounds(t *testing.T) {
	capsule := NewCapsule(rl.Vector3{Y: -1}, rl.Vector3{Y: 1}, 0.5)
	bounds := capsule.Bounds()

	assert.InDelta(t, -1.5, bounds.Min.Y, 1e-5)
	assert.InDelta(t, 1.5, bounds.Max.Y, 1e-5)
	assert.InDelta(t, -0.5, bounds.Min.X, 1e-5)
	assert.InDelta(t, 0.5, bounds.Max.X, 1e-5)
}

func TestAABBIntersects(t *testing.T) {
	a := NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2})
	b := NewAABBFromCenter(rl.Vector3{X: 1.5}, rl.Vector3{X: 2, Y: 2, Z: 2})
	c := NewAABBFromCenter(rl.Vector3{X: 3}, rl.Vector3{X: 2, Y: 2, Z: 2})

	assert.True(t, a.Intersects(b))
	assert.False(t, a.Intersects(c))
	assert.True(t, a.ContainsPoint(rl.Vector3{X: 0.5}))
	assert.False(t, a.ContainsPoint(rl.Vector3{X: 1.5}))
}
