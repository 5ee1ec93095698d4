package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

type CapsuleCollider struct {
	ColliderBase
	Radius    float32
	Height    float32 // full height, caps included
	Direction Axis    // height axis in local space
}

func NewCapsuleCollider(radius, height float32) *CapsuleCollider {
	return &CapsuleCollider{
		Radius:    radius,
		Height:    height,
		Direction: AxisY,
	}
}

// GetWorldRadius returns the radius scaled by the larger of the two scale
// axes orthogonal to the capsule's height axis.
func (c *CapsuleCollider) GetWorldRadius() float32 {
	scale := c.GetGameObject().WorldScale()
	switch c.Direction {
	case AxisX:
		return c.Radius * maxf(scale.Y, scale.Z)
	case AxisZ:
		return c.Radius * maxf(scale.X, scale.Y)
	default:
		return c.Radius * maxf(scale.X, scale.Z)
	}
}

// GetWorldHeight returns the height scaled along the capsule's height axis.
func (c *CapsuleCollider) GetWorldHeight() float32 {
	scale := c.GetGameObject().WorldScale()
	switch c.Direction {
	case AxisX:
		return c.Height * scale.X
	case AxisZ:
		return c.Height * scale.Z
	default:
		return c.Height * scale.Y
	}
}

// GetEndpoints returns the world-space centers of the two hemisphere caps.
// When the height is no larger than twice the radius the capsule degenerates
// to a sphere and both endpoints coincide at the center.
func (c *CapsuleCollider) GetEndpoints() (rl.Vector3, rl.Vector3) {
	g := c.GetGameObject()
	center := g.TransformPoint(c.Offset)

	var dir rl.Vector3
	switch c.Direction {
	case AxisX:
		dir = g.Right()
	case AxisZ:
		dir = g.Forward()
	default:
		dir = g.Up()
	}

	half := c.GetWorldHeight()/2 - c.GetWorldRadius()
	if half < 0 {
		half = 0
	}
	offset := rl.Vector3Scale(dir, half)
	return rl.Vector3Add(center, offset), rl.Vector3Subtract(center, offset)
}
