package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

type BoxCollider struct {
	ColliderBase
	Size rl.Vector3 // full local size
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size: size,
	}
}

// GetWorldSize returns the box size scaled by the object's lossy world scale.
func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	scale := b.GetGameObject().WorldScale()
	return rl.Vector3{
		X: b.Size.X * scale.X,
		Y: b.Size.Y * scale.Y,
		Z: b.Size.Z * scale.Z,
	}
}

// GetHalfExtents returns half the world size along each local axis.
func (b *BoxCollider) GetHalfExtents() rl.Vector3 {
	size := b.GetWorldSize()
	return rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2}
}
