package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"overlap3d/internal/engine"
)

// Collision layers. A collider belongs to one layer; query masks select any
// subset of layers.
const (
	LayerDefault uint32 = 1 << iota
	LayerStatic
	LayerPlayer
	LayerEnemy
	LayerPickup
)

// Axis identifies a capsule's height axis in the collider's local space.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Collider is the common interface of all collider components. Overlap
// queries type-switch on the concrete type to pick the matching spatial
// primitive; unrecognized implementations are reported and skipped.
type Collider interface {
	engine.Component
	LayerBit() uint32
	Trigger() bool
}

// ColliderBase carries the fields shared by every collider shape.
type ColliderBase struct {
	engine.BaseComponent
	Offset    rl.Vector3 // local-space center offset
	Layer     uint32
	IsTrigger bool
}

// LayerBit returns the collider's layer, defaulting to LayerDefault when
// left unset.
func (c *ColliderBase) LayerBit() uint32 {
	if c.Layer == 0 {
		return LayerDefault
	}
	return c.Layer
}

func (c *ColliderBase) Trigger() bool {
	return c.IsTrigger
}

// GetCenter returns the world-space center of this collider.
func (c *ColliderBase) GetCenter() rl.Vector3 {
	return c.GetGameObject().TransformPoint(c.Offset)
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
