package physics

import (
	"bytes"

	"overlap3d/internal/components"
	"overlap3d/internal/engine"
)

// triggerPair is an unordered pair of objects in overlap through a trigger
// collider. A and B are ordered by UID so a pair hashes the same regardless
// of which side was queried.
type triggerPair struct {
	A, B *engine.GameObject
}

func makeTriggerPair(a, b *engine.GameObject) triggerPair {
	if bytes.Compare(a.UID[:], b.UID[:]) > 0 {
		return triggerPair{A: b, B: a}
	}
	return triggerPair{A: a, B: b}
}

// Update runs one trigger pass: every active trigger collider is overlapped
// against the world, the resulting pair set is diffed against the previous
// pass, and enter/exit callbacks are dispatched to TriggerHandler components
// on both objects.
func (w *World) Update() {
	w.Refresh()

	current := make(map[triggerPair]bool)
	for _, c := range w.colliders {
		if !c.Trigger() {
			continue
		}
		g := c.GetGameObject()
		if g == nil || !g.Active {
			continue
		}
		for _, hit := range w.overlapCollider(c, DefaultFilter()) {
			other := hit.GetGameObject()
			if other == nil || other == g || !other.Active {
				continue
			}
			current[makeTriggerPair(g, other)] = true
		}
	}

	// New pairs fire enter, vanished pairs fire exit
	for pair := range current {
		if !w.activePairs[pair] {
			w.notifyTriggerEnter(pair.A, pair.B)
			w.notifyTriggerEnter(pair.B, pair.A)
		}
	}
	for pair := range w.activePairs {
		if !current[pair] {
			w.notifyTriggerExit(pair.A, pair.B)
			w.notifyTriggerExit(pair.B, pair.A)
		}
	}

	w.activePairs = current
}

// notifyTriggerEnter calls OnTriggerEnter on all handlers attached to obj
func (w *World) notifyTriggerEnter(obj, other *engine.GameObject) {
	for _, comp := range obj.Components() {
		if handler, ok := comp.(engine.TriggerHandler); ok {
			handler.OnTriggerEnter(other)
		}
	}
}

// notifyTriggerExit calls OnTriggerExit on all handlers attached to obj
func (w *World) notifyTriggerExit(obj, other *engine.GameObject) {
	for _, comp := range obj.Components() {
		if handler, ok := comp.(engine.TriggerHandler); ok {
			handler.OnTriggerExit(other)
		}
	}
}

// overlapCollider queries the world with the collider's own world volume.
func (w *World) overlapCollider(c components.Collider, f QueryFilter) []components.Collider {
	v, ok := worldVolume(c)
	if !ok {
		return nil
	}
	switch v.kind {
	case volumeSphere:
		return w.OverlapSphere(v.center, v.radius, f)
	case volumeCapsule:
		return w.OverlapCapsule(v.capsule.P0, v.capsule.P1, v.capsule.Radius, f)
	default:
		return w.OverlapBox(v.obb.Center, v.obb.HalfSize, c.GetGameObject().WorldRotation(), f)
	}
}
