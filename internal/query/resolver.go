// Package query maps collider shapes to spatial overlap queries. The
// Resolver derives world-space primitive parameters from a collider's
// transform and dispatches to whichever backend primitive matches the shape.
package query

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"overlap3d/internal/components"
	"overlap3d/internal/engine"
	"overlap3d/internal/physics"
)

// Backend is the spatial-query surface the resolver dispatches into.
// *physics.World satisfies it; tests substitute fakes.
type Backend interface {
	OverlapBox(center, halfExtents, rotation rl.Vector3, f physics.QueryFilter) []components.Collider
	OverlapSphere(center rl.Vector3, radius float32, f physics.QueryFilter) []components.Collider
	OverlapCapsule(p0, p1 rl.Vector3, radius float32, f physics.QueryFilter) []components.Collider
}

type Resolver struct {
	backend Backend
	log     *zap.Logger
}

func NewResolver(backend Backend, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{backend: backend, log: log}
}

// Resolve returns every collider whose volume intersects col's, excluding
// colliders on col's own object.
//
// A nil or detached collider yields an empty result without touching the
// backend. A collider shape the resolver has no primitive for yields an
// empty result and one warn-level diagnostic; callers that need to tell
// "nothing intersects" from "shape unsupported" watch the log.
func (r *Resolver) Resolve(col components.Collider, f physics.QueryFilter) []components.Collider {
	if col == nil {
		return nil
	}
	g := col.GetGameObject()
	if g == nil {
		return nil
	}

	var hits []components.Collider
	switch c := col.(type) {
	case *components.BoxCollider:
		hits = r.backend.OverlapBox(c.GetCenter(), c.GetHalfExtents(), g.WorldRotation(), f)
	case *components.SphereCollider:
		hits = r.backend.OverlapSphere(c.GetCenter(), c.GetWorldRadius(), f)
	case *components.CapsuleCollider:
		p0, p1 := c.GetEndpoints()
		hits = r.backend.OverlapCapsule(p0, p1, c.GetWorldRadius(), f)
	default:
		r.log.Warn("overlap query on unsupported collider shape",
			zap.String("shape", fmt.Sprintf("%T", col)),
			zap.String("object", g.Name))
		return nil
	}

	if len(hits) == 0 {
		return nil
	}
	out := make([]components.Collider, 0, len(hits))
	for _, h := range hits {
		if h.GetGameObject() == g {
			continue
		}
		out = append(out, h)
	}
	return out
}

// FindFirst scans results in backend order and returns the first component
// of type T attached to a hit collider's object. Short-circuits on the first
// match.
func FindFirst[T engine.Component](results []components.Collider) (T, bool) {
	var zero T
	for _, c := range results {
		g := c.GetGameObject()
		if g == nil {
			continue
		}
		for _, comp := range g.Components() {
			if typed, ok := comp.(T); ok {
				return typed, true
			}
		}
	}
	return zero, false
}
